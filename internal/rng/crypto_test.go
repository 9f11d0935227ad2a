package rng

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	found := make(map[int]int)
	for i := 0; i < 1000; i++ {
		found[Crypto{}.Intn(4)]++
	}

	a.Len(found, 4)
	for n := range found {
		a.True(n >= 0 && n < 4)
	}
}

type fixedGenerator int

func (f fixedGenerator) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}

	return int(f)
}

func TestNewSeed(t *testing.T) {
	assert.Equal(t, int64(1), NewSeed(fixedGenerator(0)))
	assert.Equal(t, int64(math.MaxInt32), NewSeed(fixedGenerator(math.MaxInt32)))
	assert.True(t, NewSeed(Crypto{}) > 0)
}
