package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeeded_Reproducible(t *testing.T) {
	a := assert.New(t)

	s1 := NewSeeded(42)
	s2 := NewSeeded(42)
	a.Equal(int64(42), s1.Seed())

	for i := 0; i < 100; i++ {
		a.Equal(s1.Intn(1000), s2.Intn(1000))
	}
}

func TestSeeded_ZeroSeed(t *testing.T) {
	s := NewSeeded(0)
	assert.NotEqual(t, int64(0), s.Seed())
}

func TestShuffle(t *testing.T) {
	a := assert.New(t)

	values := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(NewSeeded(7), len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	a.Len(values, 8)
	a.ElementsMatch([]int{1, 2, 3, 4, 5, 6, 7, 8}, values)

	again := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(NewSeeded(7), len(again), func(i, j int) {
		again[i], again[j] = again[j], again[i]
	})
	a.Equal(values, again)
}
