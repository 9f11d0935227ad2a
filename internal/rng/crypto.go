package rng

import (
	"crypto/rand"
	"math"
	"math/big"
)

// Crypto draws from crypto/rand
// Nothing in a match uses it directly; it only picks seeds, which are then reported so a run can be replayed.
type Crypto struct{}

// Intn returns a number in [0, n)
func (Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// NewSeed returns a seed in [1, math.MaxInt32] drawn from gen
// Zero is reserved for "pick one for me" so it is never returned.
func NewSeed(gen Generator) int64 {
	return int64(gen.Intn(math.MaxInt32)) + 1
}
