package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"portfolio-sim/internal/rng"
)

// sequence returns its values in order, wrapping each into range
type sequence struct {
	values []int
	next   int
}

func (s *sequence) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func TestGetRandomName(t *testing.T) {
	gen := &sequence{values: []int{6, 9, 27, 11}}
	assert.Equal(t, "Waiving Lion", GetRandomName(gen))
	assert.Equal(t, "Jumping Bear", GetRandomName(gen))
}

func TestGetRandomNames(t *testing.T) {
	a := assert.New(t)

	// the second draw repeats the first and is skipped
	gen := &sequence{values: []int{0, 0, 0, 0, 1, 1}}
	a.Equal([]string{"Fast Dog", "Slow Cat"}, GetRandomNames(gen, 2))

	names := GetRandomNames(rng.NewSeeded(1), 5)
	a.Equal(5, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		a.False(seen[name])
		seen[name] = true
	}
}
