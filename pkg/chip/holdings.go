package chip

import "fmt"

// HoldingsSize is the exact number of chips in a player's holdings
const HoldingsSize = 3

// HoldingsSizeError is returned when holdings are set with the wrong number of chips
type HoldingsSizeError int

func (h HoldingsSizeError) Error() string {
	return fmt.Sprintf("holdings require exactly %d chips, got %d", HoldingsSize, int(h))
}

// Holdings is the private set of chips that multiplies a player's score
// It never takes part in moves
type Holdings struct {
	chips []*Chip
}

// Set replaces the holdings
func (h *Holdings) Set(chips []*Chip) error {
	if len(chips) != HoldingsSize {
		return HoldingsSizeError(len(chips))
	}

	h.chips = append([]*Chip{}, chips...)
	return nil
}

// Take removes and returns the held chips
func (h *Holdings) Take() []*Chip {
	chips := h.chips
	h.chips = nil
	return chips
}

// Chips returns a shallow copy of the held chips
func (h *Holdings) Chips() []*Chip {
	return append([]*Chip{}, h.chips...)
}

// Len returns the number of chips held
func (h *Holdings) Len() int {
	return len(h.chips)
}

// Count returns the multiplier for the kind (0-3)
func (h *Holdings) Count(kind Kind) int {
	n := 0
	for _, c := range h.chips {
		if c.Kind == kind {
			n++
		}
	}

	return n
}

func (h *Holdings) String() string {
	return ToStrings(h.chips)
}
