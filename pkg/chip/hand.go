package chip

import "errors"

// ErrChipNotInHand happens when a chip is referenced that the player does not hold
var ErrChipNotInHand = errors.New("chip is not in player's hand")

// Hand represents the chips a player can currently play
type Hand []*Chip

// AddChip adds a chip to the hand
func (h *Hand) AddChip(c *Chip) {
	*h = append(*h, c)
}

// HasChip returns true if this exact chip is in the hand
func (h Hand) HasChip(c *Chip) bool {
	for _, held := range h {
		if held == c {
			return true
		}
	}

	return false
}

// Remove takes this exact chip out of the hand
func (h *Hand) Remove(c *Chip) error {
	for i, held := range *h {
		if held == c {
			*h = append((*h)[:i], (*h)[i+1:]...)
			return nil
		}
	}

	return ErrChipNotInHand
}

func (h Hand) String() string {
	return ToStrings(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
