package chip

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"portfolio-sim/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more chips
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck is the ordered collection of chips a player draws from
// The deck is built once during the draft and only grows again through a holdings revision
type Deck struct {
	Chips []*Chip `json:"chips"`
}

// NewDeck returns an empty deck
func NewDeck() *Deck {
	return &Deck{
		Chips: make([]*Chip, 0, UniverseSize/2),
	}
}

// Put adds the chips to the bottom of the deck
func (d *Deck) Put(chips ...*Chip) {
	d.Chips = append(d.Chips, chips...)
}

// Shuffle will shuffle the deck using the generator
func (d *Deck) Shuffle(gen rng.Generator) {
	rng.Shuffle(gen, len(d.Chips), func(i, j int) {
		d.Chips[i], d.Chips[j] = d.Chips[j], d.Chips[i]
	})
}

// Draw will draw the next chip
// If there are no more chips, an ErrEndOfDeck is returned along with a nil chip.
func (d *Deck) Draw() (*Chip, error) {
	if len(d.Chips) <= 0 {
		return nil, ErrEndOfDeck
	}

	c := d.Chips[0]
	d.Chips = d.Chips[1:]

	return c, nil
}

// DrawN draws exactly n chips
// If fewer than n chips are left, nothing is drawn and ErrEndOfDeck is returned
func (d *Deck) DrawN(n int) ([]*Chip, error) {
	if !d.CanDraw(n) {
		return nil, ErrEndOfDeck
	}

	chips := make([]*Chip, n)
	copy(chips, d.Chips[:n])
	d.Chips = d.Chips[n:]

	return chips, nil
}

// DrawUpTo draws at most n chips, fewer if the deck runs out
func (d *Deck) DrawUpTo(n int) []*Chip {
	if left := len(d.Chips); n > left {
		n = left
	}

	chips, _ := d.DrawN(n)
	return chips
}

// CanDraw returns true if there are {want} chips left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Chips) >= want
}

// ChipsLeft returns the number of chips left in the deck
func (d *Deck) ChipsLeft() int {
	return len(d.Chips)
}

// HashCode returns a SHA1 hash code of the deck order
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, c := range d.Chips {
		_, _ = hash.Write([]byte(ToString(c)))
		_, _ = hash.Write([]byte{','})
	}

	return hex.EncodeToString(hash.Sum(nil))
}
