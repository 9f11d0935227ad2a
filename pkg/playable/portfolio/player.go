package portfolio

import (
	"portfolio-sim/internal/rng"
	"portfolio-sim/pkg/chip"
)

// Player is one of the two participants in a match
// The deck and holdings last for the whole match; the hand is topped up between games
type Player struct {
	Name     string
	hand     chip.Hand
	deck     *chip.Deck
	holdings chip.Holdings
	strategy Strategy
}

// NewPlayer returns a new player
func NewPlayer(name string, strategy Strategy) *Player {
	return &Player{
		Name:     name,
		hand:     make(chip.Hand, 0),
		deck:     chip.NewDeck(),
		strategy: strategy,
	}
}

// Hand returns a shallow clone of the player's hand
func (p *Player) Hand() chip.Hand {
	return p.hand.Clone()
}

// HasChip returns true if the chip is in the player's hand
func (p *Player) HasChip(c *chip.Chip) bool {
	return p.hand.HasChip(c)
}

// DeckSize returns the number of chips left in the player's deck
func (p *Player) DeckSize() int {
	return p.deck.ChipsLeft()
}

// Holdings returns a shallow copy of the player's holdings
func (p *Player) Holdings() []*chip.Chip {
	return p.holdings.Chips()
}

// Multiplier returns the holdings count for kind
func (p *Player) Multiplier(kind chip.Kind) int {
	return p.holdings.Count(kind)
}

// drawHoldings shuffles the deck and moves the first chips into holdings
func (p *Player) drawHoldings(gen rng.Generator) error {
	p.deck.Shuffle(gen)
	chips, err := p.deck.DrawN(chip.HoldingsSize)
	if err != nil {
		return err
	}

	return p.holdings.Set(chips)
}

// reviseHoldings returns the holdings to the deck and draws fresh ones
func (p *Player) reviseHoldings(gen rng.Generator) error {
	p.deck.Put(p.holdings.Take()...)
	return p.drawHoldings(gen)
}

// drawHand draws exactly n chips into the hand
func (p *Player) drawHand(n int) error {
	chips, err := p.deck.DrawN(n)
	if err != nil {
		return err
	}

	p.hand = append(p.hand, chips...)
	return nil
}

// refillHand draws up to n chips into the hand and returns how many were drawn
func (p *Player) refillHand(n int) int {
	chips := p.deck.DrawUpTo(n)
	p.hand = append(p.hand, chips...)
	return len(chips)
}

// chipCount is the number of chips the player owns across hand, deck and holdings
func (p *Player) chipCount() int {
	return len(p.hand) + p.deck.ChipsLeft() + p.holdings.Len()
}
