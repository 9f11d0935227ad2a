package portfolio

import (
	"fmt"

	"portfolio-sim/pkg/chip"
)

// Options are options for creating a new match
type Options struct {
	// HandSize is the number of chips drawn into the hand before the first game
	HandSize int
	// RefillSize is the most chips drawn into the hand between games
	RefillSize int
	// WatchdogLimit bounds the random strategy's search for a legal choice
	WatchdogLimit int
	// Seed seeds the match generator; 0 picks one from the clock
	Seed int64
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		HandSize:      7,
		RefillSize:    3,
		WatchdogLimit: 1000,
		Seed:          0,
	}
}

func (o Options) validate() error {
	if maxHand := DeckSize - chip.HoldingsSize; o.HandSize < 0 || o.HandSize > maxHand {
		return fmt.Errorf("hand size must be between 0 and %d, got %d", maxHand, o.HandSize)
	}

	if o.RefillSize < 0 {
		return fmt.Errorf("refill size cannot be negative, got %d", o.RefillSize)
	}

	if o.WatchdogLimit <= 0 {
		return fmt.Errorf("watchdog limit must be greater than 0, got %d", o.WatchdogLimit)
	}

	return nil
}
