package portfolio

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"portfolio-sim/internal/rng"
	"portfolio-sim/pkg/chip"
)

// draft constants
const (
	DraftRounds    = 6
	DraftBatchSize = 6
	DraftKeep      = DraftBatchSize / 2
	DeckSize       = DraftRounds * DraftKeep
)

// Draft shuffles the chip pool and deals it into the players' decks
// Each round the chooser splits a batch of six; the kept half goes to the chooser's deck and
// the other half to the opponent's. Player 0 chooses first and the role alternates every round.
func Draft(logger logrus.FieldLogger, players [2]*Player, gen rng.Generator) error {
	pool := chip.NewPool()
	rng.Shuffle(gen, len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	chooser, receiver := players[0], players[1]
	for round := 0; round < DraftRounds; round++ {
		batch := pool[round*DraftBatchSize : (round+1)*DraftBatchSize]

		keep, give, err := chooser.strategy.ChooseDraftSplit(chooser, append([]*chip.Chip{}, batch...))
		if err != nil {
			return setupError(fmt.Errorf("%s could not split draft round %d: %w", chooser.Name, round, err))
		}

		if err := validateSplit(chooser.Name, batch, keep, give); err != nil {
			return setupError(err)
		}

		chooser.deck.Put(keep...)
		receiver.deck.Put(give...)

		logger.WithFields(logrus.Fields{
			"round":   round,
			"chooser": chooser.Name,
			"keep":    chip.ToStrings(keep),
			"give":    chip.ToStrings(give),
		}).Debug("draft round")

		chooser, receiver = receiver, chooser
	}

	return nil
}

// validateSplit ensures keep and give partition batch exactly in half
func validateSplit(player string, batch, keep, give []*chip.Chip) error {
	if len(keep) != DraftKeep || len(give) != DraftKeep {
		return DraftSplitError{Player: player, Keep: len(keep), Give: len(give)}
	}

	offered := make(map[*chip.Chip]bool, len(batch))
	for _, c := range batch {
		offered[c] = true
	}

	used := make(map[*chip.Chip]bool, len(batch))
	for _, c := range append(append([]*chip.Chip{}, keep...), give...) {
		if !offered[c] {
			return DraftSplitError{Player: player, Reason: "chip was not in the offered batch"}
		}

		if used[c] {
			return DraftSplitError{Player: player, Reason: "chip was used twice"}
		}

		used[c] = true
	}

	return nil
}
