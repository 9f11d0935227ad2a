package gamefactory

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"portfolio-sim/internal/rng"
	"portfolio-sim/pkg/playable"
	"portfolio-sim/pkg/playable/portfolio"
)

type portfolioFactory struct{}

func (p portfolioFactory) Details(additionalData playable.AdditionalData) (string, error) {
	opts := getPortfolioOptions(additionalData)
	if opts.Seed == 0 {
		return "Portfolio", nil
	}

	return fmt.Sprintf("Portfolio (seed %d)", opts.Seed), nil
}

// CreateGame builds a match between two random players
// The seed drives everything: each strategy gets its own generator derived from it, then the
// same generator runs the draft and deck shuffles.
func (p portfolioFactory) CreateGame(logger logrus.FieldLogger, playerNames []string, additionalData playable.AdditionalData) (playable.Playable, error) {
	if len(playerNames) != 2 {
		return nil, portfolio.SetupError{Err: fmt.Errorf("expected 2 players, got %d", len(playerNames))}
	}

	opts := getPortfolioOptions(additionalData)
	if opts.Seed == 0 {
		opts.Seed = rng.NewSeed(rng.Crypto{})
	}

	gen := rng.NewSeeded(opts.Seed)

	var players [2]*portfolio.Player
	for i, name := range playerNames {
		strategyGen := rng.NewSeeded(rng.NewSeed(gen))
		players[i] = portfolio.NewPlayer(name, portfolio.NewRandomStrategy(strategyGen, opts.WatchdogLimit))
	}

	match, err := portfolio.NewMatch(logger.WithField("seed", opts.Seed), players, gen, opts)
	if err != nil {
		return nil, err
	}

	return match, nil
}

func getPortfolioOptions(additionalData playable.AdditionalData) portfolio.Options {
	opts := portfolio.DefaultOptions()

	if seed, ok := additionalData.GetInt64("seed"); ok && seed > 0 {
		opts.Seed = seed
	}

	if handSize, ok := additionalData.GetInt("handSize"); ok && handSize > 0 {
		opts.HandSize = handSize
	}

	if refillSize, ok := additionalData.GetInt("refillSize"); ok && refillSize >= 0 {
		opts.RefillSize = refillSize
	}

	if limit, ok := additionalData.GetInt("watchdogLimit"); ok && limit > 0 {
		opts.WatchdogLimit = limit
	}

	return opts
}
