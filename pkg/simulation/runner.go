package simulation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"portfolio-sim/internal/rng"
	"portfolio-sim/pkg/gamefactory"
	"portfolio-sim/pkg/playable"
	"portfolio-sim/pkg/playable/portfolio"
)

// GameName is the factory every run is created from
const GameName = "portfolio"

// ErrNoMatches is returned when a runner is asked to run nothing
var ErrNoMatches = errors.New("number of matches must be greater than 0")

// Options configure a batch of matches
type Options struct {
	// Matches is the number of matches to run
	Matches int
	// Seed is the master seed every run seed is derived from; 0 picks one
	Seed int64
	// PlayerNames must hold two distinct names
	PlayerNames []string
	// HandSize and WatchdogLimit are passed to every match; 0 keeps the game default
	HandSize      int
	WatchdogLimit int
	// RefillSize is passed as is; 0 means hands are never refilled
	RefillSize int
}

// Run is the outcome of a single match
type Run struct {
	ID      string
	Number  int
	Seed    int64
	Game    playable.Playable
	Details *playable.GameOverDetails
	Err     error
}

// Failure returns how the run failed, if it did
func (r *Run) Failure() portfolio.FailureKind {
	return portfolio.Classify(r.Err)
}

// MatchLog returns the match log of a finished run, or nil
func (r *Run) MatchLog() *portfolio.MatchLog {
	if r.Details == nil {
		return nil
	}

	ml, _ := r.Details.Log.(*portfolio.MatchLog)
	return ml
}

// Runner plays a batch of matches one after the other
type Runner struct {
	opts    Options
	factory gamefactory.GameFactory
	seed    int64
	gen     rng.Generator
	logger  logrus.FieldLogger

	// OnRun, if set, is called after every match
	OnRun func(run *Run)
}

// NewRunner returns a runner for the options
func NewRunner(logger logrus.FieldLogger, opts Options) (*Runner, error) {
	if opts.Matches <= 0 {
		return nil, ErrNoMatches
	}

	if len(opts.PlayerNames) != 2 {
		return nil, fmt.Errorf("expected 2 player names, got %d", len(opts.PlayerNames))
	}

	factory, err := gamefactory.Get(GameName)
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rng.NewSeed(rng.Crypto{})
	}

	return &Runner{
		opts:    opts,
		factory: factory,
		seed:    seed,
		gen:     rng.NewSeeded(seed),
		logger:  logger.WithField("masterSeed", seed),
	}, nil
}

// Seed returns the master seed
func (r *Runner) Seed() int64 {
	return r.seed
}

// Run plays every match and returns the aggregated stats
// A failed match is counted and the batch carries on. Only a cancelled context stops the
// batch early; the stats collected so far are returned with the context's error.
func (r *Runner) Run(ctx context.Context) (*Stats, error) {
	stats := NewStats(r.opts.PlayerNames)
	stats.Seed = r.seed

	for i := 1; i <= r.opts.Matches; i++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		run := r.runOne(i, rng.NewSeed(r.gen))
		stats.Add(run)

		if r.OnRun != nil {
			r.OnRun(run)
		}
	}

	r.logger.WithFields(logrus.Fields{
		"matches":  stats.Matches,
		"failures": stats.FailureCount(),
	}).Info("batch complete")

	return stats, nil
}

func (r *Runner) runOne(number int, seed int64) *Run {
	run := &Run{
		ID:     uuid.New().String(),
		Number: number,
		Seed:   seed,
	}

	log := r.logger.WithFields(logrus.Fields{
		"run":  run.ID,
		"seed": seed,
	})

	game, err := r.factory.CreateGame(log, r.opts.PlayerNames, r.additionalData(seed))
	if err != nil {
		run.Err = err
		log.WithError(err).WithField("failure", run.Failure().String()).Warn("could not create match")
		return run
	}

	run.Game = game
	if err := game.Play(); err != nil {
		run.Err = err
		log.WithError(err).WithField("failure", run.Failure().String()).Warn("match failed")
		return run
	}

	details, isOver := game.GetEndOfGameDetails()
	if !isOver {
		run.Err = fmt.Errorf("match %d did not finish", number)
		log.WithError(run.Err).Error("match failed")
		return run
	}

	run.Details = details
	return run
}

func (r *Runner) additionalData(seed int64) playable.AdditionalData {
	ad := playable.AdditionalData{"seed": seed}
	if r.opts.HandSize > 0 {
		ad["handSize"] = r.opts.HandSize
	}

	if r.opts.RefillSize >= 0 {
		ad["refillSize"] = r.opts.RefillSize
	}

	if r.opts.WatchdogLimit > 0 {
		ad["watchdogLimit"] = r.opts.WatchdogLimit
	}

	return ad
}
