package portfolio

import (
	"errors"
	"fmt"

	"portfolio-sim/pkg/chip"
)

// ErrGameIsOver is an error when a step is attempted on a finished game
var ErrGameIsOver = errors.New("game is over")

// ErrGameNotOver is an error when a game is scored before both players checked
var ErrGameNotOver = errors.New("game is not over")

// ErrMatchAlreadyPlayed is returned when Play() is called more than once
var ErrMatchAlreadyPlayed = errors.New("match has already been played")

// ErrChipNotInHand happens when the player references a chip they don't have
var ErrChipNotInHand = chip.ErrChipNotInHand

// ErrMissingChip happens when a discard or play move has no chip
var ErrMissingChip = errors.New("move requires a chip")

// ErrPositionOutOfRange happens when a board position is not between 0 and 3
var ErrPositionOutOfRange = errors.New("board position out of range")

// ErrSourceStackEmpty happens when a mover follow-up picks an empty source stack
var ErrSourceStackEmpty = errors.New("source stack is empty")

// ErrNotAdjacent happens when a mover follow-up destination does not neighbor the source
var ErrNotAdjacent = errors.New("destination is not adjacent to source")

// ErrUnknownMoveType happens when a move has an unrecognized type
var ErrUnknownMoveType = errors.New("unknown move type")

// ErrNilMove happens when a strategy returns no move
var ErrNilMove = errors.New("strategy returned no move")

// ErrDuplicatePlayerName happens when both players share a name
var ErrDuplicatePlayerName = errors.New("player names must be unique")

// ErrMissingPlayerName happens when a player has no name
var ErrMissingPlayerName = errors.New("player name is required")

// ErrMissingStrategy happens when a player has no strategy
var ErrMissingStrategy = errors.New("player strategy is required")

// SetupError is a violation detected while building the match: bad chips, bad draft, bad holdings
type SetupError struct {
	Err error
}

func (s SetupError) Error() string {
	return fmt.Sprintf("setup violation: %v", s.Err)
}

func (s SetupError) Unwrap() error {
	return s.Err
}

func setupError(err error) error {
	if err == nil {
		return nil
	}

	var se SetupError
	if errors.As(err, &se) {
		return err
	}

	return SetupError{Err: err}
}

// DraftSplitError is returned when a strategy does not split a draft batch into 3 kept and 3 given chips
type DraftSplitError struct {
	Player string
	Keep   int
	Give   int
	Reason string
}

func (d DraftSplitError) Error() string {
	if d.Reason != "" {
		return fmt.Sprintf("invalid draft split from %s: %s", d.Player, d.Reason)
	}

	return fmt.Sprintf("invalid draft split from %s: expected %d/%d, got %d/%d", d.Player, DraftKeep, DraftKeep, d.Keep, d.Give)
}

// IllegalMoveError wraps any contract violation made by a player during a game
type IllegalMoveError struct {
	Player string
	Move   *Move
	Err    error
}

func (i IllegalMoveError) Error() string {
	if i.Move == nil {
		return fmt.Sprintf("illegal move by %s: %v", i.Player, i.Err)
	}

	return fmt.Sprintf("illegal move by %s (%s): %v", i.Player, i.Move, i.Err)
}

func (i IllegalMoveError) Unwrap() error {
	return i.Err
}

// WatchdogError is returned when a bounded search for a legal choice runs out of iterations
type WatchdogError struct {
	Operation string
	Limit     int
}

func (w WatchdogError) Error() string {
	return fmt.Sprintf("watchdog: %s exceeded %d iterations", w.Operation, w.Limit)
}

// FailureKind categorizes why a run failed
type FailureKind int

// failure kinds
const (
	FailureNone FailureKind = iota
	FailureSetup
	FailureIllegalMove
	FailureExhausted
	FailureOther
)

func (f FailureKind) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureSetup:
		return "setup"
	case FailureIllegalMove:
		return "illegal-move"
	case FailureExhausted:
		return "exhausted"
	default:
		return "other"
	}
}

// Classify returns the failure kind of err
func Classify(err error) FailureKind {
	if err == nil {
		return FailureNone
	}

	var we WatchdogError
	if errors.As(err, &we) {
		return FailureExhausted
	}

	var ime IllegalMoveError
	if errors.As(err, &ime) {
		return FailureIllegalMove
	}

	var se SetupError
	if errors.As(err, &se) {
		return FailureSetup
	}

	return FailureOther
}
