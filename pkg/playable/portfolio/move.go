package portfolio

import (
	"fmt"

	"portfolio-sim/pkg/chip"
)

// MoveType is the kind of move a player makes on their turn
type MoveType int

// move types
const (
	MoveDiscard MoveType = iota + 1
	MoveCheck
	MovePlayFaceDown
	MovePlayFaceUp
)

func (m MoveType) String() string {
	switch m {
	case MoveDiscard:
		return "discard"
	case MoveCheck:
		return "check"
	case MovePlayFaceDown:
		return "play-face-down"
	case MovePlayFaceUp:
		return "play-face-up"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// Move is a single move
// Chip is required for discards and plays. Position is only used by plays.
type Move struct {
	Type     MoveType
	Chip     *chip.Chip
	Position int
}

// Check returns a check (pass) move
func Check() *Move {
	return &Move{Type: MoveCheck}
}

// Discard returns a move that discards c
func Discard(c *chip.Chip) *Move {
	return &Move{Type: MoveDiscard, Chip: c}
}

// PlayFaceDown returns a move that plays c face down onto pos
func PlayFaceDown(c *chip.Chip, pos int) *Move {
	return &Move{Type: MovePlayFaceDown, Chip: c, Position: pos}
}

// PlayFaceUp returns a move that plays c face up onto pos
func PlayFaceUp(c *chip.Chip, pos int) *Move {
	return &Move{Type: MovePlayFaceUp, Chip: c, Position: pos}
}

func (m *Move) String() string {
	switch m.Type {
	case MoveCheck:
		return "check"
	case MoveDiscard:
		return fmt.Sprintf("discard %s", kindOf(m.Chip))
	case MovePlayFaceDown:
		return fmt.Sprintf("play %s face down at %d", kindOf(m.Chip), m.Position)
	case MovePlayFaceUp:
		return fmt.Sprintf("play %s face up at %d", kindOf(m.Chip), m.Position)
	default:
		return m.Type.String()
	}
}

func kindOf(c *chip.Chip) string {
	if c == nil {
		return "<nil>"
	}

	return string(c.Kind)
}
