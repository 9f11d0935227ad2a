package portfolio

import (
	"fmt"
	"strings"

	"portfolio-sim/pkg/chip"
)

// Positions is the number of stacks on the board
const Positions = 4

// the board is laid out as
//
//	0 1
//	2 3
//
// and only orthogonal neighbors are adjacent (0-3 and 1-2 are not)
var adjacency = [Positions][]int{
	{1, 2},
	{0, 3},
	{0, 3},
	{1, 2},
}

// ValidPosition returns true if pos is a board position
func ValidPosition(pos int) bool {
	return pos >= 0 && pos < Positions
}

// Neighbors returns the positions adjacent to pos
func Neighbors(pos int) []int {
	if !ValidPosition(pos) {
		return nil
	}

	return append([]int{}, adjacency[pos]...)
}

// Adjacent returns true if a and b are neighbors
func Adjacent(a, b int) bool {
	if !ValidPosition(a) || !ValidPosition(b) {
		return false
	}

	for _, n := range adjacency[a] {
		if n == b {
			return true
		}
	}

	return false
}

// Board is the shared 2x2 grid of chip stacks
// It belongs to the match and carries over from game to game. Chips that are
// discarded, by a move or by cleanup, are kept on the board's discard pile.
type Board struct {
	stacks   [Positions][]*chip.Chip
	discards []*chip.Chip
}

// NewBoard returns an empty board
func NewBoard() *Board {
	return &Board{}
}

// Stack returns a copy of the stack at pos, bottom first
func (b *Board) Stack(pos int) []*chip.Chip {
	if !ValidPosition(pos) {
		return nil
	}

	return append([]*chip.Chip{}, b.stacks[pos]...)
}

// Height returns the number of chips at pos
func (b *Board) Height(pos int) int {
	if !ValidPosition(pos) {
		return 0
	}

	return len(b.stacks[pos])
}

// Top returns the most recently played chip at pos, or nil
func (b *Board) Top(pos int) *chip.Chip {
	n := b.Height(pos)
	if n == 0 {
		return nil
	}

	return b.stacks[pos][n-1]
}

// FaceUpTop returns true if the stack at pos is non-empty and its top chip is face up
func (b *Board) FaceUpTop(pos int) bool {
	top := b.Top(pos)
	return top != nil && !top.Hidden()
}

// IsEmpty returns true if no stack has a chip
func (b *Board) IsEmpty() bool {
	for pos := range b.stacks {
		if len(b.stacks[pos]) > 0 {
			return false
		}
	}

	return true
}

// Discards returns a copy of the discard pile
func (b *Board) Discards() []*chip.Chip {
	return append([]*chip.Chip{}, b.discards...)
}

// ChipCount returns the number of chips on the stacks and the discard pile
func (b *Board) ChipCount() int {
	n := len(b.discards)
	for pos := range b.stacks {
		n += len(b.stacks[pos])
	}

	return n
}

func (b *Board) push(pos int, c *chip.Chip) {
	b.stacks[pos] = append(b.stacks[pos], c)
}

func (b *Board) pop(pos int) *chip.Chip {
	n := len(b.stacks[pos])
	c := b.stacks[pos][n-1]
	b.stacks[pos] = b.stacks[pos][:n-1]
	return c
}

func (b *Board) discard(c *chip.Chip) {
	b.discards = append(b.discards, c)
}

// moveTop moves the top chip of src onto dst, whatever its face
func (b *Board) moveTop(src, dst int) error {
	if !ValidPosition(src) || !ValidPosition(dst) {
		return fmt.Errorf("%w: %d->%d", ErrPositionOutOfRange, src, dst)
	}

	if len(b.stacks[src]) == 0 {
		return fmt.Errorf("%w: %d", ErrSourceStackEmpty, src)
	}

	if !Adjacent(src, dst) {
		return fmt.Errorf("%w: %d->%d", ErrNotAdjacent, src, dst)
	}

	b.push(dst, b.pop(src))
	return nil
}

// Cleanup prepares the board for the next game
// Every face-up chip is removed from the top of each stack and discarded, then the
// chip left on top (if any) is turned face up. The discarded chips are returned.
func (b *Board) Cleanup() []*chip.Chip {
	removed := make([]*chip.Chip, 0)
	for pos := range b.stacks {
		for b.FaceUpTop(pos) {
			c := b.pop(pos)
			b.discard(c)
			removed = append(removed, c)
		}

		if top := b.Top(pos); top != nil {
			top.Reveal()
		}
	}

	return removed
}

func (b *Board) String() string {
	return b.Render(false)
}

// Render draws the board as a 2x2 grid of top chips with stack heights
func (b *Board) Render(color bool) string {
	var sb strings.Builder
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			pos := row*2 + col
			if col > 0 {
				sb.WriteString(" | ")
			}

			top := b.Top(pos)
			if top == nil {
				sb.WriteString(fmt.Sprintf(" %-7s ", "-"))
			} else {
				sb.WriteString(chip.Render(top, color))
			}

			sb.WriteString(fmt.Sprintf(" x%d", b.Height(pos)))
		}

		sb.WriteString("\n")
	}

	return sb.String()
}
