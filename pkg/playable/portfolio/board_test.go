package portfolio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"portfolio-sim/pkg/chip"
)

func TestAdjacent(t *testing.T) {
	a := assert.New(t)

	a.True(Adjacent(0, 1))
	a.True(Adjacent(1, 0))
	a.True(Adjacent(0, 2))
	a.True(Adjacent(1, 3))
	a.True(Adjacent(2, 3))

	a.False(Adjacent(0, 3), "diagonals are not adjacent")
	a.False(Adjacent(1, 2), "diagonals are not adjacent")
	a.False(Adjacent(0, 0))
	a.False(Adjacent(-1, 0))
	a.False(Adjacent(3, 4))
}

func TestNeighbors(t *testing.T) {
	assert.Equal(t, []int{1, 2}, Neighbors(0))
	assert.Equal(t, []int{0, 3}, Neighbors(1))
	assert.Equal(t, []int{0, 3}, Neighbors(2))
	assert.Equal(t, []int{1, 2}, Neighbors(3))
	assert.Nil(t, Neighbors(4))

	// callers can't corrupt the table
	n := Neighbors(0)
	n[0] = 3
	assert.Equal(t, []int{1, 2}, Neighbors(0))
}

func TestBoard_Top(t *testing.T) {
	a := assert.New(t)

	b := boardFromStrings("!mover,stacker", "", "binder")
	a.Equal(chip.Stacker, b.Top(0).Kind)
	a.Nil(b.Top(1))
	a.Nil(b.Top(7))
	a.Equal(2, b.Height(0))
	a.Equal(0, b.Height(-1))

	a.True(b.FaceUpTop(0))
	a.False(b.FaceUpTop(1))
	a.True(b.FaceUpTop(2))
	a.False(b.IsEmpty())
	a.True(NewBoard().IsEmpty())
	a.Equal(3, b.ChipCount())
}

func TestBoard_moveTop(t *testing.T) {
	a := assert.New(t)

	b := boardFromStrings("binder,!drawer", "stacker", "", "")
	hidden := b.Top(0)

	a.NoError(b.moveTop(0, 1))
	a.Equal("binder", chip.ToStrings(b.Stack(0)))
	a.Equal("stacker,!drawer", chip.ToStrings(b.Stack(1)))
	a.Equal(hidden, b.Top(1), "the same chip moves, face state untouched")

	err := b.moveTop(0, 3)
	a.True(errors.Is(err, ErrNotAdjacent))
	a.Equal("binder", chip.ToStrings(b.Stack(0)), "rejected moves do not mutate")

	a.True(errors.Is(b.moveTop(2, 0), ErrSourceStackEmpty))
	a.True(errors.Is(b.moveTop(0, 4), ErrPositionOutOfRange))
	a.True(errors.Is(b.moveTop(-1, 0), ErrPositionOutOfRange))
}

func TestBoard_Cleanup(t *testing.T) {
	a := assert.New(t)

	b := boardFromStrings(
		"!mover,stacker,binder",
		"binder",
		"stacker,!drawer",
		"",
	)

	removed := b.Cleanup()
	a.Equal("binder,stacker,binder", chip.ToStrings(removed))
	a.Equal("mover", chip.ToStrings(b.Stack(0)), "new top is revealed")
	a.Equal(0, b.Height(1))
	a.Equal("stacker,drawer", chip.ToStrings(b.Stack(2)), "hidden top is revealed, nothing removed")
	a.Equal(0, b.Height(3))
	a.Equal(3, len(b.Discards()))
	a.Equal(6, b.ChipCount())
}

func TestBoard_Cleanup_emptyBoard(t *testing.T) {
	b := NewBoard()
	removed := b.Cleanup()
	assert.Equal(t, 0, len(removed))
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, len(b.Discards()))
}

func TestBoard_Render(t *testing.T) {
	b := boardFromStrings("binder", "", "!drawer", "stacker,stacker")
	expected := " binder   x1 |  -        x0\n" +
		"[drawer ] x1 |  stacker  x2\n"
	assert.Equal(t, expected, b.String())
}
