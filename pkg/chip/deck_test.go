package chip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"portfolio-sim/internal/rng"
)

func TestDeck_Draw(t *testing.T) {
	d := NewDeck()
	d.Put(FromStrings("mover,stacker,drawer")...)

	if !d.CanDraw(3) {
		t.Errorf("expected CanDraw(3) to be true")
	}

	if d.CanDraw(4) {
		t.Errorf("expected CanDraw(4) to be false")
	}

	c, err := d.Draw()
	assert.NoError(t, err)
	assert.Equal(t, Mover, c.Kind)
	assert.Equal(t, 2, d.ChipsLeft())

	_, _ = d.Draw()
	_, _ = d.Draw()

	c, err = d.Draw()
	assert.Nil(t, c)
	assert.Equal(t, ErrEndOfDeck, err)
}

func TestDeck_DrawN(t *testing.T) {
	a := assert.New(t)

	d := NewDeck()
	d.Put(FromStrings("mover,stacker,drawer,binder")...)

	chips, err := d.DrawN(5)
	a.Equal(ErrEndOfDeck, err)
	a.Nil(chips)
	a.Equal(4, d.ChipsLeft(), "nothing drawn on failure")

	chips, err = d.DrawN(3)
	a.NoError(err)
	a.Equal("mover,stacker,drawer", ToStrings(chips))
	a.Equal("binder", ToStrings(d.Chips))

	chips = d.DrawUpTo(3)
	a.Equal("binder", ToStrings(chips))
	a.Equal(0, d.ChipsLeft())
	a.Equal(0, len(d.DrawUpTo(3)))
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d1 := NewDeck()
	d1.Put(NewPool()...)
	d2 := NewDeck()
	d2.Put(NewPool()...)

	unshuffled := d1.HashCode()
	a.Equal(unshuffled, d2.HashCode())

	d1.Shuffle(rng.NewSeeded(1))
	d2.Shuffle(rng.NewSeeded(1))
	a.Equal(d1.HashCode(), d2.HashCode())
	a.Equal(UniverseSize, d1.ChipsLeft())

	d2.Shuffle(rng.NewSeeded(2))
	a.NotEqual(d1.HashCode(), d2.HashCode())
	a.NotEqual(unshuffled, d1.HashCode())
}
