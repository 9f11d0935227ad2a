package portfolio

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"portfolio-sim/pkg/chip"
)

// zeroGenerator always returns 0, which makes rng.Shuffle rotate a slice left by one
type zeroGenerator struct{}

func (zeroGenerator) Intn(int) int {
	return 0
}

type moveFunc func(p *Player, b *Board) *Move

// scriptedStrategy replays queued decisions; once the move queue is empty it checks
type scriptedStrategy struct {
	moves   []moveFunc
	movers  [][2]int
	drawers []func(p *Player, drawn *chip.Chip) (*chip.Chip, int)

	moverErr  error
	drawerErr error
	reviseErr error

	revise      bool
	reviseCalls int
	drawerCalls int

	// onDecision is called before every decision during a game
	onDecision func(p *Player, b *Board)
}

var _ Strategy = (*scriptedStrategy)(nil)

func (s *scriptedStrategy) ChooseDraftSplit(p *Player, batch []*chip.Chip) ([]*chip.Chip, []*chip.Chip, error) {
	return batch[:3], batch[3:], nil
}

func (s *scriptedStrategy) ChooseMove(p *Player, b *Board) (*Move, error) {
	s.decide(p, b)
	if len(s.moves) == 0 {
		return Check(), nil
	}

	next := s.moves[0]
	s.moves = s.moves[1:]
	return next(p, b), nil
}

func (s *scriptedStrategy) ChooseMoverFollowup(p *Player, b *Board) (int, int, error) {
	s.decide(p, b)
	if s.moverErr != nil {
		return 0, 0, s.moverErr
	}

	if len(s.movers) == 0 {
		return 0, 0, errors.New("no scripted mover follow-up")
	}

	next := s.movers[0]
	s.movers = s.movers[1:]
	return next[0], next[1], nil
}

func (s *scriptedStrategy) ChooseDrawerFollowup(p *Player, b *Board, drawn *chip.Chip) (*chip.Chip, int, error) {
	s.decide(p, b)
	s.drawerCalls++
	if s.drawerErr != nil {
		return nil, 0, s.drawerErr
	}

	if len(s.drawers) == 0 {
		return drawn, 0, nil
	}

	next := s.drawers[0]
	s.drawers = s.drawers[1:]
	c, pos := next(p, drawn)
	return c, pos, nil
}

func (s *scriptedStrategy) ReviseHoldings(p *Player) (bool, error) {
	s.reviseCalls++
	return s.revise, s.reviseErr
}

func (s *scriptedStrategy) decide(p *Player, b *Board) {
	if s.onDecision != nil {
		s.onDecision(p, b)
	}
}

// play returns a move that plays the first chip of kind in the hand
func play(kind chip.Kind, pos int, faceUp bool) moveFunc {
	return func(p *Player, b *Board) *Move {
		for _, c := range p.Hand() {
			if c.Kind == kind {
				if faceUp {
					return PlayFaceUp(c, pos)
				}

				return PlayFaceDown(c, pos)
			}
		}

		panic("no chip of kind " + string(kind) + " in hand")
	}
}

func check() moveFunc {
	return func(p *Player, b *Board) *Move {
		return Check()
	}
}

func fixed(m *Move) moveFunc {
	return func(p *Player, b *Board) *Move {
		return m
	}
}

// boardFromStrings builds a board; each argument is one stack, bottom first
func boardFromStrings(stacks ...string) *Board {
	b := NewBoard()
	for pos, s := range stacks {
		for _, c := range chip.FromStrings(s) {
			b.push(pos, c)
		}
	}

	return b
}

// newTestPlayer builds a player with the given hand, deck and holdings
func newTestPlayer(name string, s Strategy, hand, deck, holdings string) *Player {
	p := NewPlayer(name, s)
	p.hand = chip.FromStrings(hand)
	p.deck.Put(chip.FromStrings(deck)...)
	if holdings != "" {
		if err := p.holdings.Set(chip.FromStrings(holdings)); err != nil {
			panic(err)
		}
	}

	return p
}

func newTestGame(board *Board, p0, p1 *Player) *Game {
	return NewGame(testLogger(), 1, board, [2]*Player{p0, p1})
}

func testLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger
}
