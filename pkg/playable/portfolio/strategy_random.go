package portfolio

import (
	"portfolio-sim/internal/rng"
	"portfolio-sim/pkg/chip"
)

// checkOdds is the 1-in-n chance a random player checks on any turn
const checkOdds = 10

// RandomStrategy makes uniformly random legal decisions
type RandomStrategy struct {
	gen           rng.Generator
	watchdogLimit int
}

var _ Strategy = (*RandomStrategy)(nil)

// NewRandomStrategy returns a random strategy driven by gen
func NewRandomStrategy(gen rng.Generator, watchdogLimit int) *RandomStrategy {
	if watchdogLimit <= 0 {
		watchdogLimit = DefaultOptions().WatchdogLimit
	}

	return &RandomStrategy{
		gen:           gen,
		watchdogLimit: watchdogLimit,
	}
}

// ChooseDraftSplit keeps a random half of the batch
func (r *RandomStrategy) ChooseDraftSplit(p *Player, batch []*chip.Chip) ([]*chip.Chip, []*chip.Chip, error) {
	shuffled := append([]*chip.Chip{}, batch...)
	rng.Shuffle(r.gen, len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	half := len(shuffled) / 2
	return shuffled[:half], shuffled[half:], nil
}

// ChooseMove checks occasionally (and always with an empty hand), otherwise does something random with a random chip
func (r *RandomStrategy) ChooseMove(p *Player, board *Board) (*Move, error) {
	if r.gen.Intn(checkOdds) == 0 {
		return Check(), nil
	}

	hand := p.Hand()
	if len(hand) == 0 {
		return Check(), nil
	}

	c := hand[r.gen.Intn(len(hand))]
	switch r.gen.Intn(3) {
	case 0:
		return Discard(c), nil
	case 1:
		return PlayFaceDown(c, r.gen.Intn(Positions)), nil
	default:
		return PlayFaceUp(c, r.gen.Intn(Positions)), nil
	}
}

// ChooseMoverFollowup samples positions until it finds a stack to move from
func (r *RandomStrategy) ChooseMoverFollowup(p *Player, board *Board) (int, int, error) {
	src := -1
	err := Watch(r.watchdogLimit, "mover source search", func() bool {
		pos := r.gen.Intn(Positions)
		if board.Height(pos) == 0 {
			return false
		}

		src = pos
		return true
	})
	if err != nil {
		return 0, 0, err
	}

	neighbors := Neighbors(src)
	return src, neighbors[r.gen.Intn(len(neighbors))], nil
}

// ChooseDrawerFollowup plays the drawn chip at a random position
func (r *RandomStrategy) ChooseDrawerFollowup(p *Player, board *Board, drawn *chip.Chip) (*chip.Chip, int, error) {
	return drawn, r.gen.Intn(Positions), nil
}

// ReviseHoldings flips a coin
func (r *RandomStrategy) ReviseHoldings(p *Player) (bool, error) {
	return r.gen.Intn(2) == 0, nil
}
