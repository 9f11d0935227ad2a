package portfolio

import "portfolio-sim/pkg/chip"

// PositionScore is what a scoring stack is worth before the holdings multiplier
type PositionScore struct {
	Position int       `json:"position"`
	Kind     chip.Kind `json:"kind"`
	Height   int       `json:"height"`
	Value    int       `json:"value"`
}

// ScoreBreakdown returns the base value of every stack with a face-up top chip
//
// A face-up top is worth 1. A stacker is worth the stack's height, and a binder is worth
// 1 plus the number of adjacent stacks that also show a face-up top.
func ScoreBreakdown(b *Board) []*PositionScore {
	scores := make([]*PositionScore, 0, Positions)
	for pos := 0; pos < Positions; pos++ {
		if !b.FaceUpTop(pos) {
			continue
		}

		top := b.Top(pos)
		value := 1
		switch top.Kind {
		case chip.Stacker:
			value = b.Height(pos)
		case chip.Binder:
			for _, n := range Neighbors(pos) {
				if b.FaceUpTop(n) {
					value++
				}
			}
		}

		scores = append(scores, &PositionScore{
			Position: pos,
			Kind:     top.Kind,
			Height:   b.Height(pos),
			Value:    value,
		})
	}

	return scores
}

// CalculateScore returns each player's score for the board, keyed by name
// The board is not modified.
func CalculateScore(b *Board, players [2]*Player) map[string]int {
	breakdown := ScoreBreakdown(b)

	scores := make(map[string]int, len(players))
	for _, p := range players {
		score := 0
		for _, ps := range breakdown {
			score += ps.Value * p.Multiplier(ps.Kind)
		}

		scores[p.Name] = score
	}

	return scores
}
