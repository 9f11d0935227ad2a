package portfolio

// Tie is the winner index of a game or match that nobody won
const Tie = -1

// MaxGames is the most games a match can take
const MaxGames = 3

// Result contains the result of a completed match
type Result struct {
	// Winner is nil when the match is tied
	Winner *Player
	Wins   [2]int
	Ties   int
	Games  int
}

// IsTie returns true if nobody won the match
func (r *Result) IsTie() bool {
	return r.Winner == nil
}

// DecideMatch applies the match rules to the game winners, in the order the games were played
// Each entry is 0, 1 or Tie.
//
// The rules are checked after every game from the second on, and the first game that leaves
// exactly one player with two wins, or with one win alongside at least one tie, decides the
// match. If three games pass without that, the player with more wins takes it and equal
// wins is a tie. decided is false while the match still needs another game.
func DecideMatch(winners []int) (winner int, decided bool) {
	for played := 2; played <= len(winners); played++ {
		if w, ok := decidedAfter(winners[:played]); ok {
			return w, true
		}
	}

	if len(winners) < MaxGames {
		return Tie, false
	}

	wins, _ := tally(winners)
	switch {
	case wins[0] > wins[1]:
		return 0, true
	case wins[1] > wins[0]:
		return 1, true
	default:
		return Tie, true
	}
}

func decidedAfter(winners []int) (int, bool) {
	wins, ties := tally(winners)

	qualifies := func(i int) bool {
		return wins[i] >= 2 || (wins[i] == 1 && ties >= 1)
	}

	q0, q1 := qualifies(0), qualifies(1)
	switch {
	case q0 && !q1:
		return 0, true
	case q1 && !q0:
		return 1, true
	default:
		return Tie, false
	}
}

func tally(winners []int) (wins [2]int, ties int) {
	for _, w := range winners {
		if w == Tie {
			ties++
		} else {
			wins[w]++
		}
	}

	return wins, ties
}
