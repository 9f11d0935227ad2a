package portfolio

import "portfolio-sim/pkg/chip"

// GameLog keeps track of everything that happened in one game
type GameLog struct {
	Game      int              `json:"game"`
	Turns     []*TurnLog       `json:"turns"`
	Breakdown []*PositionScore `json:"breakdown"`
	Scores    map[string]int   `json:"scores"`
	Winner    string           `json:"winner"`
	Discarded []chip.Kind      `json:"discarded"`
	Revised   []string         `json:"revised,omitempty"`
}

// TurnLog is a single executed move
type TurnLog struct {
	Turn     int    `json:"turn"`
	Player   string `json:"player"`
	Move     string `json:"move"`
	Followup string `json:"followup,omitempty"`
}

func newGameLog(number int) *GameLog {
	return &GameLog{
		Game:      number,
		Turns:     make([]*TurnLog, 0),
		Discarded: make([]chip.Kind, 0),
	}
}

// AddTurn records a move
func (g *GameLog) AddTurn(turn int, player string, move *Move) {
	g.Turns = append(g.Turns, &TurnLog{
		Turn:   turn,
		Player: player,
		Move:   move.String(),
	})
}

// SetFollowup describes the chained effect of the last move
func (g *GameLog) SetFollowup(followup string) {
	if len(g.Turns) == 0 {
		return
	}

	g.Turns[len(g.Turns)-1].Followup = followup
}

// SetDiscarded records the chips removed by cleanup
func (g *GameLog) SetDiscarded(chips []*chip.Chip) {
	kinds := make([]chip.Kind, len(chips))
	for i, c := range chips {
		kinds[i] = c.Kind
	}

	g.Discarded = kinds
}

// MatchLog is the log of a whole match
// DeckHashes fingerprint each player's deck as drafted, in player order
type MatchLog struct {
	Players    []string   `json:"players"`
	Seed       int64      `json:"seed"`
	DeckHashes []string   `json:"deckHashes"`
	Games      []*GameLog `json:"games"`
	Winner     string     `json:"winner"`
	Wins       []int      `json:"wins"`
	Ties       int        `json:"ties"`
}
