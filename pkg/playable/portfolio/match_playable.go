package portfolio

import "portfolio-sim/pkg/playable"

var _ playable.Playable = (*Match)(nil)

// Name returns "portfolio"
func (m *Match) Name() string {
	return "portfolio"
}

// GetEndOfGameDetails returns the winner and the match log once the match is finished
func (m *Match) GetEndOfGameDetails() (*playable.GameOverDetails, bool) {
	if m.stage != StageFinished || m.result == nil {
		return nil, false
	}

	details := &playable.GameOverDetails{
		Wins: map[string]int{
			m.players[0].Name: m.result.Wins[0],
			m.players[1].Name: m.result.Wins[1],
		},
		Log: m.Log(),
	}

	if m.result.Winner != nil {
		details.Winner = m.result.Winner.Name
	}

	return details, true
}

// Logs returns every log message recorded so far
func (m *Match) Logs() []*playable.LogMessage {
	return append([]*playable.LogMessage{}, m.messages...)
}
