package playable

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"portfolio-sim/pkg/chip"
)

// Playable is a game that can be played to completion
type Playable interface {
	// Play runs the game until it ends
	// Any error is fatal for the game; no partial results are produced
	Play() error

	// GetEndOfGameDetails returns the details after a game is over
	// If the game is still in progress, nil will be returned and the second param will be false
	GetEndOfGameDetails() (gameOverDetails *GameOverDetails, isGameOver bool)

	// Name returns the name of the game
	Name() string

	// Logs returns the log messages generated so far
	Logs() []*LogMessage
}

// LogMessage is the format a game should record log messages in
// If Players is empty, assume it's a general statement, otherwise the message will be rendered like "{player} did X, Y, Z"
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Players []string     `json:"players"`
	Chips   []*chip.Chip `json:"chips"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

// String replaces each {} in the message with the next player name
func (l *LogMessage) String() string {
	msg := l.Message
	for _, name := range l.Players {
		msg = strings.Replace(msg, "{}", name, 1)
	}

	return msg
}

// GameOverDetails provides details on how the game ended
// Winner is empty on a tie
type GameOverDetails struct {
	Winner string         `json:"winner"`
	Wins   map[string]int `json:"wins"`
	Log    interface{}    `json:"log"`
}

// AdditionalData provides additional data when creating a game
type AdditionalData map[string]interface{}

// GetInt returns an integer value for the given key
func (a AdditionalData) GetInt(key string) (int, bool) {
	switch val := a[key].(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		return int(val), true
	}

	return 0, false
}

// GetInt64 returns an int64 value for the given key
func (a AdditionalData) GetInt64(key string) (int64, bool) {
	switch val := a[key].(type) {
	case int:
		return int64(val), true
	case int64:
		return val, true
	case float64:
		return int64(val), true
	}

	return 0, false
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(player string, format string, a ...interface{}) *LogMessage {
	var players []string
	if player != "" {
		players = []string{player}
	}

	return &LogMessage{
		UUID:    uuid.New().String(),
		Players: players,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}
