package playable

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimpleLogMessage(t *testing.T) {
	before := time.Now()
	lm := SimpleLogMessage("", "test %d", 5)
	assert.Equal(t, "test 5", lm.Message)
	assert.Nil(t, lm.Players)
	assert.False(t, lm.Time.Before(before))
	assert.False(t, time.Now().Before(lm.Time))
	assert.Nil(t, lm.Chips)
	assert.Len(t, lm.UUID, 36)
}

func TestSimpleLogMessage_withPlayer(t *testing.T) {
	lm := SimpleLogMessage("Alice", "{} checked after %d turns", 4)
	assert.Equal(t, "{} checked after 4 turns", lm.Message)
	assert.Equal(t, []string{"Alice"}, lm.Players)
	assert.Equal(t, "Alice checked after 4 turns", lm.String())
}

func TestLogMessage_String(t *testing.T) {
	lm := &LogMessage{Players: []string{"Alice", "Bob"}, Message: "{} beat {}"}
	assert.Equal(t, "Alice beat Bob", lm.String())

	lm = &LogMessage{Message: "no players {}"}
	assert.Equal(t, "no players {}", lm.String())
}

func TestAdditionalData_GetInt(t *testing.T) {
	a := assert.New(t)

	var data AdditionalData
	_ = json.Unmarshal([]byte(`{"seed":12,"name":"x"}`), &data)
	val, ok := data.GetInt("seed")
	a.True(ok)
	a.Equal(12, val)

	seed, ok := AdditionalData{"seed": int64(99)}.GetInt64("seed")
	a.True(ok)
	a.Equal(int64(99), seed)

	_, ok = data.GetInt("name")
	a.False(ok)
}
