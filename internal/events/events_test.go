package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeEvent(t *testing.T) {
	raw := MakeEvent("run-1", "source_done", 1, map[string]any{"source": "TimesJobs"})

	var e Event
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	assert.Equal(t, "source_done", e.Type)
	assert.Equal(t, 1, e.Version)
	assert.Equal(t, "run-1", e.RunID)
	assert.False(t, e.At.IsZero())

	var data map[string]string
	require.NoError(t, json.Unmarshal(e.Data, &data))
	assert.Equal(t, "TimesJobs", data["source"])
}

func TestMakeEventNilData(t *testing.T) {
	var e Event
	require.NoError(t, json.Unmarshal([]byte(MakeEvent("", "ping", 1, nil)), &e))
	assert.Empty(t, e.RunID)
	assert.Nil(t, e.Data)
}

func TestHubFanOut(t *testing.T) {
	h := NewHub()
	a := h.Subscribe()
	b := h.Subscribe()

	h.Publish("one")

	assert.Equal(t, "one", <-a)
	assert.Equal(t, "one", <-b)

	h.Unsubscribe(b)
	h.Publish("two")
	assert.Equal(t, "two", <-a)

	_, open := <-b
	assert.False(t, open)
}

func TestHubDropsWhenSlow(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()

	for i := 0; i < 40; i++ {
		h.Publish("evt")
	}
	// buffer is 16; the rest were dropped, nothing blocked
	assert.Len(t, ch, 16)
}
