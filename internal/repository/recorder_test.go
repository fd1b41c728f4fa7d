package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/zippyy/deck-tracker-go/internal/events"
)

// Outcome events hit the database and are covered by integration runs;
// these tests cover the in-memory accumulation.
func TestRecorderTracksTurnAndConcede(t *testing.T) {
	r := &Recorder{logger: zaptest.NewLogger(t)}

	r.handle(events.Event{Type: events.EventPlayerDraw, Turn: 2})
	r.handle(events.Event{Type: events.EventOpponentPlay, Turn: 5})
	r.handle(events.Event{Type: events.EventPlayerDraw, Turn: 3})
	assert.Equal(t, 5, r.lastTurn, "the recorder keeps the highest observed turn")

	assert.False(t, r.conceded)
	r.handle(events.Event{Type: events.EventConcede})
	assert.True(t, r.conceded)
}
