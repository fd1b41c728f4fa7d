package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/zippyy/deck-tracker-go/internal/hs"
)

func TestBusSubscribePublish(t *testing.T) {
	bus := NewBus()
	var got []Event
	handle := bus.Subscribe(func(e Event) { got = append(got, e) })

	bus.Publish(Event{Type: EventPlayerDraw, EntityID: 5})
	bus.Publish(Event{Type: EventGameEnd})
	require.Len(t, got, 2)
	assert.Equal(t, EventPlayerDraw, got[0].Type)
	assert.Equal(t, 5, got[0].EntityID)

	bus.Unsubscribe(handle)
	bus.Publish(Event{Type: EventWin})
	assert.Len(t, got, 2, "unsubscribed listener must not receive events")
}

func TestBusNilListener(t *testing.T) {
	bus := NewBus()
	assert.Equal(t, -1, bus.Subscribe(nil))
	// Publishing with no listeners must not panic.
	bus.Publish(Event{Type: EventTied})
}

func TestPublisherEmitsEvents(t *testing.T) {
	bus := NewBus()
	var got []Event
	bus.Subscribe(func(e Event) { got = append(got, e) })

	p := NewPublisher(bus, zaptest.NewLogger(t))

	e := hs.NewEntity(12)
	p.PlayerDraw(e, "CS2_029", 3)
	p.OpponentSecretPlayed(e, "", 2, 4, hs.ZoneHand, 12)
	p.SetPlayerHero("Jaina Proudmoore")
	p.Win()

	require.Len(t, got, 4)
	assert.Equal(t, EventPlayerDraw, got[0].Type)
	assert.Equal(t, 12, got[0].EntityID)
	assert.Equal(t, "CS2_029", got[0].CardID)
	assert.Equal(t, 3, got[0].Turn)
	assert.False(t, got[0].Timestamp.IsZero())

	assert.Equal(t, EventOpponentSecretPlayed, got[1].Type)
	assert.Equal(t, "HAND", got[1].FromZone)

	assert.Equal(t, EventPlayerHero, got[2].Type)
	assert.Equal(t, "Jaina Proudmoore", got[2].Hero)

	assert.Equal(t, EventWin, got[3].Type)
}

func TestPublisherNilEntity(t *testing.T) {
	bus := NewBus()
	var got []Event
	bus.Subscribe(func(e Event) { got = append(got, e) })

	p := NewPublisher(bus, zaptest.NewLogger(t))
	p.AttackingEntity(nil)
	p.DefendingEntity(nil)

	require.Len(t, got, 2)
	assert.Zero(t, got[0].EntityID)
	assert.Zero(t, got[1].EntityID)
}

func TestNullSinkImplementsInterface(t *testing.T) {
	var sink GameEventSink = NullSink{}
	// Exercising a few methods documents that the null sink is safe with
	// nil entities.
	sink.PlayerDraw(nil, "", 0)
	sink.GameEnd()
	sink.AttackingEntity(nil)
}
