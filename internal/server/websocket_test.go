package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/zippyy/deck-tracker-go/internal/events"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func TestHubBroadcastsEvents(t *testing.T) {
	bus := events.NewBus()
	hub := NewHub(bus, zaptest.NewLogger(t))
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()

	// Registration races the publish; wait for the client to appear.
	require.Eventually(t, func() bool {
		hub.mu.Lock()
		defer hub.mu.Unlock()
		return len(hub.clients) == 1
	}, time.Second, time.Millisecond)

	bus.Publish(events.Event{Type: events.EventPlayerDraw, EntityID: 12, CardID: "CS2_029", Turn: 3})

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var got events.Event
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, events.EventPlayerDraw, got.Type)
	assert.Equal(t, 12, got.EntityID)
	assert.Equal(t, "CS2_029", got.CardID)
	assert.Equal(t, 3, got.Turn)
}

func TestHubDropsDisconnectedClients(t *testing.T) {
	bus := events.NewBus()
	hub := NewHub(bus, zaptest.NewLogger(t))
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv)
	conn.Close()

	require.Eventually(t, func() bool {
		hub.mu.Lock()
		defer hub.mu.Unlock()
		return len(hub.clients) == 0
	}, time.Second, time.Millisecond)

	// Publishing with no clients must not block or panic.
	bus.Publish(events.Event{Type: events.EventGameEnd})
}

func TestCloseAll(t *testing.T) {
	bus := events.NewBus()
	hub := NewHub(bus, zaptest.NewLogger(t))
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()
	require.Eventually(t, func() bool {
		hub.mu.Lock()
		defer hub.mu.Unlock()
		return len(hub.clients) == 1
	}, time.Second, time.Millisecond)

	hub.CloseAll()

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "closed connections must not deliver further frames")
}
