// Package server exposes reconstructed game events to local clients
// over a WebSocket broadcast endpoint.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/zippyy/deck-tracker-go/internal/config"
	"github.com/zippyy/deck-tracker-go/internal/events"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Overlay clients connect from file:// or localhost origins.
		return true
	},
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans reconstructed events out to every connected client. Clients
// are read-only consumers; inbound messages are drained and dropped.
type Hub struct {
	logger *zap.Logger

	mu      sync.Mutex
	clients map[*client]bool
}

// NewHub creates a hub and subscribes it to the event bus.
func NewHub(bus *events.Bus, logger *zap.Logger) *Hub {
	h := &Hub{
		logger:  logger,
		clients: make(map[*client]bool),
	}
	bus.Subscribe(h.broadcast)
	return h
}

func (h *Hub) broadcast(ev events.Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("marshaling event", zap.Error(err))
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			// Slow consumer; drop it rather than stall the match.
			close(c.send)
			delete(h.clients, c)
		}
	}
}

// ServeHTTP upgrades the connection and registers the client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{conn: conn, send: make(chan []byte, 256)}
	h.mu.Lock()
	h.clients[c] = true
	n := len(h.clients)
	h.mu.Unlock()
	h.logger.Info("client connected",
		zap.String("remote", conn.RemoteAddr().String()),
		zap.Int("clients", n),
	)

	go h.writePump(c)
	go h.readPump(c)
}

func (h *Hub) writePump(c *client) {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		h.logger.Info("client disconnected", zap.Int("clients", len(h.clients)))
	}
}

// CloseAll disconnects every client, typically during shutdown.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
		c.conn.Close()
	}
}

// Start runs the HTTP listener until ctx is cancelled.
func Start(ctx context.Context, cfg config.WebSocketConfig, hub *Hub, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, hub)

	srv := &http.Server{
		Addr:    cfg.Address,
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
		hub.CloseAll()
	}()

	logger.Info("starting websocket server",
		zap.String("address", cfg.Address),
		zap.String("path", cfg.Path),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
