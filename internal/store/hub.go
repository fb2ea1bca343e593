package store

import (
	"net/http"
	"sync"

	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Mutation is the wire frame pushed to dashboard sessions. Name matches the
// browser store's mutation name so the frontend can dispatch it directly.
type Mutation struct {
	Name    string `json:"mutation"`
	Payload any    `json:"payload"`
}

// Hub fans store mutations out to connected dashboard websocket sessions.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]*websocket.Conn
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]*websocket.Conn),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Serve upgrades the request and keeps the session registered until the peer
// disconnects. The read loop only consumes control frames; the feed is
// one-directional.
func (h *Hub) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("failed to upgrade ui session", slog.Any("error", err))
		return
	}

	id := uuid.New().String()
	h.mu.Lock()
	h.sessions[id] = conn
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.sessions, id)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast sends a mutation frame to every session. Write failures drop the
// session; the dashboard reconnects and replays from the snapshot endpoint.
func (h *Hub) Broadcast(m Mutation) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, conn := range h.sessions {
		if err := conn.WriteJSON(m); err != nil {
			conn.Close()
			delete(h.sessions, id)
		}
	}
}

// SessionCount reports the number of connected dashboard sessions.
func (h *Hub) SessionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// Close terminates all sessions.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.sessions {
		conn.Close()
		delete(h.sessions, id)
	}
}
