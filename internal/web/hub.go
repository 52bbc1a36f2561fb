package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jhancoach/mundial-stats/internal/logging"
	"github.com/jhancoach/mundial-stats/internal/model"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The API is same-origin behind the dashboard; no origin policy here.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// refreshNotice is the message pushed to websocket clients after each
// published refresh.
type refreshNotice struct {
	Event       string `json:"event"`
	RefreshID   string `json:"refreshId"`
	LastUpdated string `json:"lastUpdated"`
}

// Hub tracks connected websocket clients and broadcasts refresh notices
// to them. Clients that fail a write are dropped.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	closed  bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

// NotifyRefresh broadcasts the identity of a newly published bundle.
func (h *Hub) NotifyRefresh(b *model.Bundle) {
	h.broadcast(refreshNotice{
		Event:       "refresh",
		RefreshID:   b.RefreshID.String(),
		LastUpdated: b.LastUpdated.Format(time.RFC3339),
	})
}

func (h *Hub) broadcast(v interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteJSON(v); err != nil {
			logging.Logger().Debugf("websocket client dropped: %v", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *Hub) add(conn *websocket.Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[conn] = struct{}{}
	return true
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}

// Close drops every connected client and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

// handleWebSocket upgrades the connection and parks it in the hub. The
// read loop exists only to detect disconnects; clients are write-only
// from the server's point of view.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Logger().Warnf("websocket upgrade: %v", err)
		return
	}
	if !s.hub.add(conn) {
		conn.Close()
		return
	}

	go func() {
		defer func() {
			s.hub.remove(conn)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
