// Package ws provides the live direct-messaging endpoint. Connections are
// authenticated with the same PASETO access tokens as the REST API and keyed
// by user id, so a message can be pushed to whichever connections its
// recipient has open.
package ws

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Client represents a single WebSocket connection owned by one user. A user
// may hold several connections (multiple tabs, devices).
type Client struct {
	UserID uuid.UUID
	Send   chan []byte
}

// Hub tracks connected clients by user id. All operations are thread-safe
// via sync.RWMutex.
type Hub struct {
	mu      sync.RWMutex
	byUser  map[uuid.UUID]map[*Client]struct{}
	clients int
}

func NewHub() *Hub {
	return &Hub{
		byUser: make(map[uuid.UUID]map[*Client]struct{}),
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.byUser[client.UserID] == nil {
		h.byUser[client.UserID] = make(map[*Client]struct{})
	}
	h.byUser[client.UserID][client] = struct{}{}
	h.clients++
}

// Unregister removes a client and closes its Send channel.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.byUser[client.UserID]
	if !ok {
		return
	}
	if _, ok := conns[client]; !ok {
		return
	}

	delete(conns, client)
	if len(conns) == 0 {
		delete(h.byUser, client.UserID)
	}
	h.clients--
	close(client.Send)
}

// SendToUser delivers a payload to every connection the user has open.
// Returns the number of connections the payload was queued on.
func (h *Hub) SendToUser(userID uuid.UUID, payload []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	sent := 0
	for client := range h.byUser[userID] {
		select {
		case client.Send <- payload:
			sent++
		default:
			// Client buffer full; skip to avoid blocking.
			slog.Debug("ws: dropping payload for slow client", "user_id", userID)
		}
	}
	return sent
}

// IsOnline reports whether the user has at least one open connection.
func (h *Hub) IsOnline(userID uuid.UUID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.byUser[userID]) > 0
}

// ClientCount returns the total number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.clients
}
