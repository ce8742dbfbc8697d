package websocket

import (
	"log"
	"sync"
)

// The two invalidation signals pushed to clients. No payload is sent; the
// client re-fetches the relevant resource on receipt.
const (
	MessageUpdateDashboard = "UPDATE_DASHBOARD"
	MessageUpdateList      = "UPDATE_LIST"
)

// Hub maps user ids to their live connections. A user may hold several
// connections at once (one per device).
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Register(userID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*Client]struct{})
	}
	h.clients[userID][client] = struct{}{}
}

func (h *Hub) Unregister(userID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		return
	}
	delete(h.clients[userID], client)
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
	}
}

// SendToUser delivers the message to every connection of one user.
// Delivery is best-effort: a connection whose buffer is full is skipped.
func (h *Hub) SendToUser(message, userID string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients[userID] {
		select {
		case client.send <- []byte(message):
		default:
			log.Printf("websocket: dropping %s for user %s, send buffer full", message, userID)
		}
	}
}

// BroadcastToWallet delivers the message to each member independently.
func (h *Hub) BroadcastToWallet(message string, userIDs []string) {
	for _, userID := range userIDs {
		h.SendToUser(message, userID)
	}
}
