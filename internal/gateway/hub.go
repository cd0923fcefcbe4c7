// Package gateway fans resolution refresh events out to WebSocket clients.
// A UI holding a resolved list can re-query when the engine refreshes the
// range it is displaying, instead of polling.
package gateway

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/yzho285/public-holidays-display/internal/model"
	"github.com/yzho285/public-holidays-display/internal/resolver"
)

var upgrader = websocket.Upgrader{
	CheckOrigin:       func(r *http.Request) bool { return true },
	EnableCompression: true,
}

// Hub tracks connected WebSocket clients and broadcasts refresh events.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]bool)}
}

// HandleWS upgrades the request and runs the client's read/write pumps.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[gateway] upgrade failed: %v", err)
		return
	}

	client := &Client{
		conn: conn,
		send: make(chan []byte, 16),
		hub:  h,
	}
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()
	log.Printf("[gateway] client connected (%d total)", h.ClientCount())

	go client.writePump()
	go client.readPump()
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	if h.clients[c] {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// refreshEnvelope is the wire shape of a holidays_refreshed event.
type refreshEnvelope struct {
	Type     string `json:"type"`
	Province string `json:"province"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Source   string `json:"source"`
	Count    int    `json:"count"`
	TS       string `json:"ts"`
}

// BroadcastRefresh notifies interested clients that a resolution for the
// given key completed. Slow clients are skipped, never blocked on.
func (h *Hub) BroadcastRefresh(e resolver.Event) {
	envelope, err := json.Marshal(refreshEnvelope{
		Type:     "holidays_refreshed",
		Province: e.Key.Province,
		Start:    model.FormatDate(e.Key.Start),
		End:      model.FormatDate(e.Key.End),
		Source:   string(e.Source),
		Count:    e.Count,
		TS:       time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		if !client.wants(e.Key.Province) {
			continue
		}
		select {
		case client.send <- envelope:
		default:
		}
	}
}
