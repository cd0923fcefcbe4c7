package gateway

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	pongWait   = 60 * time.Second
)

// Client is a single WebSocket peer. Clients may narrow the feed to specific
// provinces with a subscribe message; by default they receive everything.
type Client struct {
	conn *websocket.Conn
	send chan []byte
	hub  *Hub

	filterMu  sync.RWMutex
	provinces map[string]bool // nil or empty = all provinces
}

// subscribeMessage is the only inbound message type.
type subscribeMessage struct {
	Type      string   `json:"type"`
	Provinces []string `json:"provinces"`
}

func (c *Client) wants(provinceCode string) bool {
	c.filterMu.RLock()
	defer c.filterMu.RUnlock()
	if len(c.provinces) == 0 {
		return true
	}
	return c.provinces[provinceCode]
}

func (c *Client) readPump() {
	defer func() {
		c.hub.remove(c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[gateway] read error: %v", err)
			}
			return
		}
		var msg subscribeMessage
		if err := json.Unmarshal(data, &msg); err != nil || msg.Type != "subscribe" {
			continue
		}
		filter := make(map[string]bool, len(msg.Provinces))
		for _, p := range msg.Provinces {
			filter[p] = true
		}
		c.filterMu.Lock()
		c.provinces = filter
		c.filterMu.Unlock()
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
