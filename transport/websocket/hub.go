package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
	sendBufferSize = 64
)

// client - one websocket connection bound to a player identity.
type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub - routes outbound messages to connected identities.
type Hub struct {
	logger *slog.Logger

	mu      sync.RWMutex
	clients map[string]*client
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger.With("component", "ws_hub"),
		clients: make(map[string]*client),
	}
}

// Publish - delivers one message to every listed identity that is still connected.
func (that *Hub) Publish(_ context.Context, recipients []string, action string, payload any) {
	data, err := encode(action, payload)
	if err != nil {
		that.logger.Error("failed to encode outbound message", "action", action, "error", err)
		return
	}

	var slow []*client

	that.mu.RLock()
	for _, id := range recipients {
		c, ok := that.clients[id]
		if !ok {
			continue
		}

		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	that.mu.RUnlock()

	for _, c := range slow {
		that.logger.Warn("send buffer full, dropping connection", "playerID", c.id)
		that.unregister(c)
	}
}

// sendTo - delivers a message to a single identity.
func (that *Hub) sendTo(id, action string, payload any) {
	that.Publish(context.Background(), []string{id}, action, payload)
}

func (that *Hub) register(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.clients[c.id] = c
}

// unregister - removes the client and closes its send buffer, which stops its writer.
func (that *Hub) unregister(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.clients[c.id] != c {
		return
	}

	delete(that.clients, c.id)
	close(c.send)
}

func (that *Hub) isConnected(id string) bool {
	that.mu.RLock()
	defer that.mu.RUnlock()

	_, ok := that.clients[id]

	return ok
}

// Close - disconnects every client.
func (that *Hub) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	for id, c := range that.clients {
		delete(that.clients, id)
		close(c.send)
	}
}

// writeLoop - the only goroutine writing to the connection.
func (that *client) writeLoop(logger *slog.Logger) {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		_ = that.conn.Close()
	}()

	for {
		select {
		case data, ok := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))

			if !ok {
				_ = that.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			if err := that.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				logger.Debug("failed to write message", "playerID", that.id, "error", err)
				return
			}
		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))

			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func encode(action string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Message{Action: action, Payload: body})
}
