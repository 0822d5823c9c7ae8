package hub

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/soar/padscope/internal/gamepad"
)

const sendBuffer = 256

// Poster accepts events for the application loop. *gamepad.Inbox
// implements it.
type Poster interface {
	Post(e gamepad.Event) bool
}

// Client is one websocket viewer.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	mu     sync.Mutex
	closed bool
}

func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
}

// queue sends msg without blocking and reports whether it was accepted.
func (c *Client) queue(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// WritePump writes queued messages until the queue is closed.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// ReadPump reads viewer commands until the connection fails.
func (c *Client) ReadPump(poster Poster) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			break
		}
		c.handle(message, poster)
	}
}

func (c *Client) handle(message []byte, poster Poster) {
	var msg ClientMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		c.hub.log.Warn("bad client message", zap.Error(err))
		return
	}

	switch msg.Type {
	case TypeSelectController:
		if !poster.Post(gamepad.Event{Kind: gamepad.EventSelect, Which: msg.InstanceID}) {
			c.hub.log.Warn("inbox full, selection dropped", zap.Int32("instance", int32(msg.InstanceID)))
			return
		}
		data, err := json.Marshal(NewControllerSelectedMessage(msg.InstanceID))
		if err != nil {
			return
		}
		c.queue(data)
		c.hub.log.Debug("client selected controller", zap.Int32("instance", int32(msg.InstanceID)))
	default:
		c.hub.log.Debug("unknown client message", zap.String("type", msg.Type))
	}
}
