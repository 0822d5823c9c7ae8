// Package hub fans rendered frame states out to websocket viewers.
package hub

import (
	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/zap"
)

// Hub holds the connected clients.
type Hub struct {
	log     *zap.Logger
	clients *xsync.MapOf[*Client, struct{}]
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		log:     log,
		clients: xsync.NewMapOf[*Client, struct{}](),
	}
}

func (h *Hub) Register(c *Client) {
	h.clients.Store(c, struct{}{})
	h.log.Info("client connected", zap.Int("total", h.clients.Size()))
}

// Unregister removes c and closes its send queue. Repeated calls are no-ops.
func (h *Hub) Unregister(c *Client) {
	if _, ok := h.clients.LoadAndDelete(c); !ok {
		return
	}
	c.closeSend()
	h.log.Info("client disconnected", zap.Int("total", h.clients.Size()))
}

// Len reports the number of connected clients.
func (h *Hub) Len() int {
	return h.clients.Size()
}

// Broadcast queues msg on every client. Clients whose queue is full are
// dropped.
func (h *Hub) Broadcast(msg []byte) {
	h.clients.Range(func(c *Client, _ struct{}) bool {
		if !c.queue(msg) {
			h.log.Warn("client send buffer full, disconnecting")
			h.Unregister(c)
		}
		return true
	})
}
