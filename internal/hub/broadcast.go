package hub

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/soar/padscope/internal/gamepad"
)

const (
	fullSyncInterval = 5 * time.Second
	deltaCountSync   = 100
)

// Broadcaster turns published frames into full and delta messages.
type Broadcaster struct {
	hub    *Hub
	frames <-chan gamepad.FrameState
	log    *zap.Logger

	mu    sync.Mutex
	last  gamepad.FrameState
	seq   int64
	count int64
}

func NewBroadcaster(h *Hub, frames <-chan gamepad.FrameState, log *zap.Logger) *Broadcaster {
	return &Broadcaster{
		hub:    h,
		frames: frames,
		log:    log,
	}
}

// Run consumes frames until the channel closes or ctx is done.
func (b *Broadcaster) Run(ctx context.Context) error {
	ticker := time.NewTicker(fullSyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case state, ok := <-b.frames:
			if !ok {
				return nil
			}
			b.publish(state)
		case <-ticker.C:
			b.sync()
		}
	}
}

func (b *Broadcaster) publish(state gamepad.FrameState) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delta := gamepad.ComputeDelta(b.last, state)
	b.last = state
	if delta.IsEmpty() {
		return
	}

	b.seq++
	b.count++
	if b.count >= deltaCountSync {
		b.count = 0
		b.broadcast(NewFullMessage(b.seq, &state))
		return
	}
	b.broadcast(NewDeltaMessage(b.seq, delta))
}

// sync sends the last state to everyone while a controller is connected.
func (b *Broadcaster) sync() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.last.Connected {
		return
	}
	b.seq++
	state := b.last
	b.broadcast(NewFullMessage(b.seq, &state))
}

// SendInitialState queues the last state on a newly connected client.
func (b *Broadcaster) SendInitialState(c *Client) {
	b.mu.Lock()
	b.seq++
	state := b.last
	msg := NewFullMessage(b.seq, &state)
	b.mu.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		b.log.Error("marshal initial state", zap.Error(err))
		return
	}
	c.queue(data)
}

func (b *Broadcaster) broadcast(msg *WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		b.log.Error("marshal message", zap.String("type", msg.Type), zap.Error(err))
		return
	}
	b.hub.Broadcast(data)
}
