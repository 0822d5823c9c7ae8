package hub

import (
	"time"

	"github.com/soar/padscope/internal/gamepad"
)

const (
	TypeFull               = "full"
	TypeDelta              = "delta"
	TypeSelectController   = "select_controller"
	TypeControllerSelected = "controller_selected"
)

// WSMessage is sent from the server to remote viewers.
type WSMessage struct {
	Type       string                `json:"type"`
	Seq        int64                 `json:"seq"`
	Timestamp  int64                 `json:"timestamp"` // unix milliseconds
	Data       *gamepad.FrameState   `json:"data,omitempty"`
	Changes    *gamepad.DeltaChanges `json:"changes,omitempty"`
	InstanceID gamepad.InstanceID    `json:"instanceId,omitempty"`
}

func NewFullMessage(seq int64, state *gamepad.FrameState) *WSMessage {
	return &WSMessage{
		Type:      TypeFull,
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Data:      state,
	}
}

func NewDeltaMessage(seq int64, changes *gamepad.DeltaChanges) *WSMessage {
	return &WSMessage{
		Type:      TypeDelta,
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Changes:   changes,
	}
}

// NewControllerSelectedMessage acknowledges a select_controller request.
func NewControllerSelectedMessage(id gamepad.InstanceID) *WSMessage {
	return &WSMessage{
		Type:       TypeControllerSelected,
		Timestamp:  time.Now().UnixMilli(),
		InstanceID: id,
	}
}

// ClientMessage is sent from a remote viewer to the server.
type ClientMessage struct {
	Type       string             `json:"type"`
	InstanceID gamepad.InstanceID `json:"instanceId,omitempty"`
}
