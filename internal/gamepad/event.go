package gamepad

import (
	"github.com/soar/padscope/internal/layout"
	"github.com/soar/padscope/internal/sensor"
	"github.com/soar/padscope/internal/touch"
)

// EventKind selects which fields of an Event are meaningful.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventDeviceAdded
	EventDeviceRemoved
	EventAxisMotion
	EventButtonDown
	EventButtonUp
	EventTouch
	EventSensor
	EventSelect
	EventQuit
)

var eventKindNames = map[EventKind]string{
	EventNone:          "none",
	EventDeviceAdded:   "device_added",
	EventDeviceRemoved: "device_removed",
	EventAxisMotion:    "axis_motion",
	EventButtonDown:    "button_down",
	EventButtonUp:      "button_up",
	EventTouch:         "touch",
	EventSensor:        "sensor",
	EventSelect:        "select",
	EventQuit:          "quit",
}

func (k EventKind) String() string {
	if n, ok := eventKindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Event is a platform-neutral input event.
type Event struct {
	Kind EventKind

	// Index is set for EventDeviceAdded.
	Index DeviceIndex
	// Which is the source controller for removal, axis, button and select
	// events.
	Which InstanceID

	Axis   layout.Axis
	Value  int16
	Button layout.Button

	Touch touch.Event

	Sensor sensor.Kind
	Data   sensor.Vec3
}

// Inbox is an EventSource fed by other goroutines. Posting never blocks.
type Inbox struct {
	events chan Event
}

func NewInbox(size int) *Inbox {
	return &Inbox{events: make(chan Event, size)}
}

// Post queues e. It reports false if the inbox is full and e was dropped.
func (in *Inbox) Post(e Event) bool {
	select {
	case in.events <- e:
		return true
	default:
		return false
	}
}

func (in *Inbox) Poll() (Event, bool) {
	select {
	case e := <-in.events:
		return e, true
	default:
		return Event{}, false
	}
}
