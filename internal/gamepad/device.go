package gamepad

import (
	"time"

	"github.com/soar/padscope/internal/layout"
)

// InstanceID identifies one physical controller for as long as it stays
// attached. The platform never reuses an id during a session.
type InstanceID int32

// DeviceIndex is the platform's enumeration handle for a device that has
// not been opened yet.
type DeviceIndex int32

// Info describes an opened controller.
type Info struct {
	Name      string
	Class     Class
	VendorID  uint16
	ProductID uint16
}

// Device is an open controller handle.
type Device interface {
	Info() Info
	Button(b layout.Button) bool
	Axis(a layout.Axis) int16
	SetLED(r, g, b uint8) error
	Rumble(low, high uint16, d time.Duration) error
	RumbleTriggers(left, right uint16, d time.Duration) error
	Close() error
}

// Opener resolves and opens platform devices.
type Opener interface {
	InstanceID(index DeviceIndex) (InstanceID, error)
	Open(index DeviceIndex) (Device, error)
}

// EventSource yields pending events without blocking. Poll reports false
// once the source is drained for now.
type EventSource interface {
	Poll() (Event, bool)
}

// Host is the platform input subsystem.
type Host interface {
	Opener
	EventSource
}
