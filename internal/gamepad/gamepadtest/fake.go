// Package gamepadtest provides in-memory gamepad hosts and devices.
package gamepadtest

import (
	"errors"
	"fmt"
	"time"

	"github.com/soar/padscope/internal/gamepad"
	"github.com/soar/padscope/internal/layout"
)

var ErrOpen = errors.New("open failed")

// RumbleCall records one rumble command.
type RumbleCall struct {
	Low, High uint16
	Duration  time.Duration
}

// Device is a scriptable gamepad.Device.
type Device struct {
	DeviceInfo gamepad.Info
	Buttons    map[layout.Button]bool
	Axes       map[layout.Axis]int16

	LEDs           []gamepad.Color
	Rumbles        []RumbleCall
	TriggerRumbles []RumbleCall
	Closes         int
	FailHaptics    bool
}

func NewDevice(name string) *Device {
	return &Device{
		DeviceInfo: gamepad.Info{Name: name, Class: gamepad.ClassGeneric},
		Buttons:    make(map[layout.Button]bool),
		Axes:       make(map[layout.Axis]int16),
	}
}

func (d *Device) Info() gamepad.Info          { return d.DeviceInfo }
func (d *Device) Button(b layout.Button) bool { return d.Buttons[b] }
func (d *Device) Axis(a layout.Axis) int16    { return d.Axes[a] }

func (d *Device) SetLED(r, g, b uint8) error {
	if d.FailHaptics {
		return errors.New("led unsupported")
	}
	d.LEDs = append(d.LEDs, gamepad.Color{R: r, G: g, B: b})
	return nil
}

func (d *Device) Rumble(low, high uint16, dur time.Duration) error {
	if d.FailHaptics {
		return errors.New("rumble unsupported")
	}
	d.Rumbles = append(d.Rumbles, RumbleCall{low, high, dur})
	return nil
}

func (d *Device) RumbleTriggers(left, right uint16, dur time.Duration) error {
	if d.FailHaptics {
		return errors.New("trigger rumble unsupported")
	}
	d.TriggerRumbles = append(d.TriggerRumbles, RumbleCall{left, right, dur})
	return nil
}

func (d *Device) Close() error {
	d.Closes++
	return nil
}

// Host is a gamepad.Host backed by maps and an event queue. Device index i
// resolves to instance id i unless IDs overrides it.
type Host struct {
	Devices  map[gamepad.DeviceIndex]*Device
	IDs      map[gamepad.DeviceIndex]gamepad.InstanceID
	FailOpen map[gamepad.DeviceIndex]bool
	Opened   []gamepad.DeviceIndex
	queue    []gamepad.Event
}

func NewHost() *Host {
	return &Host{
		Devices:  make(map[gamepad.DeviceIndex]*Device),
		IDs:      make(map[gamepad.DeviceIndex]gamepad.InstanceID),
		FailOpen: make(map[gamepad.DeviceIndex]bool),
	}
}

// Plug registers a device at index and returns it. It queues no event.
func (h *Host) Plug(index gamepad.DeviceIndex) *Device {
	d := NewDevice(fmt.Sprintf("pad-%d", index))
	h.Devices[index] = d
	return d
}

// Push queues events for Poll.
func (h *Host) Push(events ...gamepad.Event) {
	h.queue = append(h.queue, events...)
}

func (h *Host) Pending() int {
	return len(h.queue)
}

func (h *Host) InstanceID(index gamepad.DeviceIndex) (gamepad.InstanceID, error) {
	if id, ok := h.IDs[index]; ok {
		return id, nil
	}
	if index < 0 {
		return 0, fmt.Errorf("invalid device index %d", index)
	}
	return gamepad.InstanceID(index), nil
}

func (h *Host) Open(index gamepad.DeviceIndex) (gamepad.Device, error) {
	if h.FailOpen[index] {
		return nil, ErrOpen
	}
	d, ok := h.Devices[index]
	if !ok {
		d = h.Plug(index)
	}
	h.Opened = append(h.Opened, index)
	return d, nil
}

func (h *Host) Poll() (gamepad.Event, bool) {
	if len(h.queue) == 0 {
		return gamepad.Event{}, false
	}
	e := h.queue[0]
	h.queue = h.queue[1:]
	return e, true
}

// Added returns a device-added event for index.
func Added(index gamepad.DeviceIndex) gamepad.Event {
	return gamepad.Event{Kind: gamepad.EventDeviceAdded, Index: index}
}

// Removed returns a device-removed event for id.
func Removed(id gamepad.InstanceID) gamepad.Event {
	return gamepad.Event{Kind: gamepad.EventDeviceRemoved, Which: id}
}

// ButtonDown returns a button-down event from id.
func ButtonDown(id gamepad.InstanceID, b layout.Button) gamepad.Event {
	return gamepad.Event{Kind: gamepad.EventButtonDown, Which: id, Button: b}
}

// AxisMotion returns an axis event from id.
func AxisMotion(id gamepad.InstanceID, a layout.Axis, v int16) gamepad.Event {
	return gamepad.Event{Kind: gamepad.EventAxisMotion, Which: id, Axis: a, Value: v}
}
