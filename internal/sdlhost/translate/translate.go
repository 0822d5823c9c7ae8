// Package translate turns host input, already decoded into plain values,
// into gamepad events. It has no SDL dependency.
package translate

import (
	"github.com/soar/padscope/internal/gamepad"
	"github.com/soar/padscope/internal/layout"
	"github.com/soar/padscope/internal/sensor"
	"github.com/soar/padscope/internal/touch"
)

// KeyEscape is the keycode that quits.
const KeyEscape uint32 = 0x1b

// UnmappedButton stands in for host buttons with no logical identifier. It
// has no layout entry and is never drawn.
const UnmappedButton layout.Button = 0xFF

// Translator keeps the state translation needs across events.
type Translator struct {
	frontTouch uint64
	frontSeen  bool
	sensors    map[uint32]sensor.Kind
}

func New() *Translator {
	return &Translator{sensors: make(map[uint32]sensor.Kind)}
}

// AddSensor records the kind of an opened standalone sensor.
func (t *Translator) AddSensor(id uint32, k sensor.Kind) {
	t.sensors[id] = k
}

func DeviceAdded(which uint32) gamepad.Event {
	return gamepad.Event{Kind: gamepad.EventDeviceAdded, Index: gamepad.DeviceIndex(which)}
}

func DeviceRemoved(which uint32) gamepad.Event {
	return gamepad.Event{Kind: gamepad.EventDeviceRemoved, Which: gamepad.InstanceID(which)}
}

// AxisMotion drops axes without a logical identifier.
func AxisMotion(which uint32, axis layout.Axis, mapped bool, value int16) (gamepad.Event, bool) {
	if !mapped {
		return gamepad.Event{}, false
	}
	return gamepad.Event{Kind: gamepad.EventAxisMotion, Which: gamepad.InstanceID(which), Axis: axis, Value: value}, true
}

// Button keeps unmapped buttons so a press still focuses the controller.
func Button(which uint32, b layout.Button, mapped, down bool) gamepad.Event {
	if !mapped {
		b = UnmappedButton
	}
	kind := gamepad.EventButtonUp
	if down {
		kind = gamepad.EventButtonDown
	}
	return gamepad.Event{Kind: kind, Which: gamepad.InstanceID(which), Button: b}
}

// Touchpad translates a controller touchpad contact. Touchpad 0 is the
// front surface, any other is the back.
func Touchpad(pad, finger int32, x, y float32, phase touch.Phase) gamepad.Event {
	surface := touch.SurfaceFront
	if pad > 0 {
		surface = touch.SurfaceBack
	}
	return gamepad.Event{Kind: gamepad.EventTouch, Touch: touch.Event{
		Surface: surface,
		Finger:  int64(finger),
		X:       x,
		Y:       y,
		Phase:   phase,
	}}
}

// Finger translates a touch-screen contact. The first touch device seen is
// the front surface, every other device the back.
func (t *Translator) Finger(touchID, fingerID uint64, x, y float32, phase touch.Phase) gamepad.Event {
	if !t.frontSeen {
		t.frontTouch = touchID
		t.frontSeen = true
	}
	surface := touch.SurfaceBack
	if touchID == t.frontTouch {
		surface = touch.SurfaceFront
	}
	return gamepad.Event{Kind: gamepad.EventTouch, Touch: touch.Event{
		Surface: surface,
		Finger:  int64(fingerID),
		X:       x,
		Y:       y,
		Phase:   phase,
	}}
}

// Sensor translates a standalone sensor sample. Samples from sensors that
// were never opened are dropped.
func (t *Translator) Sensor(id uint32, data [6]float32) (gamepad.Event, bool) {
	k, ok := t.sensors[id]
	if !ok {
		return gamepad.Event{}, false
	}
	return gamepad.Event{Kind: gamepad.EventSensor, Sensor: k, Data: sensor.Vec3{data[0], data[1], data[2]}}, true
}

// GamepadSensor translates a sample from a controller's embedded sensor.
func GamepadSensor(which uint32, k sensor.Kind, data [3]float32) gamepad.Event {
	return gamepad.Event{Kind: gamepad.EventSensor, Which: gamepad.InstanceID(which), Sensor: k, Data: sensor.Vec3(data)}
}

// Key quits on Escape and ignores everything else.
func Key(key uint32) (gamepad.Event, bool) {
	if key != KeyEscape {
		return gamepad.Event{}, false
	}
	return Quit(), true
}

func Quit() gamepad.Event {
	return gamepad.Event{Kind: gamepad.EventQuit}
}

// Gamepads returns the joysticks that are also gamepads followed by the
// plain joysticks, each in the order given.
func Gamepads(joysticks, gamepads []uint32) (pads, plain []uint32) {
	isPad := make(map[uint32]bool, len(gamepads))
	for _, id := range gamepads {
		isPad[id] = true
	}
	for _, id := range joysticks {
		if isPad[id] {
			pads = append(pads, id)
		} else {
			plain = append(plain, id)
		}
	}
	return pads, plain
}
