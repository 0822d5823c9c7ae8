package sdlhost

import (
	"fmt"

	"github.com/jupiterrider/purego-sdl3/sdl"
	"go.uber.org/zap"

	"github.com/soar/padscope/internal/gamepad"
	"github.com/soar/padscope/internal/sdlhost/translate"
	"github.com/soar/padscope/internal/touch"
)

// InstanceID validates index. SDL3 already identifies unopened devices by
// their joystick instance id.
func (h *Host) InstanceID(index gamepad.DeviceIndex) (gamepad.InstanceID, error) {
	id := sdl.JoystickID(index)
	if index <= 0 || !isGamepad(id) {
		return 0, fmt.Errorf("device %d is not a gamepad", index)
	}
	return gamepad.InstanceID(id), nil
}

func (h *Host) Open(index gamepad.DeviceIndex) (gamepad.Device, error) {
	return openPad(sdl.JoystickID(index))
}

// Attached logs every joystick and returns the ones with a gamepad mapping.
func (h *Host) Attached() []gamepad.DeviceIndex {
	joysticks := joystickIDs(sdl.GetJoysticks())
	pads, plain := translate.Gamepads(joysticks, joystickIDs(sdl.GetGamepads()))
	for _, raw := range plain {
		id := sdl.JoystickID(raw)
		h.log.Info("joystick",
			zap.Uint32("id", raw),
			zap.String("name", sdl.GetJoystickNameForID(id)),
			zap.String("class", gamepad.ClassJoystick.String()),
		)
	}
	out := make([]gamepad.DeviceIndex, 0, len(pads))
	for _, raw := range pads {
		id := sdl.JoystickID(raw)
		vendor := sdl.GetJoystickVendorForID(id)
		product := sdl.GetJoystickProductForID(id)
		h.log.Info("game controller",
			zap.Uint32("id", raw),
			zap.String("name", sdl.GetGamepadNameForID(id)),
			zap.String("class", classOf(sdlGetGamepadTypeForID(id), vendor, product).String()),
			zap.String("vid", fmt.Sprintf("%04X", vendor)),
			zap.String("pid", fmt.Sprintf("%04X", product)),
		)
		out = append(out, gamepad.DeviceIndex(raw))
	}
	h.log.Info("game controllers attached", zap.Int("controllers", len(out)), zap.Int("joysticks", len(joysticks)))
	return out
}

func joystickIDs(ids []sdl.JoystickID) []uint32 {
	out := make([]uint32, len(ids))
	for i, id := range ids {
		out[i] = uint32(id)
	}
	return out
}

// openSensors opens every standalone sensor of a known type.
func (h *Host) openSensors() {
	for _, id := range sensorIDs() {
		t := sdlGetSensorTypeForID(id)
		if t == sdl.SensorUnknown || t == sdl.SensorInvalid {
			continue
		}
		s := sdlOpenSensor(id)
		if s == nil {
			h.log.Error("couldn't open sensor", zap.Uint32("id", uint32(id)), zap.String("error", sdl.GetError()))
			continue
		}
		h.sensors = append(h.sensors, s)
		h.tr.AddSensor(uint32(id), sensorKind(t))
		h.log.Info("sensor opened",
			zap.Uint32("id", uint32(id)),
			zap.String("name", sdlGetSensorNameForID(id)),
			zap.Stringer("kind", sensorKind(t)),
		)
	}
}

// Poll translates the next relevant SDL event. Events padscope has no use
// for are consumed and skipped.
func (h *Host) Poll() (gamepad.Event, bool) {
	var event sdl.Event
	for sdl.PollEvent(&event) {
		if e, ok := h.convert(&event); ok {
			return e, true
		}
	}
	return gamepad.Event{}, false
}

func (h *Host) convert(event *sdl.Event) (gamepad.Event, bool) {
	switch event.Type() {
	case sdl.EventGamepadAdded:
		return translate.DeviceAdded(uint32(event.GDevice().Which)), true

	case sdl.EventGamepadRemoved:
		return translate.DeviceRemoved(uint32(event.GDevice().Which)), true

	case sdl.EventGamepadAxisMotion:
		ae := event.GAxis()
		axis, ok := axisMap[sdl.GamepadAxis(ae.Axis)]
		return translate.AxisMotion(uint32(ae.Which), axis, ok, ae.Value)

	case sdl.EventGamepadButtonDown, sdl.EventGamepadButtonUp:
		be := event.GButton()
		b, ok := buttonMap[sdl.GamepadButton(be.Button)]
		return translate.Button(uint32(be.Which), b, ok, event.Type() == sdl.EventGamepadButtonDown), true

	case sdl.EventGamepadTouchpadDown, sdl.EventGamepadTouchpadMotion, sdl.EventGamepadTouchpadUp:
		te := event.GTouchpad()
		return translate.Touchpad(te.Touchpad, te.Finger, te.X, te.Y, touchPhase(event.Type())), true

	case sdl.EventFingerDown, sdl.EventFingerMotion, sdl.EventFingerUp:
		fe := event.TFinger()
		return h.tr.Finger(uint64(fe.TouchID), uint64(fe.FingerID), fe.X, fe.Y, touchPhase(event.Type())), true

	case sdl.EventSensorUpdate:
		se := event.Sensor()
		return h.tr.Sensor(uint32(se.Which), se.Data)

	case sdl.EventGamepadSensorUpdate:
		se := event.GSensor()
		return translate.GamepadSensor(uint32(se.Which), sensorKind(sdl.SensorType(se.Sensor)), se.Data), true

	case sdl.EventKeyDown:
		return translate.Key(uint32(event.Key().Key))

	case sdl.EventQuit, sdl.EventWindowCloseRequested:
		return translate.Quit(), true
	}
	return gamepad.Event{}, false
}

func touchPhase(t sdl.EventType) touch.Phase {
	switch t {
	case sdl.EventGamepadTouchpadDown, sdl.EventFingerDown:
		return touch.PhaseDown
	case sdl.EventGamepadTouchpadUp, sdl.EventFingerUp:
		return touch.PhaseUp
	default:
		return touch.PhaseMotion
	}
}
