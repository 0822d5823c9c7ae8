package translate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soar/padscope/internal/gamepad"
	"github.com/soar/padscope/internal/layout"
	"github.com/soar/padscope/internal/sdlhost/translate"
	"github.com/soar/padscope/internal/sensor"
	"github.com/soar/padscope/internal/touch"
)

func TestDeviceEvents(t *testing.T) {
	e := translate.DeviceAdded(12)
	assert.Equal(t, gamepad.EventDeviceAdded, e.Kind)
	assert.Equal(t, gamepad.DeviceIndex(12), e.Index)

	e = translate.DeviceRemoved(12)
	assert.Equal(t, gamepad.EventDeviceRemoved, e.Kind)
	assert.Equal(t, gamepad.InstanceID(12), e.Which)
}

func TestAxisMotion(t *testing.T) {
	e, ok := translate.AxisMotion(3, layout.AxisRightY, true, -20000)
	require.True(t, ok)
	assert.Equal(t, gamepad.EventAxisMotion, e.Kind)
	assert.Equal(t, gamepad.InstanceID(3), e.Which)
	assert.Equal(t, layout.AxisRightY, e.Axis)
	assert.Equal(t, int16(-20000), e.Value)

	_, ok = translate.AxisMotion(3, 0, false, 30000)
	assert.False(t, ok)
}

func TestUnmappedButtonStillFocuses(t *testing.T) {
	e := translate.Button(5, 0, false, true)
	assert.Equal(t, gamepad.EventButtonDown, e.Kind)
	assert.Equal(t, gamepad.InstanceID(5), e.Which)
	assert.Equal(t, translate.UnmappedButton, e.Button)
	_, drawn := layout.LookupButton(e.Button)
	assert.False(t, drawn)

	e = translate.Button(5, layout.ButtonNorth, true, false)
	assert.Equal(t, gamepad.EventButtonUp, e.Kind)
	assert.Equal(t, layout.ButtonNorth, e.Button)
}

func TestTouchpadSurfaces(t *testing.T) {
	e := translate.Touchpad(0, 1, 0.25, 0.5, touch.PhaseDown)
	assert.Equal(t, gamepad.EventTouch, e.Kind)
	assert.Equal(t, touch.Event{Surface: touch.SurfaceFront, Finger: 1, X: 0.25, Y: 0.5, Phase: touch.PhaseDown}, e.Touch)

	e = translate.Touchpad(1, 0, 0.1, 0.2, touch.PhaseMotion)
	assert.Equal(t, touch.SurfaceBack, e.Touch.Surface)
	assert.Equal(t, touch.PhaseMotion, e.Touch.Phase)
}

func TestFingerFirstDeviceIsFront(t *testing.T) {
	tr := translate.New()

	e := tr.Finger(77, 1, 0.5, 0.5, touch.PhaseDown)
	assert.Equal(t, touch.SurfaceFront, e.Touch.Surface)
	assert.Equal(t, int64(1), e.Touch.Finger)

	e = tr.Finger(90, 2, 0.5, 0.5, touch.PhaseDown)
	assert.Equal(t, touch.SurfaceBack, e.Touch.Surface)

	e = tr.Finger(77, 1, 0.6, 0.5, touch.PhaseUp)
	assert.Equal(t, touch.SurfaceFront, e.Touch.Surface)
	assert.Equal(t, touch.PhaseUp, e.Touch.Phase)
}

func TestStandaloneSensorRouting(t *testing.T) {
	tr := translate.New()
	tr.AddSensor(4, sensor.KindGyro)

	e, ok := tr.Sensor(4, [6]float32{1, 2, 3, 9, 9, 9})
	require.True(t, ok)
	assert.Equal(t, gamepad.EventSensor, e.Kind)
	assert.Equal(t, sensor.KindGyro, e.Sensor)
	assert.Equal(t, sensor.Vec3{1, 2, 3}, e.Data)

	_, ok = tr.Sensor(5, [6]float32{})
	assert.False(t, ok)
}

func TestGamepadSensor(t *testing.T) {
	e := translate.GamepadSensor(8, sensor.KindAccel, [3]float32{0, -9.8, 0.5})
	assert.Equal(t, gamepad.EventSensor, e.Kind)
	assert.Equal(t, gamepad.InstanceID(8), e.Which)
	assert.Equal(t, sensor.KindAccel, e.Sensor)
	assert.Equal(t, sensor.Vec3{0, -9.8, 0.5}, e.Data)
}

func TestEscapeQuits(t *testing.T) {
	e, ok := translate.Key(translate.KeyEscape)
	require.True(t, ok)
	assert.Equal(t, gamepad.EventQuit, e.Kind)

	_, ok = translate.Key('q')
	assert.False(t, ok)
	assert.Equal(t, gamepad.EventQuit, translate.Quit().Kind)
}

func TestGamepadsPartition(t *testing.T) {
	pads, plain := translate.Gamepads([]uint32{3, 1, 7, 4}, []uint32{4, 3})
	assert.Equal(t, []uint32{3, 4}, pads)
	assert.Equal(t, []uint32{1, 7}, plain)

	pads, plain = translate.Gamepads(nil, []uint32{2})
	assert.Empty(t, pads)
	assert.Empty(t, plain)
}
