package render

import (
	"image"
	"image/color"

	"go.uber.org/zap"

	"github.com/soar/padscope/internal/gamepad"
	"github.com/soar/padscope/internal/layout"
	"github.com/soar/padscope/internal/sensor"
	"github.com/soar/padscope/internal/touch"
)

// Touch surface placement inside the diagram.
const (
	touchOriginX = 190
	touchOriginY = 116
	touchWidth   = 580
	touchHeight  = 325
	touchMarker  = 10
)

// Sensor bar placement.
const (
	barHeight   = 10
	barScale    = 10
	barTop      = 10
	accelOrigin = 320
	gyroOrigin  = 640
)

var (
	black      = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	accelColor = color.RGBA{0xFF, 0x00, 0x00, 0xFF}
	gyroColor  = color.RGBA{0x00, 0xFF, 0x00, 0xFF}
)

// Compositor draws frames and drives haptics for the active controller.
type Compositor struct {
	canvas  Canvas
	haptics bool
	led     gamepad.LEDGate
	log     *zap.Logger
	// failed holds the haptic commands already reported per controller.
	failed map[hapticFailure]struct{}
}

type hapticFailure struct {
	id      gamepad.InstanceID
	command string
}

type Option func(*Compositor)

// WithHaptics enables or disables LED and rumble output. It is on by default.
func WithHaptics(enabled bool) Option {
	return func(c *Compositor) {
		c.haptics = enabled
	}
}

// WithLogger sets the logger haptic failures are reported on.
func WithLogger(log *zap.Logger) Option {
	return func(c *Compositor) {
		c.log = log
	}
}

func NewCompositor(canvas Canvas, opts ...Option) *Compositor {
	c := &Compositor{
		canvas:  canvas,
		haptics: true,
		log:     zap.NewNop(),
		failed:  make(map[hapticFailure]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Scene is the state one frame is drawn from.
type Scene struct {
	Active      *gamepad.Controller
	Controllers int
	Touches     *touch.Ring
	Sensors     *sensor.Aggregator
}

// TouchPoint maps a normalized contact position to screen coordinates.
func TouchPoint(e touch.Event) image.Point {
	return image.Pt(
		touchOriginX+int(e.X*touchWidth),
		touchOriginY+int(e.Y*touchHeight),
	)
}

// SensorBar returns the bar for value drawn from originX at row. Negative
// values extend to the left of the origin.
func SensorBar(originX, row int, value float32) image.Rectangle {
	w := int(value * barScale)
	y := barTop + row*barHeight
	// image.Rect canonicalizes, so a negative width mirrors around originX.
	return image.Rect(originX, y, originX+w, y+barHeight)
}

// Frame draws one frame from s, issues haptic commands and presents it.
func (c *Compositor) Frame(s Scene) gamepad.FrameState {
	state := gamepad.FrameState{Controllers: s.Controllers}

	c.canvas.SetDrawColor(black)
	c.canvas.Clear()
	c.canvas.DrawImage(ImageBackground, image.Rectangle{}, 0)

	if s.Touches != nil {
		c.drawTouches(s.Touches)
		state.Touches = s.Touches.Len()
	}
	if s.Sensors != nil {
		c.drawSensors(s.Sensors)
		state.Sensors = gamepad.SensorsState{Accel: s.Sensors.Accel(), Gyro: s.Sensors.Gyro()}
	}

	if s.Active != nil {
		info := s.Active.Info()
		state.Connected = true
		state.ControllerID = s.Active.ID
		state.Name = info.Name
		state.ControllerType = info.Class.String()
		state.Buttons = c.drawButtons(s.Active)
		state.Axes = c.drawAxes(s.Active)
		if c.haptics {
			state.Haptics = c.updateHaptics(s.Active)
		}
	}

	c.canvas.Present()
	return state
}

func (c *Compositor) drawTouches(r *touch.Ring) {
	r.Each(func(e touch.Event) {
		if !e.Valid() {
			return
		}
		p := TouchPoint(e)
		dst := image.Rect(p.X-touchMarker/2, p.Y-touchMarker/2, p.X+touchMarker/2, p.Y+touchMarker/2)
		img := ImageTouchFront
		if e.Surface == touch.SurfaceBack {
			img = ImageTouchBack
		}
		c.canvas.DrawImage(img, dst, 0)
	})
}

func (c *Compositor) drawSensors(a *sensor.Aggregator) {
	c.canvas.SetDrawColor(accelColor)
	for i, v := range a.Accel() {
		c.canvas.FillRect(SensorBar(accelOrigin, i, v))
	}
	c.canvas.SetDrawColor(gyroColor)
	for i, v := range a.Gyro() {
		c.canvas.FillRect(SensorBar(gyroOrigin, i, v))
	}
}

func (c *Compositor) drawButtons(ctrl *gamepad.Controller) []string {
	var pressed []string
	for _, b := range layout.AllButtons() {
		e, ok := layout.LookupButton(b)
		if !ok {
			continue
		}
		if !ctrl.Button(b) {
			continue
		}
		c.canvas.DrawImage(ImageButton, e.Rect(), 0)
		pressed = append(pressed, e.Button.String())
	}
	return pressed
}

func (c *Compositor) drawAxes(ctrl *gamepad.Controller) gamepad.AxesState {
	values := make(map[layout.Axis]int16, 6)
	for _, a := range layout.AllAxes() {
		v := ctrl.Axis(a)
		values[a] = v
		e, ok := layout.LookupAxis(a)
		if !ok {
			continue
		}
		switch {
		case v < -gamepad.Deadzone:
			c.canvas.DrawImage(ImageAxis, e.Rect(), e.BaseAngle)
		case v > gamepad.Deadzone:
			c.canvas.DrawImage(ImageAxis, e.Rect(), e.BaseAngle+180)
		}
	}
	return gamepad.AxesState{
		LeftX:        gamepad.NormalizeAxis(values[layout.AxisLeftX]),
		LeftY:        gamepad.NormalizeAxis(values[layout.AxisLeftY]),
		RightX:       gamepad.NormalizeAxis(values[layout.AxisRightX]),
		RightY:       gamepad.NormalizeAxis(values[layout.AxisRightY]),
		TriggerLeft:  gamepad.NormalizeAxis(values[layout.AxisTriggerLeft]),
		TriggerRight: gamepad.NormalizeAxis(values[layout.AxisTriggerRight]),
	}
}

// updateHaptics is best-effort: controllers without an LED or motors
// reject the commands and that is not an error. Each rejected command is
// logged once per controller.
func (c *Compositor) updateHaptics(ctrl *gamepad.Controller) gamepad.HapticsState {
	var hs gamepad.HapticsState

	x := ctrl.Axis(layout.AxisLeftX)
	y := ctrl.Axis(layout.AxisLeftY)
	if c.led.Update(x, y) {
		hs.LEDArmed = true
		hs.LED = gamepad.LEDColor(x, y)
		c.report(ctrl, "led", ctrl.SetLED(hs.LED.R, hs.LED.G, hs.LED.B))
	}

	hs.Rumble = gamepad.TriggerRumble(ctrl.Axis(layout.AxisTriggerLeft), ctrl.Axis(layout.AxisTriggerRight))
	c.report(ctrl, "rumble", ctrl.Rumble(hs.Rumble.Low, hs.Rumble.High, gamepad.RumbleDuration))

	hs.TriggerRumble = gamepad.StickTriggerRumble(y, ctrl.Axis(layout.AxisRightY))
	c.report(ctrl, "rumble_triggers", ctrl.RumbleTriggers(hs.TriggerRumble.Low, hs.TriggerRumble.High, gamepad.RumbleDuration))

	return hs
}

func (c *Compositor) report(ctrl *gamepad.Controller, command string, err error) {
	if err == nil {
		return
	}
	key := hapticFailure{id: ctrl.ID, command: command}
	if _, seen := c.failed[key]; seen {
		return
	}
	c.failed[key] = struct{}{}
	c.log.Debug("haptic command rejected",
		zap.Int32("controller", int32(ctrl.ID)),
		zap.String("name", ctrl.Info().Name),
		zap.String("command", command),
		zap.Error(err),
	)
}

// LEDArmed reports whether LED output has started.
func (c *Compositor) LEDArmed() bool {
	return c.led.Armed()
}
