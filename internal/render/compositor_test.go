package render_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/soar/padscope/internal/gamepad"
	"github.com/soar/padscope/internal/gamepad/gamepadtest"
	"github.com/soar/padscope/internal/layout"
	"github.com/soar/padscope/internal/render"
	"github.com/soar/padscope/internal/sensor"
	"github.com/soar/padscope/internal/touch"
)

type draw struct {
	img   render.Image
	dst   image.Rectangle
	angle float64
}

type fill struct {
	color color.RGBA
	rect  image.Rectangle
}

type recorder struct {
	current  color.RGBA
	clears   int
	presents int
	draws    []draw
	fills    []fill
}

func (r *recorder) SetDrawColor(c color.RGBA) { r.current = c }
func (r *recorder) Clear()                    { r.clears++ }
func (r *recorder) Present()                  { r.presents++ }

func (r *recorder) DrawImage(img render.Image, dst image.Rectangle, angle float64) {
	r.draws = append(r.draws, draw{img, dst, angle})
}

func (r *recorder) FillRect(rect image.Rectangle) {
	r.fills = append(r.fills, fill{r.current, rect})
}

func (r *recorder) drawsOf(img render.Image) []draw {
	var out []draw
	for _, d := range r.draws {
		if d.img == img {
			out = append(out, d)
		}
	}
	return out
}

func activeController(t *testing.T) (*gamepad.Controller, *gamepadtest.Device) {
	t.Helper()
	host := gamepadtest.NewHost()
	dev := host.Plug(0)
	reg := gamepad.NewRegistry(host, zap.NewNop())
	reg.Add(0)
	require.NotNil(t, reg.Active())
	return reg.Active(), dev
}

func TestFrameWithoutController(t *testing.T) {
	rec := &recorder{}
	c := render.NewCompositor(rec)
	state := c.Frame(render.Scene{Touches: &touch.Ring{}, Sensors: &sensor.Aggregator{}})

	require.Equal(t, 1, rec.clears)
	require.Equal(t, 1, rec.presents)
	require.Len(t, rec.drawsOf(render.ImageBackground), 1)
	require.Equal(t, image.Rectangle{}, rec.draws[0].dst)
	require.Len(t, rec.fills, 6)
	require.False(t, state.Connected)
}

func TestFrameDrawsEveryTouchSlot(t *testing.T) {
	ring := &touch.Ring{}
	var want []image.Point
	for i := 0; i < touch.Capacity; i++ {
		v := float32(i) * 0.98 / float32(touch.Capacity-1)
		surface := touch.SurfaceFront
		if i%2 == 1 {
			surface = touch.SurfaceBack
		}
		ring.Push(touch.Event{Surface: surface, X: v, Y: v, Phase: touch.PhaseDown})
		want = append(want, image.Pt(190+int(v*580), 116+int(v*325)))
	}

	rec := &recorder{}
	render.NewCompositor(rec).Frame(render.Scene{Touches: ring})

	var markers []draw
	for _, d := range rec.draws {
		if d.img == render.ImageTouchFront || d.img == render.ImageTouchBack {
			markers = append(markers, d)
		}
	}
	require.Len(t, markers, touch.Capacity)
	for i, m := range markers {
		centre := image.Pt((m.dst.Min.X+m.dst.Max.X)/2, (m.dst.Min.Y+m.dst.Max.Y)/2)
		require.Equal(t, want[i], centre, "marker %d", i)
		require.Equal(t, 10, m.dst.Dx())
		require.Equal(t, 10, m.dst.Dy())
		if i%2 == 1 {
			require.Equal(t, render.ImageTouchBack, m.img)
		} else {
			require.Equal(t, render.ImageTouchFront, m.img)
		}
	}

	// The ring is not cleared between frames.
	rec = &recorder{}
	render.NewCompositor(rec).Frame(render.Scene{Touches: ring})
	require.Len(t, rec.drawsOf(render.ImageTouchFront), touch.Capacity/2)
}

func TestFrameSkipsEmptyTouchSlots(t *testing.T) {
	ring := &touch.Ring{}
	ring.Push(touch.Event{X: 0, Y: 0, Phase: touch.PhaseMotion})

	rec := &recorder{}
	render.NewCompositor(rec).Frame(render.Scene{Touches: ring})
	front := rec.drawsOf(render.ImageTouchFront)
	require.Len(t, front, 1)
	require.Equal(t, image.Rect(185, 111, 195, 121), front[0].dst)
}

func TestSensorBars(t *testing.T) {
	agg := &sensor.Aggregator{}
	agg.Update(sensor.KindAccel, sensor.Vec3{1.5, -2, 0})
	agg.Update(sensor.KindGyro, sensor.Vec3{0, 3, -0.5})

	rec := &recorder{}
	render.NewCompositor(rec).Frame(render.Scene{Sensors: agg})

	red := color.RGBA{0xFF, 0, 0, 0xFF}
	green := color.RGBA{0, 0xFF, 0, 0xFF}
	require.Equal(t, []fill{
		{red, image.Rect(320, 10, 335, 20)},
		{red, image.Rect(300, 20, 320, 30)},
		{red, image.Rect(320, 30, 320, 40)},
		{green, image.Rect(640, 10, 640, 20)},
		{green, image.Rect(640, 20, 670, 30)},
		{green, image.Rect(635, 30, 640, 40)},
	}, rec.fills)
}

func TestFrameButtonsAndAxes(t *testing.T) {
	ctrl, dev := activeController(t)
	dev.Buttons[layout.ButtonSouth] = true
	dev.Buttons[layout.ButtonDpadLeft] = true
	dev.Buttons[layout.ButtonTouchpad] = true
	dev.Axes[layout.AxisLeftX] = -8001
	dev.Axes[layout.AxisRightY] = 8001
	dev.Axes[layout.AxisLeftY] = 8000

	rec := &recorder{}
	state := render.NewCompositor(rec).Frame(render.Scene{Active: ctrl, Controllers: 1})

	buttons := rec.drawsOf(render.ImageButton)
	require.Len(t, buttons, 2)
	require.Equal(t, image.Rect(842, 241, 892, 291), buttons[0].dst)
	require.Equal(t, image.Rect(30, 202, 80, 252), buttons[1].dst)
	require.Equal(t, []string{"south", "dpad_left"}, state.Buttons)

	axes := rec.drawsOf(render.ImageAxis)
	require.Len(t, axes, 2)
	require.Equal(t, image.Rect(94, 318, 144, 368), axes[0].dst)
	require.Equal(t, 270.0, axes[0].angle)
	require.Equal(t, image.Rect(818, 318, 868, 368), axes[1].dst)
	require.Equal(t, 180.0, axes[1].angle)

	require.True(t, state.Connected)
	require.Equal(t, "pad-0", state.Name)
	require.Equal(t, 1, state.Controllers)
}

func TestFrameRumbleEveryTick(t *testing.T) {
	ctrl, dev := activeController(t)
	c := render.NewCompositor(&recorder{})

	dev.Axes[layout.AxisTriggerLeft] = 20000
	dev.Axes[layout.AxisTriggerRight] = 10000
	state := c.Frame(render.Scene{Active: ctrl})
	require.Equal(t, gamepad.Rumble{Low: 14464, High: 0}, state.Haptics.Rumble)

	dev.Axes[layout.AxisTriggerLeft] = 0
	c.Frame(render.Scene{Active: ctrl})

	require.Equal(t, []gamepadtest.RumbleCall{
		{Low: 14464, High: 0, Duration: gamepad.RumbleDuration},
		{Low: 0, High: 0, Duration: gamepad.RumbleDuration},
	}, dev.Rumbles)
	require.Len(t, dev.TriggerRumbles, 2)
}

func TestFrameTriggerRumbleFromSticks(t *testing.T) {
	ctrl, dev := activeController(t)
	dev.Axes[layout.AxisLeftY] = -20001
	dev.Axes[layout.AxisRightY] = 20000

	render.NewCompositor(&recorder{}).Frame(render.Scene{Active: ctrl})
	require.Equal(t, []gamepadtest.RumbleCall{{Low: 14464, High: 0, Duration: gamepad.RumbleDuration}}, dev.TriggerRumbles)
}

func TestFrameLEDArming(t *testing.T) {
	ctrl, dev := activeController(t)
	c := render.NewCompositor(&recorder{})

	c.Frame(render.Scene{Active: ctrl})
	require.Empty(t, dev.LEDs)
	require.False(t, c.LEDArmed())

	dev.Axes[layout.AxisLeftX] = 32767
	c.Frame(render.Scene{Active: ctrl})
	require.True(t, c.LEDArmed())
	require.Equal(t, []gamepad.Color{{B: 255}}, dev.LEDs)

	dev.Axes[layout.AxisLeftX] = 0
	state := c.Frame(render.Scene{Active: ctrl})
	require.True(t, c.LEDArmed())
	require.True(t, state.Haptics.LEDArmed)
	require.Equal(t, []gamepad.Color{{B: 255}, {}}, dev.LEDs)
}

func TestFrameHapticsDisabled(t *testing.T) {
	ctrl, dev := activeController(t)
	dev.Axes[layout.AxisLeftX] = 32767
	dev.Axes[layout.AxisTriggerLeft] = 32767

	render.NewCompositor(&recorder{}, render.WithHaptics(false)).Frame(render.Scene{Active: ctrl})
	require.Empty(t, dev.LEDs)
	require.Empty(t, dev.Rumbles)
	require.Empty(t, dev.TriggerRumbles)
}

func TestFrameHapticFailuresAreIgnored(t *testing.T) {
	ctrl, dev := activeController(t)
	dev.FailHaptics = true
	dev.Buttons[layout.ButtonStart] = true

	rec := &recorder{}
	state := render.NewCompositor(rec).Frame(render.Scene{Active: ctrl})
	require.Equal(t, 1, rec.presents)
	require.Equal(t, []string{"start"}, state.Buttons)
}

func TestFrameReportsHapticFailuresOnce(t *testing.T) {
	ctrl, dev := activeController(t)
	dev.FailHaptics = true
	dev.Axes[layout.AxisLeftX] = 20000

	core, logs := observer.New(zapcore.DebugLevel)
	c := render.NewCompositor(&recorder{}, render.WithLogger(zap.New(core)))
	c.Frame(render.Scene{Active: ctrl})
	c.Frame(render.Scene{Active: ctrl})

	entries := logs.FilterMessage("haptic command rejected").All()
	require.Len(t, entries, 3)
	var commands []string
	for _, e := range entries {
		commands = append(commands, e.ContextMap()["command"].(string))
		require.Equal(t, int32(ctrl.ID), e.ContextMap()["controller"])
	}
	require.ElementsMatch(t, []string{"led", "rumble", "rumble_triggers"}, commands)
}
