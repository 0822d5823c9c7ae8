package sdlhost

import (
	"errors"
	"fmt"
	"time"

	"github.com/jupiterrider/purego-sdl3/sdl"

	"github.com/soar/padscope/internal/gamepad"
	"github.com/soar/padscope/internal/layout"
)

// pad is an open SDL gamepad. Haptics and identity go through the joystick
// SDL opened underneath it.
type pad struct {
	g    *sdl.Gamepad
	js   *sdl.Joystick
	info gamepad.Info
}

func sdlError(op string) error {
	msg := sdl.GetError()
	if msg == "" {
		msg = "unknown error"
	}
	return fmt.Errorf("%s: %s", op, msg)
}

func openPad(id sdl.JoystickID) (*pad, error) {
	g := sdl.OpenGamepad(id)
	if g == nil {
		return nil, sdlError("open gamepad")
	}
	js := sdl.GetJoystickFromID(id)
	if js == nil {
		err := sdlError("joystick for gamepad")
		sdl.CloseGamepad(g)
		return nil, err
	}
	vendor := sdl.GetJoystickVendor(js)
	product := sdl.GetJoystickProduct(js)
	p := &pad{
		g:  g,
		js: js,
		info: gamepad.Info{
			Name:      sdl.GetGamepadName(g),
			Class:     classOf(sdl.GetGamepadType(g), vendor, product),
			VendorID:  vendor,
			ProductID: product,
		},
	}
	// Embedded motion sensors report through gamepad sensor events once
	// enabled.
	for _, t := range []sdl.SensorType{sdl.SensorAccel, sdl.SensorGyro} {
		if sdlGamepadHasSensor(g, t) {
			sdlSetGamepadSensorEnabled(g, t, true)
		}
	}
	return p, nil
}

func (p *pad) Info() gamepad.Info {
	return p.info
}

func (p *pad) Button(b layout.Button) bool {
	sb, ok := sdlButtons[b]
	if !ok {
		return false
	}
	return sdlGetGamepadButton(p.g, sb)
}

func (p *pad) Axis(a layout.Axis) int16 {
	sa, ok := sdlAxes[a]
	if !ok {
		return 0
	}
	return sdlGetGamepadAxis(p.g, sa)
}

func (p *pad) SetLED(r, g, b uint8) error {
	if !sdl.SetJoystickLED(p.js, r, g, b) {
		return sdlError("set led")
	}
	return nil
}

func (p *pad) Rumble(low, high uint16, d time.Duration) error {
	if !sdl.RumbleJoystick(p.js, low, high, uint32(d.Milliseconds())) {
		return sdlError("rumble")
	}
	return nil
}

func (p *pad) RumbleTriggers(left, right uint16, d time.Duration) error {
	if !sdl.RumbleJoystickTriggers(p.js, left, right, uint32(d.Milliseconds())) {
		return sdlError("rumble triggers")
	}
	return nil
}

// Close closes the gamepad and with it the underlying joystick.
func (p *pad) Close() error {
	if p.g == nil {
		return errors.New("gamepad already closed")
	}
	sdl.CloseGamepad(p.g)
	p.g, p.js = nil, nil
	return nil
}
