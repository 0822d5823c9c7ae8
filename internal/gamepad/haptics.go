package gamepad

import (
	"math"
	"time"
)

const (
	// AxisMax is the largest raw axis reading.
	AxisMax = math.MaxInt16
	// Deadzone is the magnitude at or below which a stick reads as neutral.
	Deadzone = 8000
	// FocusThreshold is the axis magnitude that lets a device take focus.
	FocusThreshold = AxisMax / 2
	// RumbleDuration is the length of each refreshed rumble effect.
	RumbleDuration = 250 * time.Millisecond
)

// rumbleMidpoint is ceil(AxisMax / 2).
const rumbleMidpoint = (AxisMax + 1) / 2

// ConvertAxisToRumble maps an axis reading to a motor intensity. Readings
// at or below the axis midpoint produce no rumble.
func ConvertAxisToRumble(v int16) uint16 {
	if int(v) <= rumbleMidpoint {
		return 0
	}
	out := (int(v) - rumbleMidpoint) * 4
	if out > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(out)
}

// Rumble is one pair of motor intensities.
type Rumble struct {
	Low  uint16 `json:"low"`
	High uint16 `json:"high"`
}

// TriggerRumble derives the main motors from the trigger readings.
func TriggerRumble(left, right int16) Rumble {
	return Rumble{Low: ConvertAxisToRumble(left), High: ConvertAxisToRumble(right)}
}

// StickTriggerRumble derives the trigger motors from the vertical stick
// readings. The complement turns a push toward the negative extreme into a
// large positive reading.
func StickTriggerRumble(leftY, rightY int16) Rumble {
	return Rumble{Low: ConvertAxisToRumble(^leftY), High: ConvertAxisToRumble(^rightY)}
}

// Color is an LED colour.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// LEDColor maps the left stick position to an LED colour: red for left,
// blue for right, green for positive Y.
func LEDColor(x, y int16) Color {
	var c Color
	if x < 0 {
		c.R = uint8(int(^x) * 255 / AxisMax)
	} else {
		c.B = uint8(int(x) * 255 / AxisMax)
	}
	if y > 0 {
		c.G = uint8(int(y) * 255 / AxisMax)
	}
	return c
}

// LEDGate holds LED output off until the left stick first leaves the
// deadzone. Once armed it stays armed.
type LEDGate struct {
	armed bool
}

// Update arms the gate if x or positive y exceeds the deadzone, and reports
// whether the gate is armed.
func (g *LEDGate) Update(x, y int16) bool {
	if !g.armed {
		g.armed = x < -Deadzone || x > Deadzone || y > Deadzone
	}
	return g.armed
}

func (g *LEDGate) Armed() bool {
	return g.armed
}
