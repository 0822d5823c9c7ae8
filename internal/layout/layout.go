// Package layout holds the fixed pixel layout of the controller diagram.
//
// Buttons and axes are identified by a closed set of logical identifiers.
// The host adapter translates platform enumerations into these identifiers;
// anything it cannot translate never reaches the layout and is not drawn.
package layout

import "image"

// Logical screen size the layout is drawn in.
const (
	ScreenWidth  = 960
	ScreenHeight = 544
)

// GlyphSize is the edge length of button and axis glyphs.
const GlyphSize = 50

// Button is a logical gamepad button.
type Button uint8

const (
	ButtonSouth Button = iota
	ButtonEast
	ButtonWest
	ButtonNorth
	ButtonBack
	ButtonGuide
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonDpadUp
	ButtonDpadDown
	ButtonDpadLeft
	ButtonDpadRight
	ButtonMisc1
	ButtonPaddle1
	ButtonPaddle2
	ButtonPaddle3
	ButtonPaddle4
	// ButtonTouchpad is a click on the touchpad surface. It has no glyph.
	ButtonTouchpad

	buttonCount
)

var buttonNames = map[Button]string{
	ButtonSouth:         "south",
	ButtonEast:          "east",
	ButtonWest:          "west",
	ButtonNorth:         "north",
	ButtonBack:          "back",
	ButtonGuide:         "guide",
	ButtonStart:         "start",
	ButtonLeftStick:     "left_stick",
	ButtonRightStick:    "right_stick",
	ButtonLeftShoulder:  "left_shoulder",
	ButtonRightShoulder: "right_shoulder",
	ButtonDpadUp:        "dpad_up",
	ButtonDpadDown:      "dpad_down",
	ButtonDpadLeft:      "dpad_left",
	ButtonDpadRight:     "dpad_right",
	ButtonMisc1:         "misc1",
	ButtonPaddle1:       "paddle1",
	ButtonPaddle2:       "paddle2",
	ButtonPaddle3:       "paddle3",
	ButtonPaddle4:       "paddle4",
	ButtonTouchpad:      "touchpad",
}

func (b Button) String() string {
	if n, ok := buttonNames[b]; ok {
		return n
	}
	return "unknown"
}

// Axis is a logical gamepad axis.
type Axis uint8

const (
	AxisLeftX Axis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisTriggerLeft
	AxisTriggerRight

	axisCount
)

var axisNames = map[Axis]string{
	AxisLeftX:        "left_x",
	AxisLeftY:        "left_y",
	AxisRightX:       "right_x",
	AxisRightY:       "right_y",
	AxisTriggerLeft:  "trigger_left",
	AxisTriggerRight: "trigger_right",
}

func (a Axis) String() string {
	if n, ok := axisNames[a]; ok {
		return n
	}
	return "unknown"
}

// ButtonEntry is the top-left anchor of a button glyph.
type ButtonEntry struct {
	Button Button
	X, Y   int
}

// Rect returns the glyph destination rectangle.
func (e ButtonEntry) Rect() image.Rectangle {
	return image.Rect(e.X, e.Y, e.X+GlyphSize, e.Y+GlyphSize)
}

// AxisEntry is the anchor and base orientation of an axis glyph. The glyph
// is drawn at BaseAngle for negative deflection and BaseAngle+180 for
// positive deflection.
type AxisEntry struct {
	Axis      Axis
	X, Y      int
	BaseAngle float64
}

// Rect returns the glyph destination rectangle.
func (e AxisEntry) Rect() image.Rectangle {
	return image.Rect(e.X, e.Y, e.X+GlyphSize, e.Y+GlyphSize)
}

var buttonTable = []ButtonEntry{
	{ButtonSouth, 842, 241},
	{ButtonEast, 884, 201},
	{ButtonWest, 800, 201},
	{ButtonNorth, 842, 162},

	{ButtonBack, 802, 398},
	{ButtonGuide, 80, 398},
	{ButtonStart, 854, 398},

	{ButtonLeftStick, 92, 316},
	{ButtonRightStick, 816, 316},

	{ButtonLeftShoulder, 92, 74},
	{ButtonRightShoulder, 814, 74},

	{ButtonDpadUp, 66, 166},
	{ButtonDpadDown, 66, 238},
	{ButtonDpadLeft, 30, 202},
	{ButtonDpadRight, 100, 202},

	{ButtonMisc1, 232, 174},
	{ButtonPaddle1, 132, 135},
	{ButtonPaddle2, 330, 135},
	{ButtonPaddle3, 132, 175},
	{ButtonPaddle4, 330, 175},
}

var axisTable = []AxisEntry{
	{AxisLeftX, 94, 318, 270},
	{AxisLeftY, 94, 318, 0},

	{AxisRightX, 818, 318, 270},
	{AxisRightY, 818, 318, 0},

	{AxisTriggerLeft, 92, 20, 0},
	{AxisTriggerRight, 814, 20, 0},
}

var (
	buttonIndex = make(map[Button]ButtonEntry, len(buttonTable))
	axisIndex   = make(map[Axis]AxisEntry, len(axisTable))
)

func init() {
	for _, e := range buttonTable {
		buttonIndex[e.Button] = e
	}
	for _, e := range axisTable {
		axisIndex[e.Axis] = e
	}
}

// AllButtons returns every button identifier in ordinal order, including
// the ones without a glyph.
func AllButtons() []Button {
	out := make([]Button, 0, buttonCount)
	for b := range buttonCount {
		out = append(out, b)
	}
	return out
}

// AllAxes returns every axis identifier in ordinal order.
func AllAxes() []Axis {
	out := make([]Axis, 0, axisCount)
	for a := range axisCount {
		out = append(out, a)
	}
	return out
}

// LookupButton returns the layout of b. The touchpad button and
// unrecognized identifiers report false.
func LookupButton(b Button) (ButtonEntry, bool) {
	e, ok := buttonIndex[b]
	return e, ok
}

// LookupAxis returns the layout of a.
func LookupAxis(a Axis) (AxisEntry, bool) {
	e, ok := axisIndex[a]
	return e, ok
}
