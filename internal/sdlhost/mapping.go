package sdlhost

import (
	"github.com/jupiterrider/purego-sdl3/sdl"

	"github.com/soar/padscope/internal/gamepad"
	"github.com/soar/padscope/internal/layout"
	"github.com/soar/padscope/internal/sensor"
)

// SDL enumerations translated into the layout's logical identifiers.
// Anything missing here is dropped before it reaches the layout.
var buttonMap = map[sdl.GamepadButton]layout.Button{
	sdl.GamepadButtonSouth:         layout.ButtonSouth,
	sdl.GamepadButtonEast:          layout.ButtonEast,
	sdl.GamepadButtonWest:          layout.ButtonWest,
	sdl.GamepadButtonNorth:         layout.ButtonNorth,
	sdl.GamepadButtonBack:          layout.ButtonBack,
	sdl.GamepadButtonGuide:         layout.ButtonGuide,
	sdl.GamepadButtonStart:         layout.ButtonStart,
	sdl.GamepadButtonLeftStick:     layout.ButtonLeftStick,
	sdl.GamepadButtonRightStick:    layout.ButtonRightStick,
	sdl.GamepadButtonLeftShoulder:  layout.ButtonLeftShoulder,
	sdl.GamepadButtonRightShoulder: layout.ButtonRightShoulder,
	sdl.GamepadButtonDpadUp:        layout.ButtonDpadUp,
	sdl.GamepadButtonDpadDown:      layout.ButtonDpadDown,
	sdl.GamepadButtonDpadLeft:      layout.ButtonDpadLeft,
	sdl.GamepadButtonDpadRight:     layout.ButtonDpadRight,
	sdl.GamepadButtonMisc1:         layout.ButtonMisc1,
	sdl.GamepadButtonRightPaddle1:  layout.ButtonPaddle1,
	sdl.GamepadButtonLeftPaddle1:   layout.ButtonPaddle2,
	sdl.GamepadButtonRightPaddle2:  layout.ButtonPaddle3,
	sdl.GamepadButtonLeftPaddle2:   layout.ButtonPaddle4,
	sdl.GamepadButtonTouchpad:      layout.ButtonTouchpad,
}

var axisMap = map[sdl.GamepadAxis]layout.Axis{
	sdl.GamepadAxisLeftX:        layout.AxisLeftX,
	sdl.GamepadAxisLeftY:        layout.AxisLeftY,
	sdl.GamepadAxisRightX:       layout.AxisRightX,
	sdl.GamepadAxisRightY:       layout.AxisRightY,
	sdl.GamepadAxisLeftTrigger:  layout.AxisTriggerLeft,
	sdl.GamepadAxisRightTrigger: layout.AxisTriggerRight,
}

var (
	sdlButtons = make(map[layout.Button]sdl.GamepadButton, len(buttonMap))
	sdlAxes    = make(map[layout.Axis]sdl.GamepadAxis, len(axisMap))
)

func init() {
	for k, v := range buttonMap {
		sdlButtons[v] = k
	}
	for k, v := range axisMap {
		sdlAxes[v] = k
	}
}

var classMap = map[sdl.GamepadType]gamepad.Class{
	sdl.GamepadTypeStandard:                  gamepad.ClassGeneric,
	sdl.GamepadTypeXbox360:                   gamepad.ClassXbox360,
	sdl.GamepadTypeXboxOne:                   gamepad.ClassXboxOne,
	sdl.GamepadTypePS3:                       gamepad.ClassPS3,
	sdl.GamepadTypePS4:                       gamepad.ClassPS4,
	sdl.GamepadTypePS5:                       gamepad.ClassPS5,
	sdl.GamepadTypeNintendoSwitchPro:         gamepad.ClassSwitchPro,
	sdl.GamepadTypeNintendoSwitchJoyConLeft:  gamepad.ClassJoyConLeft,
	sdl.GamepadTypeNintendoSwitchJoyConRight: gamepad.ClassJoyConRight,
	sdl.GamepadTypeNintendoSwitchJoyConPair:  gamepad.ClassJoyConPair,
}

func classOf(t sdl.GamepadType, vendor, product uint16) gamepad.Class {
	c, ok := classMap[t]
	if !ok {
		c = gamepad.ClassUnknown
	}
	return gamepad.ResolveClass(c, vendor, product)
}

func sensorKind(t sdl.SensorType) sensor.Kind {
	switch t {
	case sdl.SensorAccel:
		return sensor.KindAccel
	case sdl.SensorGyro:
		return sensor.KindGyro
	default:
		return sensor.KindUnknown
	}
}
