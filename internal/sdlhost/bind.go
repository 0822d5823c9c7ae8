package sdlhost

import (
	"fmt"
	"runtime"
	"slices"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/jupiterrider/purego-sdl3/sdl"
)

// sensorHandle is an open SDL_Sensor.
type sensorHandle struct{}

// SDL3 functions the sdl package leaves unbound. They are registered against
// the library the sdl package already loaded.
var (
	sdlGetGamepadButton        func(*sdl.Gamepad, sdl.GamepadButton) bool
	sdlGetGamepadAxis          func(*sdl.Gamepad, sdl.GamepadAxis) int16
	sdlGamepadHasSensor        func(*sdl.Gamepad, sdl.SensorType) bool
	sdlSetGamepadSensorEnabled func(*sdl.Gamepad, sdl.SensorType, bool) bool
	sdlGetGamepadTypeForID     func(sdl.JoystickID) sdl.GamepadType
	sdlGetSensors              func(*int32) *sdl.SensorID
	sdlGetSensorNameForID      func(sdl.SensorID) string
	sdlGetSensorTypeForID      func(sdl.SensorID) sdl.SensorType
	sdlOpenSensor              func(sdl.SensorID) *sensorHandle
	sdlCloseSensor             func(*sensorHandle)
	sdlReadSurfacePixel        func(*sdl.Surface, int32, int32, *uint8, *uint8, *uint8, *uint8) bool
)

var bindings = []struct {
	fptr any
	name string
}{
	{&sdlGetGamepadButton, "SDL_GetGamepadButton"},
	{&sdlGetGamepadAxis, "SDL_GetGamepadAxis"},
	{&sdlGamepadHasSensor, "SDL_GamepadHasSensor"},
	{&sdlSetGamepadSensorEnabled, "SDL_SetGamepadSensorEnabled"},
	{&sdlGetGamepadTypeForID, "SDL_GetGamepadTypeForID"},
	{&sdlGetSensors, "SDL_GetSensors"},
	{&sdlGetSensorNameForID, "SDL_GetSensorNameForID"},
	{&sdlGetSensorTypeForID, "SDL_GetSensorTypeForID"},
	{&sdlOpenSensor, "SDL_OpenSensor"},
	{&sdlCloseSensor, "SDL_CloseSensor"},
	{&sdlReadSurfacePixel, "SDL_ReadSurfacePixel"},
}

var bound bool

func libraryName() string {
	switch runtime.GOOS {
	case "windows":
		return "SDL3.dll"
	case "darwin":
		return "libSDL3.dylib"
	default:
		return "libSDL3.so.0"
	}
}

// bind registers the extra SDL functions. A missing symbol means the
// installed SDL3 is too old and is reported instead of panicking.
func bind() error {
	if bound {
		return nil
	}
	name := libraryName()
	lib, err := openLibrary(name)
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	for _, b := range bindings {
		addr, err := lookup(lib, b.name)
		if err != nil {
			return fmt.Errorf("%s: %w", b.name, err)
		}
		purego.RegisterFunc(b.fptr, addr)
	}
	bound = true
	return nil
}

func sensorIDs() []sdl.SensorID {
	var count int32
	ptr := sdlGetSensors(&count)
	if ptr == nil {
		return nil
	}
	defer sdl.Free(unsafe.Pointer(ptr))
	return slices.Clone(unsafe.Slice(ptr, count))
}

func isGamepad(id sdl.JoystickID) bool {
	return slices.Contains(sdl.GetGamepads(), id)
}
