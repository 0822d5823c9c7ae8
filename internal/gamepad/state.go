package gamepad

import (
	"math"
	"slices"

	"github.com/soar/padscope/internal/sensor"
)

type AxesState struct {
	LeftX        float64 `json:"leftX"`
	LeftY        float64 `json:"leftY"`
	RightX       float64 `json:"rightX"`
	RightY       float64 `json:"rightY"`
	TriggerLeft  float64 `json:"triggerLeft"`
	TriggerRight float64 `json:"triggerRight"`
}

type SensorsState struct {
	Accel sensor.Vec3 `json:"accel"`
	Gyro  sensor.Vec3 `json:"gyro"`
}

type HapticsState struct {
	LEDArmed      bool   `json:"ledArmed"`
	LED           Color  `json:"led"`
	Rumble        Rumble `json:"rumble"`
	TriggerRumble Rumble `json:"triggerRumble"`
}

// FrameState is what one rendered frame showed.
type FrameState struct {
	Connected      bool         `json:"connected"`
	ControllerID   InstanceID   `json:"controllerId"`
	ControllerType string       `json:"controllerType"`
	Name           string       `json:"name"`
	Controllers    int          `json:"controllers"`
	Buttons        []string     `json:"buttons"`
	Axes           AxesState    `json:"axes"`
	Sensors        SensorsState `json:"sensors"`
	Haptics        HapticsState `json:"haptics"`
	Touches        int          `json:"touches"`
}

type DeltaChanges struct {
	Connected      *bool         `json:"connected,omitempty"`
	ControllerID   *InstanceID   `json:"controllerId,omitempty"`
	ControllerType *string       `json:"controllerType,omitempty"`
	Name           *string       `json:"name,omitempty"`
	Controllers    *int          `json:"controllers,omitempty"`
	Buttons        []string      `json:"buttons,omitempty"`
	Axes           *AxesState    `json:"axes,omitempty"`
	Sensors        *SensorsState `json:"sensors,omitempty"`
	Haptics        *HapticsState `json:"haptics,omitempty"`
	Touches        *int          `json:"touches,omitempty"`

	// ButtonsChanged distinguishes "all released" from "unchanged".
	ButtonsChanged bool `json:"buttonsChanged,omitempty"`
}

func (d *DeltaChanges) IsEmpty() bool {
	return d.Connected == nil &&
		d.ControllerID == nil &&
		d.ControllerType == nil &&
		d.Name == nil &&
		d.Controllers == nil &&
		!d.ButtonsChanged &&
		d.Axes == nil &&
		d.Sensors == nil &&
		d.Haptics == nil &&
		d.Touches == nil
}

const analogThreshold = 0.01

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < analogThreshold
}

func vecEqual(a, b sensor.Vec3) bool {
	for i := range a {
		if !floatEqual(float64(a[i]), float64(b[i])) {
			return false
		}
	}
	return true
}

func axesEqual(a, b AxesState) bool {
	return floatEqual(a.LeftX, b.LeftX) &&
		floatEqual(a.LeftY, b.LeftY) &&
		floatEqual(a.RightX, b.RightX) &&
		floatEqual(a.RightY, b.RightY) &&
		floatEqual(a.TriggerLeft, b.TriggerLeft) &&
		floatEqual(a.TriggerRight, b.TriggerRight)
}

func ComputeDelta(old, new_ FrameState) *DeltaChanges {
	d := &DeltaChanges{}

	if old.Connected != new_.Connected {
		d.Connected = &new_.Connected
	}
	if old.ControllerID != new_.ControllerID {
		d.ControllerID = &new_.ControllerID
	}
	if old.ControllerType != new_.ControllerType {
		d.ControllerType = &new_.ControllerType
	}
	if old.Name != new_.Name {
		d.Name = &new_.Name
	}
	if old.Controllers != new_.Controllers {
		d.Controllers = &new_.Controllers
	}
	if !slices.Equal(old.Buttons, new_.Buttons) {
		d.Buttons = slices.Clone(new_.Buttons)
		d.ButtonsChanged = true
	}
	if !axesEqual(old.Axes, new_.Axes) {
		d.Axes = &new_.Axes
	}
	if !vecEqual(old.Sensors.Accel, new_.Sensors.Accel) || !vecEqual(old.Sensors.Gyro, new_.Sensors.Gyro) {
		d.Sensors = &new_.Sensors
	}
	if old.Haptics != new_.Haptics {
		d.Haptics = &new_.Haptics
	}
	if old.Touches != new_.Touches {
		d.Touches = &new_.Touches
	}

	return d
}
