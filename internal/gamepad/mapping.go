package gamepad

import "math"

// Class is the family a controller belongs to. It is informational only.
type Class uint8

const (
	ClassUnknown Class = iota
	ClassGeneric
	ClassXbox360
	ClassXboxOne
	ClassPS3
	ClassPS4
	ClassPS5
	ClassSwitchPro
	ClassJoyConLeft
	ClassJoyConRight
	ClassJoyConPair
	ClassVirtual
	// ClassJoystick is a device without a gamepad mapping.
	ClassJoystick
)

var classDescriptions = map[Class]string{
	ClassUnknown:     "Unknown",
	ClassGeneric:     "Game Controller",
	ClassXbox360:     "XBox 360 Controller",
	ClassXboxOne:     "XBox One Controller",
	ClassPS3:         "PS3 Controller",
	ClassPS4:         "PS4 Controller",
	ClassPS5:         "PS5 Controller",
	ClassSwitchPro:   "Nintendo Switch Pro Controller",
	ClassJoyConLeft:  "Nintendo Switch Joy-Con (L)",
	ClassJoyConRight: "Nintendo Switch Joy-Con (R)",
	ClassJoyConPair:  "Nintendo Switch Joy-Con Pair",
	ClassVirtual:     "Virtual Game Controller",
	ClassJoystick:    "Joystick",
}

func (c Class) String() string {
	if d, ok := classDescriptions[c]; ok {
		return d
	}
	return classDescriptions[ClassUnknown]
}

type deviceKey struct {
	VendorID  uint16
	ProductID uint16
}

// Known vendor/product IDs, used when the platform cannot classify a device.
var knownDevices = map[deviceKey]Class{
	// Microsoft Xbox controllers
	{0x045E, 0x028E}: ClassXbox360,
	{0x045E, 0x02FF}: ClassXboxOne,
	{0x045E, 0x0B12}: ClassXboxOne, // Xbox Series X|S
	{0x045E, 0x0B13}: ClassXboxOne, // Xbox Series X|S (wireless)
	// Sony PlayStation controllers
	{0x054C, 0x0268}: ClassPS3,
	{0x054C, 0x05C4}: ClassPS4, // DualShock 4 v1
	{0x054C, 0x09CC}: ClassPS4, // DualShock 4 v2
	{0x054C, 0x0CE6}: ClassPS5, // DualSense
	// Nintendo
	{0x057E, 0x2006}: ClassJoyConLeft,
	{0x057E, 0x2007}: ClassJoyConRight,
	{0x057E, 0x2009}: ClassSwitchPro,
}

// ResolveClass returns reported unless it is unknown or generic, in which
// case the vendor/product table is consulted.
func ResolveClass(reported Class, vendorID, productID uint16) Class {
	if reported != ClassUnknown && reported != ClassGeneric {
		return reported
	}
	if c, ok := knownDevices[deviceKey{VendorID: vendorID, ProductID: productID}]; ok {
		return c
	}
	if reported == ClassUnknown {
		return ClassGeneric
	}
	return reported
}

// NormalizeAxis converts a raw axis value (-32768..32767) to -1.0..1.0.
func NormalizeAxis(raw int16) float64 {
	v := float64(raw) / math.MaxInt16
	if v < -1.0 {
		v = -1.0
	}
	return v
}
