package tray

import _ "embed"

// iconData is a 16x16 ICO of a green ring around a red dot, the colours of
// padscope's front and back touch markers. systray takes ICO on every
// platform it supports.
//
//go:embed icon.ico
var iconData []byte

// Icon returns the tray icon shown while padscope runs.
func Icon() []byte {
	return iconData
}
