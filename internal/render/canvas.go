// Package render composes one frame of the controller diagram.
package render

import (
	"image"
	"image/color"
)

// Image names a loaded texture.
type Image uint8

const (
	ImageBackground Image = iota
	ImageButton
	ImageAxis
	ImageTouchFront
	ImageTouchBack
)

func (i Image) String() string {
	switch i {
	case ImageBackground:
		return "background"
	case ImageButton:
		return "button"
	case ImageAxis:
		return "axis"
	case ImageTouchFront:
		return "touch_front"
	case ImageTouchBack:
		return "touch_back"
	default:
		return "unknown"
	}
}

// Canvas is a 2D drawing surface in logical screen coordinates.
type Canvas interface {
	SetDrawColor(c color.RGBA)
	Clear()
	// DrawImage draws img into dst rotated by angle degrees clockwise about
	// its centre. An empty dst covers the whole surface.
	DrawImage(img Image, dst image.Rectangle, angle float64)
	FillRect(r image.Rectangle)
	Present()
}
