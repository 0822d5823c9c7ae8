package sdlhost

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/jupiterrider/purego-sdl3/sdl"

	"github.com/soar/padscope/internal/render"
)

type textureSpec struct {
	file        string
	transparent bool
	tint        color.RGBA
}

var textureSpecs = map[render.Image]textureSpec{
	render.ImageBackground: {file: "controllermap.bmp", tint: color.RGBA{255, 255, 255, 255}},
	render.ImageButton:     {file: "button.bmp", transparent: true, tint: color.RGBA{10, 255, 21, 100}},
	render.ImageAxis:       {file: "axis.bmp", transparent: true, tint: color.RGBA{10, 255, 21, 255}},
	render.ImageTouchFront: {file: "button.bmp", transparent: true, tint: color.RGBA{10, 255, 21, 100}},
	render.ImageTouchBack:  {file: "button.bmp", transparent: true, tint: color.RGBA{255, 10, 21, 100}},
}

func (h *Host) loadTextures(dir string) error {
	for img, spec := range textureSpecs {
		t, err := h.loadTexture(filepath.Join(dir, spec.file), spec.transparent)
		if err != nil {
			return fmt.Errorf("load %s: %w", img, err)
		}
		sdl.SetTextureColorMod(t, spec.tint.R, spec.tint.G, spec.tint.B)
		sdl.SetTextureAlphaMod(t, spec.tint.A)
		h.textures[img] = t
	}
	return nil
}

func (h *Host) loadTexture(path string, transparent bool) (*sdl.Texture, error) {
	surface := sdl.LoadBMP(path)
	if surface == nil {
		return nil, sdlError(path)
	}
	defer sdl.DestroySurface(surface)

	if transparent {
		// The top-left pixel is the transparent colour.
		var r, g, b, a uint8
		if sdlReadSurfacePixel(surface, 0, 0, &r, &g, &b, &a) {
			sdl.SetSurfaceColorKey(surface, true, sdl.MapSurfaceRGB(surface, r, g, b))
		}
	}
	t := sdl.CreateTextureFromSurface(h.renderer, surface)
	if t == nil {
		return nil, sdlError(path)
	}
	return t, nil
}

func frect(r image.Rectangle) *sdl.FRect {
	return &sdl.FRect{
		X: float32(r.Min.X),
		Y: float32(r.Min.Y),
		W: float32(r.Dx()),
		H: float32(r.Dy()),
	}
}

func (h *Host) SetDrawColor(c color.RGBA) {
	sdl.SetRenderDrawColor(h.renderer, c.R, c.G, c.B, c.A)
}

func (h *Host) Clear() {
	sdl.RenderClear(h.renderer)
}

func (h *Host) DrawImage(img render.Image, dst image.Rectangle, angle float64) {
	t, ok := h.textures[img]
	if !ok {
		return
	}
	if dst.Empty() {
		sdl.RenderTexture(h.renderer, t, nil, nil)
		return
	}
	if angle == 0 {
		sdl.RenderTexture(h.renderer, t, nil, frect(dst))
		return
	}
	sdl.RenderTextureRotated(h.renderer, t, nil, frect(dst), angle, nil, sdl.FlipNone)
}

func (h *Host) FillRect(r image.Rectangle) {
	sdl.RenderFillRect(h.renderer, frect(r))
}

func (h *Host) Present() {
	sdl.RenderPresent(h.renderer)
}
