// Package sdlhost runs padscope on top of SDL3. It is the only package
// that talks to SDL and must be used from a single locked OS thread.
package sdlhost

import (
	"time"

	"github.com/jupiterrider/purego-sdl3/sdl"
	"go.uber.org/zap"

	"github.com/soar/padscope/internal/app"
	"github.com/soar/padscope/internal/layout"
	"github.com/soar/padscope/internal/render"
	"github.com/soar/padscope/internal/sdlhost/translate"
)

type Options struct {
	Title  string
	Width  int
	Height int
	// AssetsDir holds controllermap.bmp, button.bmp and axis.bmp.
	AssetsDir string
}

// Host implements app.Platform.
type Host struct {
	log      *zap.Logger
	window   *sdl.Window
	renderer *sdl.Renderer
	textures map[render.Image]*sdl.Texture
	sensors  []*sensorHandle
	tr       *translate.Translator
}

var _ app.Platform = (*Host)(nil)

// Open initialises SDL, creates the window and loads the glyph textures.
// Failures are reported as app.StageError.
func Open(opts Options, log *zap.Logger) (*Host, error) {
	sdl.SetHint("SDL_JOYSTICK_ALLOW_BACKGROUND_EVENTS", "1")
	// Touch events must not be duplicated as mouse events, and mouse
	// clicks count as touches for testing on a desktop.
	sdl.SetHint("SDL_TOUCH_MOUSE_EVENTS", "0")
	sdl.SetHint("SDL_MOUSE_TOUCH_EVENTS", "1")

	if err := bind(); err != nil {
		return nil, app.Fail(app.StageInit, err)
	}
	if !sdl.Init(sdl.InitVideo | sdl.InitGamepad | sdl.InitJoystick | sdl.InitSensor) {
		return nil, app.Fail(app.StageInit, sdlError("init"))
	}
	h := &Host{
		log:      log,
		textures: make(map[render.Image]*sdl.Texture),
		tr:       translate.New(),
	}

	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = layout.ScreenWidth, layout.ScreenHeight
	}
	h.window = sdl.CreateWindow(opts.Title, int32(opts.Width), int32(opts.Height), 0)
	if h.window == nil {
		err := sdlError("create window")
		h.Close()
		return nil, app.Fail(app.StageWindow, err)
	}
	h.renderer = sdl.CreateRenderer(h.window, "")
	if h.renderer == nil {
		err := sdlError("create renderer")
		h.Close()
		return nil, app.Fail(app.StageWindow, err)
	}
	sdl.SetRenderLogicalPresentation(h.renderer, layout.ScreenWidth, layout.ScreenHeight, sdl.LogicalPresentationLetterbox)
	sdl.SetRenderDrawColor(h.renderer, 0x00, 0x00, 0x00, 0xFF)
	sdl.RenderClear(h.renderer)
	sdl.RenderPresent(h.renderer)

	if err := h.loadTextures(opts.AssetsDir); err != nil {
		h.Close()
		return nil, app.Fail(app.StageAssets, err)
	}

	h.openSensors()
	log.Info("sdl ready",
		zap.String("title", opts.Title),
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height),
		zap.Int("sensors", len(h.sensors)),
	)
	return h, nil
}

// Delay sleeps the calling thread.
func (h *Host) Delay(d time.Duration) {
	if d <= 0 {
		return
	}
	sdl.DelayNS(uint64(d.Nanoseconds()))
}

// Close releases every SDL resource and shuts SDL down. Gamepads must be
// closed by their owner first.
func (h *Host) Close() {
	for _, s := range h.sensors {
		sdlCloseSensor(s)
	}
	h.sensors = nil
	for img, t := range h.textures {
		sdl.DestroyTexture(t)
		delete(h.textures, img)
	}
	if h.renderer != nil {
		sdl.DestroyRenderer(h.renderer)
		h.renderer = nil
	}
	if h.window != nil {
		sdl.DestroyWindow(h.window)
		h.window = nil
	}
	sdl.Quit()
}
