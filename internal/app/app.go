// Package app owns the per-session state and runs the tick loop.
package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/soar/padscope/internal/gamepad"
	"github.com/soar/padscope/internal/render"
	"github.com/soar/padscope/internal/sensor"
	"github.com/soar/padscope/internal/touch"
)

// Platform is the host input and drawing subsystem.
type Platform interface {
	gamepad.Host
	render.Canvas
	// Attached returns the controllers present at startup.
	Attached() []gamepad.DeviceIndex
	// Delay sleeps between ticks.
	Delay(d time.Duration)
}

type Options struct {
	FrameDelay time.Duration
	Haptics    bool
	// InboxSize bounds events posted from other goroutines.
	InboxSize int
	// FrameBuffer is the capacity of the Frames channel. Zero disables
	// frame publishing.
	FrameBuffer int
}

// App is the application context. Everything it holds belongs to the
// goroutine calling Run or Tick.
type App struct {
	log        *zap.Logger
	platform   Platform
	opts       Options
	touches    touch.Ring
	sensors    sensor.Aggregator
	registry   *gamepad.Registry
	dispatcher *gamepad.Dispatcher
	compositor *render.Compositor
	inbox      *gamepad.Inbox
	frames     chan gamepad.FrameState
	last       gamepad.FrameState
	ticks      uint64
}

func New(platform Platform, log *zap.Logger, opts Options) *App {
	if opts.InboxSize <= 0 {
		opts.InboxSize = 16
	}
	a := &App{
		log:      log,
		platform: platform,
		opts:     opts,
		inbox:    gamepad.NewInbox(opts.InboxSize),
	}
	a.registry = gamepad.NewRegistry(platform, log.Named("registry"))
	a.dispatcher = gamepad.NewDispatcher(a.registry, &a.touches, &a.sensors, log.Named("dispatch"))
	a.compositor = render.NewCompositor(platform,
		render.WithHaptics(opts.Haptics),
		render.WithLogger(log.Named("render")),
	)
	if opts.FrameBuffer > 0 {
		a.frames = make(chan gamepad.FrameState, opts.FrameBuffer)
	}
	return a
}

// Inbox accepts events from other goroutines.
func (a *App) Inbox() *gamepad.Inbox {
	return a.inbox
}

// Frames yields published frame states. It is nil when publishing is off.
func (a *App) Frames() <-chan gamepad.FrameState {
	return a.frames
}

func (a *App) Registry() *gamepad.Registry {
	return a.registry
}

// LastFrame returns the state of the most recent frame.
func (a *App) LastFrame() gamepad.FrameState {
	return a.last
}

func (a *App) Done() bool {
	return a.dispatcher.Done()
}

// Start opens the controllers attached before the loop began. The last one
// opened becomes active.
func (a *App) Start() {
	attached := a.platform.Attached()
	for _, idx := range attached {
		a.registry.Add(idx)
	}
	a.log.Info("controllers attached", zap.Int("count", a.registry.Len()), zap.Int("devices", len(attached)))
}

// Tick drains pending events, renders one frame and reports whether the
// loop should stop. A quit seen during the tick still gets its frame.
func (a *App) Tick() bool {
	a.dispatcher.Drain(a.platform, a.inbox)

	a.last = a.compositor.Frame(render.Scene{
		Active:      a.registry.Active(),
		Controllers: a.registry.Len(),
		Touches:     &a.touches,
		Sensors:     &a.sensors,
	})
	a.ticks++
	a.publish(a.last)

	return a.dispatcher.Done()
}

func (a *App) publish(s gamepad.FrameState) {
	if a.frames == nil {
		return
	}
	select {
	case a.frames <- s:
	default:
		// Drop if the consumer is behind; the render loop never blocks.
	}
}

// Run ticks until a quit event arrives or ctx is done, then closes every
// controller and the Frames channel. Cancellation is only observed between
// ticks. Run must be called once.
func (a *App) Run(ctx context.Context) error {
	defer a.registry.CloseAll()
	if a.frames != nil {
		defer close(a.frames)
	}

	a.Start()
	for {
		if ctx.Err() != nil {
			a.log.Info("context done, stopping", zap.Uint64("ticks", a.ticks))
			return nil
		}
		if a.Tick() {
			a.log.Info("stopping", zap.Uint64("ticks", a.ticks))
			return nil
		}
		a.platform.Delay(a.opts.FrameDelay)
	}
}
