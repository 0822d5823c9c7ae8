package gamepad

import (
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/soar/padscope/internal/layout"
)

// Controller is an open controller owned by a Registry.
type Controller struct {
	ID     InstanceID
	info   Info
	dev    Device
	closed bool
}

func (c *Controller) Info() Info                  { return c.info }
func (c *Controller) Button(b layout.Button) bool { return c.dev.Button(b) }
func (c *Controller) Axis(a layout.Axis) int16    { return c.dev.Axis(a) }

func (c *Controller) SetLED(r, g, b uint8) error {
	return c.dev.SetLED(r, g, b)
}

func (c *Controller) Rumble(low, high uint16, d time.Duration) error {
	return c.dev.Rumble(low, high, d)
}

func (c *Controller) RumbleTriggers(left, right uint16, d time.Duration) error {
	return c.dev.RumbleTriggers(left, right, d)
}

func (c *Controller) close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.dev.Close()
}

// Registry is the ordered set of open controllers and the active one.
// The order is open order. The active controller is always nil or a member.
//
// Registry is not safe for concurrent use; it belongs to the render loop.
type Registry struct {
	opener      Opener
	log         *zap.Logger
	controllers []*Controller
	byID        map[InstanceID]*Controller
	active      *Controller
}

func NewRegistry(opener Opener, log *zap.Logger) *Registry {
	return &Registry{
		opener: opener,
		log:    log,
		byID:   make(map[InstanceID]*Controller),
	}
}

// Add opens the device at index and makes it active. A device that is
// already open, or that fails to resolve or open, leaves the registry as is.
func (r *Registry) Add(index DeviceIndex) {
	id, err := r.opener.InstanceID(index)
	if err != nil {
		r.log.Warn("couldn't get controller id", zap.Int32("index", int32(index)), zap.Error(err))
		return
	}
	if _, exists := r.byID[id]; exists {
		return
	}

	dev, err := r.opener.Open(index)
	if err != nil {
		r.log.Warn("couldn't open controller", zap.Int32("id", int32(id)), zap.Error(err))
		return
	}

	c := &Controller{ID: id, info: dev.Info(), dev: dev}
	r.controllers = append(r.controllers, c)
	r.byID[id] = c
	r.active = c

	r.log.Info("controller opened",
		zap.Int32("id", int32(id)),
		zap.String("name", c.info.Name),
		zap.String("class", c.info.Class.String()),
		zap.Int("count", len(r.controllers)),
	)
}

// Remove closes and forgets the controller with id. If it was active, the
// first remaining controller becomes active.
func (r *Registry) Remove(id InstanceID) {
	c, exists := r.byID[id]
	if !exists {
		return
	}

	if err := c.close(); err != nil {
		r.log.Warn("couldn't close controller", zap.Int32("id", int32(id)), zap.Error(err))
	}
	delete(r.byID, id)
	r.controllers = slices.DeleteFunc(r.controllers, func(e *Controller) bool { return e == c })

	if r.active == c {
		r.active = nil
		if len(r.controllers) > 0 {
			r.active = r.controllers[0]
		}
	}

	r.log.Info("controller removed", zap.Int32("id", int32(id)), zap.String("name", c.info.Name))
}

// SetActive makes the controller with id active. Unknown ids are ignored.
// It reports whether the active controller changed.
func (r *Registry) SetActive(id InstanceID) bool {
	c, exists := r.byID[id]
	if !exists || r.active == c {
		return false
	}
	r.active = c
	r.log.Debug("active controller switched", zap.Int32("id", int32(id)), zap.String("name", c.info.Name))
	return true
}

// Active returns the active controller or nil.
func (r *Registry) Active() *Controller {
	return r.active
}

// Lookup returns the controller with id.
func (r *Registry) Lookup(id InstanceID) (*Controller, bool) {
	c, ok := r.byID[id]
	return c, ok
}

func (r *Registry) Len() int {
	return len(r.controllers)
}

// Controllers returns the open controllers in open order.
func (r *Registry) Controllers() []*Controller {
	return slices.Clone(r.controllers)
}

// CloseAll closes every open controller and empties the registry.
func (r *Registry) CloseAll() {
	for _, c := range r.controllers {
		if err := c.close(); err != nil {
			r.log.Warn("couldn't close controller", zap.Int32("id", int32(c.ID)), zap.Error(err))
		}
	}
	r.controllers = nil
	clear(r.byID)
	r.active = nil
}
