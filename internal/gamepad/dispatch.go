package gamepad

import (
	"go.uber.org/zap"

	"github.com/soar/padscope/internal/sensor"
	"github.com/soar/padscope/internal/touch"
)

// Dispatcher folds input events into the registry, the touch ring and the
// sensor aggregator. It belongs to the render loop.
type Dispatcher struct {
	registry *Registry
	touches  *touch.Ring
	sensors  *sensor.Aggregator
	log      *zap.Logger
	done     bool
}

func NewDispatcher(registry *Registry, touches *touch.Ring, sensors *sensor.Aggregator, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		touches:  touches,
		sensors:  sensors,
		log:      log,
	}
}

// Drain dispatches every pending event of each source in turn, in arrival
// order, and returns the number of events handled.
func (d *Dispatcher) Drain(sources ...EventSource) int {
	n := 0
	for _, src := range sources {
		for {
			e, ok := src.Poll()
			if !ok {
				break
			}
			d.Dispatch(e)
			n++
		}
	}
	return n
}

// Dispatch handles a single event.
func (d *Dispatcher) Dispatch(e Event) {
	switch e.Kind {
	case EventDeviceAdded:
		d.registry.Add(e.Index)

	case EventDeviceRemoved:
		d.registry.Remove(e.Which)

	case EventAxisMotion:
		// Small deflections are idle jitter and must not steal focus.
		if e.Value <= -FocusThreshold || e.Value >= FocusThreshold {
			d.registry.SetActive(e.Which)
		}

	case EventButtonDown:
		d.registry.SetActive(e.Which)

	case EventButtonUp:

	case EventTouch:
		d.touches.Push(e.Touch)

	case EventSensor:
		if !d.sensors.Update(e.Sensor, e.Data) {
			d.log.Debug("ignoring sensor update", zap.Stringer("kind", e.Sensor))
		}

	case EventSelect:
		if _, ok := d.registry.Lookup(e.Which); !ok {
			d.log.Info("select request for unknown controller", zap.Int32("id", int32(e.Which)))
			return
		}
		d.registry.SetActive(e.Which)

	case EventQuit:
		if !d.done {
			d.log.Info("quit requested")
		}
		d.done = true

	default:
		d.log.Debug("ignoring event", zap.Stringer("kind", e.Kind))
	}
}

// Done reports whether a quit event has been seen.
func (d *Dispatcher) Done() bool {
	return d.done
}
