// Package touch records recent finger contacts for replay by the renderer.
package touch

// Capacity is the number of contacts the ring retains.
const Capacity = 64

// Surface identifies which touch surface reported a contact.
type Surface uint8

const (
	SurfaceFront Surface = iota
	SurfaceBack
)

func (s Surface) String() string {
	if s == SurfaceBack {
		return "back"
	}
	return "front"
}

// Phase is the lifecycle stage of a finger contact. The zero value marks a
// slot that has never been written.
type Phase uint8

const (
	PhaseNone Phase = iota
	PhaseDown
	PhaseMotion
	PhaseUp
)

// Event is one contact sample. X and Y are normalized to [0,1].
type Event struct {
	Surface Surface
	Finger  int64
	X, Y    float32
	Phase   Phase
}

// Valid reports whether the event carries a contact phase.
func (e Event) Valid() bool {
	return e.Phase == PhaseDown || e.Phase == PhaseMotion || e.Phase == PhaseUp
}

// Ring is a fixed-capacity buffer of the most recent contacts. Writing past
// capacity overwrites the oldest slot. The ring is never cleared, so readers
// see every retained contact until it is overwritten.
//
// Ring is not safe for concurrent use.
type Ring struct {
	slots [Capacity]Event
	next  uint64 // total number of events ever pushed
}

func slot(n uint64) int {
	return int(n % Capacity)
}

// Push stores e, replacing the oldest entry once the ring is full.
func (r *Ring) Push(e Event) {
	r.slots[slot(r.next)] = e
	r.next++
}

// Len returns the number of slots holding a contact.
func (r *Ring) Len() int {
	if r.next < Capacity {
		return int(r.next)
	}
	return Capacity
}

// Written returns the total number of events pushed since creation.
func (r *Ring) Written() uint64 {
	return r.next
}

// At returns the i-th slot counted from the oldest, for 0 <= i < Capacity.
// Slots that were never written hold the zero Event.
func (r *Ring) At(i int) (Event, bool) {
	if i < 0 || i >= Capacity {
		return Event{}, false
	}
	return r.slots[slot(r.next+uint64(i))], true
}

// Each calls fn for all Capacity slots from oldest to newest, including
// slots that were never written.
func (r *Ring) Each(fn func(Event)) {
	for i := uint64(0); i < Capacity; i++ {
		fn(r.slots[slot(r.next+i)])
	}
}

// Recent returns the retained contacts in arrival order.
func (r *Ring) Recent() []Event {
	out := make([]Event, 0, r.Len())
	r.Each(func(e Event) {
		if e.Valid() {
			out = append(out, e)
		}
	})
	return out
}
