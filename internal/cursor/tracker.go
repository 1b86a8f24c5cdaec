package cursor

import (
	"sync"

	"github.com/folio-dev/folio/internal/motion"
)

// Offscreen is where the cursor sits before the first pointer event.
var Offscreen = motion.Point{X: -100, Y: -100}

// PointerSource delivers raw pointer moves. Subscribe returns an
// unsubscribe func.
type PointerSource interface {
	SubscribePointer(func(motion.Point)) func()
}

// Frame is everything the renderer needs to draw the cursor for one tick.
type Frame struct {
	Position motion.Point `json:"position"`
	Dot      motion.Point `json:"dot"`
	Variant  Variant      `json:"variant"`
	Style    Style        `json:"style"`
}

// Tracker follows the pointer: the dot tracks it exactly and the ring trails
// it through a spring.
type Tracker struct {
	mu       sync.Mutex
	store    *Store
	raw      motion.Point
	follower *motion.Follower
}

// NewTracker returns a tracker parked off-screen that reads its variant
// from store.
func NewTracker(store *Store, trail motion.SpringConfig) *Tracker {
	return &Tracker{
		store:    store,
		raw:      Offscreen,
		follower: motion.NewFollower(trail, Offscreen),
	}
}

// Attach subscribes the tracker to src for as long as the returned func
// has not been called.
func (t *Tracker) Attach(src PointerSource) (detach func()) {
	return src.SubscribePointer(func(p motion.Point) {
		t.Move(p.X, p.Y)
	})
}

// Move records an absolute pointer position.
func (t *Tracker) Move(x, y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.raw = motion.Point{X: x, Y: y}
	t.follower.SetTarget(t.raw)
}

// Raw returns the last recorded pointer position.
func (t *Tracker) Raw() motion.Point {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.raw
}

// Step advances the trailing spring by dt seconds and returns the frame.
func (t *Tracker) Step(dt float64) Frame {
	t.mu.Lock()
	pos := t.follower.Step(dt)
	raw := t.raw
	t.mu.Unlock()

	v := t.store.Get()
	return Frame{
		Position: pos,
		Dot:      raw,
		Variant:  v,
		Style:    StyleFor(v),
	}
}
