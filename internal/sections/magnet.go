package sections

import "github.com/folio-dev/folio/internal/motion"

// magnetPull is the fraction of the pointer's offset from the nav centre
// that the nav follows.
const magnetPull = 0.1

// Rect is a client-space bounding box.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Magnet drifts the nav bar toward the pointer while it hovers the bar.
type Magnet struct {
	f *motion.Follower
}

// NewMagnet returns a magnet at rest.
func NewMagnet() *Magnet {
	return &Magnet{f: motion.NewFollower(motion.NavMagnet, motion.Point{})}
}

// Move sets the drift target from a pointer position over bounds.
func (m *Magnet) Move(pointer motion.Point, bounds Rect) {
	m.f.SetTarget(motion.Point{
		X: (pointer.X - bounds.Left - bounds.Width/2) * magnetPull,
		Y: (pointer.Y - bounds.Top - bounds.Height/2) * magnetPull,
	})
}

// Leave recentres the nav.
func (m *Magnet) Leave() { m.f.SetTarget(motion.Point{}) }

// Target returns the undamped offset.
func (m *Magnet) Target() motion.Point { return m.f.Target() }

// Step advances the drift spring.
func (m *Magnet) Step(dt float64) motion.Point { return m.f.Step(dt) }
