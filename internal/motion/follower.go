package motion

// Point is a 2-D coordinate in CSS pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Follower smooths a 2-D target with two independent springs, one per axis.
type Follower struct {
	x *Spring
	y *Spring
}

// NewFollower returns a follower resting at start.
func NewFollower(cfg SpringConfig, start Point) *Follower {
	return &Follower{
		x: NewSpring(cfg, start.X),
		y: NewSpring(cfg, start.Y),
	}
}

// SetTarget moves the point the follower chases.
func (f *Follower) SetTarget(p Point) {
	f.x.SetTarget(p.X)
	f.y.SetTarget(p.Y)
}

// Target returns the point being chased.
func (f *Follower) Target() Point {
	return Point{X: f.x.Target(), Y: f.y.Target()}
}

// Position returns the smoothed position without advancing time.
func (f *Follower) Position() Point {
	return Point{X: f.x.Position(), Y: f.y.Position()}
}

// Step advances both channels by dt seconds.
func (f *Follower) Step(dt float64) Point {
	return Point{X: f.x.Step(dt), Y: f.y.Step(dt)}
}

// Jump teleports both channels to p.
func (f *Follower) Jump(p Point) {
	f.x.Jump(p.X)
	f.y.Jump(p.Y)
}

// Settled reports whether both channels have come to rest.
func (f *Follower) Settled(eps float64) bool {
	return f.x.Settled(eps) && f.y.Settled(eps)
}
