package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringConfig describes a damped spring in the stiffness/damping/mass form
// used by CSS-style animation libraries.
type SpringConfig struct {
	Stiffness float64 `json:"stiffness" yaml:"stiffness"`
	Damping   float64 `json:"damping" yaml:"damping"`
	Mass      float64 `json:"mass,omitempty" yaml:"mass,omitempty"`
}

// Preset springs.
var (
	CursorTrail = SpringConfig{Stiffness: 400, Damping: 25, Mass: 1}
	CursorMorph = SpringConfig{Stiffness: 500, Damping: 28, Mass: 1}
	NavMagnet   = SpringConfig{Stiffness: 300, Damping: 30, Mass: 1}
)

// AngularFrequency returns sqrt(k/m).
func (c SpringConfig) AngularFrequency() float64 {
	return math.Sqrt(c.Stiffness / c.mass())
}

// DampingRatio returns c / (2*sqrt(k*m)). A ratio of 1 is critically damped.
func (c SpringConfig) DampingRatio() float64 {
	return c.Damping / (2 * math.Sqrt(c.Stiffness*c.mass()))
}

func (c SpringConfig) mass() float64 {
	if c.Mass <= 0 {
		return 1
	}
	return c.Mass
}

// Spring is a single scalar channel chasing a target.
type Spring struct {
	cfg    SpringConfig
	pos    float64
	vel    float64
	target float64

	// harmonica precomputes coefficients per time step; cache the last one.
	dt     float64
	engine harmonica.Spring
}

// NewSpring returns a spring at rest at pos.
func NewSpring(cfg SpringConfig, pos float64) *Spring {
	return &Spring{cfg: cfg, pos: pos, target: pos}
}

// SetTarget moves the equilibrium point.
func (s *Spring) SetTarget(v float64) { s.target = v }

// Target returns the current equilibrium point.
func (s *Spring) Target() float64 { return s.target }

// Position returns the current simulated position.
func (s *Spring) Position() float64 { return s.pos }

// Velocity returns the current simulated velocity.
func (s *Spring) Velocity() float64 { return s.vel }

// Jump places the spring at v with zero velocity.
func (s *Spring) Jump(v float64) {
	s.pos, s.vel, s.target = v, 0, v
}

// Step advances the simulation by dt seconds and returns the new position.
// Non-positive steps are ignored.
func (s *Spring) Step(dt float64) float64 {
	if dt <= 0 {
		return s.pos
	}
	if dt != s.dt {
		s.dt = dt
		s.engine = harmonica.NewSpring(dt, s.cfg.AngularFrequency(), s.cfg.DampingRatio())
	}
	s.pos, s.vel = s.engine.Update(s.pos, s.vel, s.target)
	return s.pos
}

// Settled reports whether the spring is within eps of its target and
// practically at rest.
func (s *Spring) Settled(eps float64) bool {
	return math.Abs(s.pos-s.target) < eps && math.Abs(s.vel) < eps
}
