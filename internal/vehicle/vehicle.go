// Package vehicle implements the per-frame kinematic model of a single car:
// throttle and drag integrate speed, steering turns the heading with an
// authority that scales with speed, and the heading vector moves the car.
//
// Everything in this package is a pure value transform. Callers own the
// State and supply dt from their own frame clock.
package vehicle

import "math"

// DefaultSteerFloor is the minimum fraction of steering authority a car keeps
// when it is (nearly) stationary.
const DefaultSteerFloor = 0.4

// ReverseFraction bounds reverse speed relative to the forward top speed.
const ReverseFraction = 0.5

// Vec2 is a point or direction in screen space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// State is the kinematic state of one car.
type State struct {
	Position Vec2
	Heading  float64 // Degrees, kept in [0, 360)
	Speed    float64 // Negative when reversing
}

// Forward returns the unit vector the car is facing.
func (s State) Forward() Vec2 {
	rad := s.Heading * math.Pi / 180
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Control is the decoded driver input for one frame.
// Throttle: +1 accelerate, -1 brake, 0 coast. Steer: -1 left, +1 right.
type Control struct {
	Throttle int
	Steer    int
}

// Neutral is the no-input control.
var Neutral = Control{}

// Model advances a State by one frame.
type Model struct {
	// SteerFloor is the lower bound of the speed factor applied to steering.
	SteerFloor float64
}

// NewModel returns a Model using DefaultSteerFloor.
func NewModel() Model {
	return Model{SteerFloor: DefaultSteerFloor}
}

// Step integrates one frame of motion and returns the new state.
// The order of operations is fixed: speed, drag, clamp, heading, position.
func (m Model) Step(s State, p Profile, c Control, dt float64) State {
	accel := 0.0
	switch {
	case c.Throttle > 0:
		accel = p.AccelRate
	case c.Throttle < 0:
		accel = -p.BrakeRate
	}

	s.Speed += accel * dt
	if accel == 0 {
		s.Speed -= s.Speed * p.Drag * dt
	}
	s.Speed = clamp(s.Speed, -ReverseFraction*p.MaxSpeed, p.MaxSpeed)

	steering := float64(sign(c.Steer)) * p.Handling
	s.Heading = wrapDegrees(s.Heading + steering*m.speedFactor(s.Speed, p.MaxSpeed)*dt)

	s.Position = s.Position.Add(s.Forward().Scale(s.Speed * dt))
	return s
}

func (m Model) speedFactor(speed, maxSpeed float64) float64 {
	if maxSpeed <= 0 {
		return m.SteerFloor
	}
	return clamp(math.Abs(speed)/maxSpeed, m.SteerFloor, 1.0)
}

// wrapDegrees normalizes an angle into [0, 360).
func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
		// A tiny negative remainder rounds up to exactly 360.
		if deg >= 360 {
			deg = 0
		}
	}
	return deg
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
