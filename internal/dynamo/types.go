package dynamo

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vector is an immutable 2-D vector. Arithmetic goes through r2.Add,
// r2.Sub and r2.Scale, all of which return new values.
type Vector = r2.Vec

// Zero is the null vector.
var Zero = Vector{}

// Finite reports whether both components of v are finite.
func Finite(v Vector) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Kinematics is the public state an integrator reads and produces.
type Kinematics struct {
	Position     Vector
	Velocity     Vector
	Acceleration Vector
}

func (k Kinematics) IsValid() bool {
	return Finite(k.Position) && Finite(k.Velocity) && Finite(k.Acceleration)
}

// Coefficients are the constants of the oscillator's equation of motion.
type Coefficients struct {
	Mass    float64
	Spring  float64
	Damping float64
}

// Force returns the net force -(k·x + γ·v) acting on a particle at the
// given position and velocity.
func Force(position, velocity Vector, k, gamma float64) Vector {
	return r2.Scale(-1, r2.Add(r2.Scale(k, position), r2.Scale(gamma, velocity)))
}

func (c Coefficients) Force(position, velocity Vector) Vector {
	return Force(position, velocity, c.Spring, c.Damping)
}

func (c Coefficients) Acceleration(position, velocity Vector) Vector {
	return r2.Scale(1/c.Mass, c.Force(position, velocity))
}

// Energy returns the mechanical energy ½mv² + ½kx².
func (c Coefficients) Energy(position, velocity Vector) float64 {
	return 0.5*c.Mass*r2.Norm2(velocity) + 0.5*c.Spring*r2.Norm2(position)
}

// Snapshot is an immutable copy of a particle taken after a completed step.
type Snapshot struct {
	Mass         float64
	Position     Vector
	Velocity     Vector
	Acceleration Vector
}

func (s Snapshot) Kinematics() Kinematics {
	return Kinematics{Position: s.Position, Velocity: s.Velocity, Acceleration: s.Acceleration}
}

func (s Snapshot) IsValid() bool {
	return s.Kinematics().IsValid()
}

// Integrator advances a particle's kinematic state by one fixed step.
// Implementations keep whatever history their recurrence needs and
// bootstrap it on the first call.
type Integrator interface {
	Name() string
	Step(c Coefficients, s Kinematics, dt float64) Kinematics
}

type Metric interface {
	Name() string
	Observe(s Snapshot, t float64)
	Value() float64
	Reset()
}
