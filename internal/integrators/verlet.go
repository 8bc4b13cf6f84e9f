package integrators

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/oscillator/internal/dynamo"
)

type verletHistory struct {
	prevPosition dynamo.Vector
}

// Verlet is the position Verlet scheme with the velocity recovered from
// the damped recurrence in closed form.
type Verlet struct {
	history *verletHistory
}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Name() string { return MethodVerlet.String() }

// Reset drops the history so the next Step bootstraps again.
func (v *Verlet) Reset() { v.history = nil }

func (v *Verlet) Step(c dynamo.Coefficients, s dynamo.Kinematics, dt float64) dynamo.Kinematics {
	if v.history == nil {
		h := bootstrapVerlet(c, s, dt)
		v.history = &h
	}
	next, h := stepVerlet(c, s, *v.history, dt)
	*v.history = h
	return next
}

func bootstrapVerlet(c dynamo.Coefficients, s dynamo.Kinematics, dt float64) verletHistory {
	prev, _ := backstep(c, s, dt)
	return verletHistory{prevPosition: prev}
}

// stepVerlet advances x by 2x - x₋₁ + F·dt²/m. With damping the force
// depends on the unknown v₊₁, so v₊₁ = (β/α)·x₊₁ - x/(α·dt) with
// α = 1 + γdt/2m and β = 1/dt - k·dt/2m.
func stepVerlet(c dynamo.Coefficients, s dynamo.Kinematics, h verletHistory, dt float64) (dynamo.Kinematics, verletHistory) {
	f := c.Force(s.Position, s.Velocity)
	position := r2.Add(
		r2.Sub(r2.Scale(2, s.Position), h.prevPosition),
		r2.Scale(dt*dt/c.Mass, f),
	)

	doubleMass := 2 * c.Mass
	alpha := 1 + c.Damping*dt/doubleMass
	beta := 1/dt - c.Spring*dt/doubleMass
	velocity := r2.Sub(
		r2.Scale(beta/alpha, position),
		r2.Scale(1/(alpha*dt), s.Position),
	)

	next := dynamo.Kinematics{
		Position:     position,
		Velocity:     velocity,
		Acceleration: c.Acceleration(position, velocity),
	}
	return next, verletHistory{prevPosition: s.Position}
}
