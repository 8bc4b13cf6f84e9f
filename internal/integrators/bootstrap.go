package integrators

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/oscillator/internal/dynamo"
)

// backstep extrapolates one step into the past with a single backward
// Euler step: v₋₁ = v₀ - F₀·dt/m, x₋₁ = x₀ - v₋₁·dt + F₀·dt²/2m.
func backstep(c dynamo.Coefficients, s dynamo.Kinematics, dt float64) (position, velocity dynamo.Vector) {
	f := c.Force(s.Position, s.Velocity)
	velocity = r2.Sub(s.Velocity, r2.Scale(dt/c.Mass, f))
	position = r2.Add(
		r2.Sub(s.Position, r2.Scale(dt, velocity)),
		r2.Scale(dt*dt/(2*c.Mass), f),
	)
	return position, velocity
}
