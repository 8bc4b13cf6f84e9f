package integrators

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/oscillator/internal/dynamo"
)

type beemanHistory struct {
	prevAcceleration dynamo.Vector
}

// Beeman is Beeman's scheme in predictor-corrector form for
// velocity-dependent forces.
type Beeman struct {
	history *beemanHistory
}

func NewBeeman() *Beeman {
	return &Beeman{}
}

func (b *Beeman) Name() string { return MethodBeeman.String() }

func (b *Beeman) Reset() { b.history = nil }

func (b *Beeman) Step(c dynamo.Coefficients, s dynamo.Kinematics, dt float64) dynamo.Kinematics {
	if b.history == nil {
		h := bootstrapBeeman(c, s, dt)
		b.history = &h
	}
	next, h := stepBeeman(c, s, *b.history, dt)
	*b.history = h
	return next
}

func bootstrapBeeman(c dynamo.Coefficients, s dynamo.Kinematics, dt float64) beemanHistory {
	x, v := backstep(c, s, dt)
	return beemanHistory{prevAcceleration: c.Acceleration(x, v)}
}

func stepBeeman(c dynamo.Coefficients, s dynamo.Kinematics, h beemanHistory, dt float64) (dynamo.Kinematics, beemanHistory) {
	x, v, a := s.Position, s.Velocity, s.Acceleration
	prev := h.prevAcceleration
	dt2 := dt * dt

	position := sum(
		x,
		r2.Scale(dt, v),
		r2.Scale(2.0/3.0*dt2, a),
		r2.Scale(-1.0/6.0*dt2, prev),
	)

	predicted := sum(
		v,
		r2.Scale(3.0/2.0*dt, a),
		r2.Scale(-1.0/2.0*dt, prev),
	)

	acceleration := c.Acceleration(position, predicted)

	velocity := sum(
		v,
		r2.Scale(1.0/3.0*dt, acceleration),
		r2.Scale(5.0/6.0*dt, a),
		r2.Scale(-1.0/6.0*dt, prev),
	)

	next := dynamo.Kinematics{
		Position:     position,
		Velocity:     velocity,
		Acceleration: acceleration,
	}
	return next, beemanHistory{prevAcceleration: a}
}

func sum(vs ...dynamo.Vector) dynamo.Vector {
	var total dynamo.Vector
	for _, v := range vs {
		total = r2.Add(total, v)
	}
	return total
}
