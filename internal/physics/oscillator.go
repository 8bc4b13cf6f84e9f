package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/oscillator/internal/dynamo"
	"github.com/san-kum/oscillator/internal/integrators"
)

// Params describe one damped oscillator run.
type Params struct {
	Mass          float64
	InitialOffset float64
	Spring        float64
	Damping       float64
	TimeStep      float64
	TotalTime     float64
	Method        integrators.Method
}

// Validate checks the numeric parameters and then the integrator tag, so
// an invalid number is reported the same way whichever scheme is chosen.
func (p Params) Validate() error {
	if err := p.validateNumbers(); err != nil {
		return err
	}
	if !p.Method.Valid() {
		return fmt.Errorf("%w: %s", dynamo.ErrUnknownIntegrator, p.Method)
	}
	return nil
}

func (p Params) validateNumbers() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"mass", p.Mass},
		{"initial offset", p.InitialOffset},
		{"spring constant", p.Spring},
		{"damping coefficient", p.Damping},
		{"time step", p.TimeStep},
		{"total time", p.TotalTime},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be finite, got %g", dynamo.ErrParameterBounds, f.name, f.value)
		}
	}
	if p.Mass <= 0 {
		return fmt.Errorf("%w: mass must be positive, got %g", dynamo.ErrParameterBounds, p.Mass)
	}
	if p.TimeStep <= 0 {
		return fmt.Errorf("%w: time step must be positive, got %g", dynamo.ErrParameterBounds, p.TimeStep)
	}
	if p.TotalTime < p.TimeStep {
		return fmt.Errorf("%w: total time %g is shorter than time step %g", dynamo.ErrParameterBounds, p.TotalTime, p.TimeStep)
	}
	return nil
}

func (p Params) Coefficients() dynamo.Coefficients {
	return dynamo.Coefficients{Mass: p.Mass, Spring: p.Spring, Damping: p.Damping}
}

// InitialVelocity is -γ/(2m). The convention comes from the original
// course setup, which assumes unit amplitude; it is not a velocity in
// general and is kept as is.
func (p Params) InitialVelocity() float64 {
	return -p.Damping / (2 * p.Mass)
}

func (p Params) InitialState() dynamo.Kinematics {
	return dynamo.Kinematics{
		Position: dynamo.Vector{X: p.InitialOffset},
		Velocity: dynamo.Vector{X: p.InitialVelocity()},
	}
}

// DampedOscillator is a single particle on a linear spring with viscous
// damping, advanced by one integrator chosen at construction.
type DampedOscillator struct {
	particle   *dynamo.Particle
	coeffs     dynamo.Coefficients
	integrator dynamo.Integrator
	dt         float64
	totalTime  float64
	steps      int
}

// New validates p and builds the oscillator with a fresh integrator for
// p.Method.
func New(p Params) (*DampedOscillator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	integ, err := integrators.New(p.Method)
	if err != nil {
		return nil, err
	}
	return build(p, integ)
}

// NewWithIntegrator builds the oscillator around a caller-supplied
// integrator. p.Method is ignored. The integrator must be fresh.
func NewWithIntegrator(p Params, integ dynamo.Integrator) (*DampedOscillator, error) {
	if err := p.validateNumbers(); err != nil {
		return nil, err
	}
	if integ == nil {
		return nil, fmt.Errorf("%w: nil integrator", dynamo.ErrUnknownIntegrator)
	}
	return build(p, integ)
}

func build(p Params, integ dynamo.Integrator) (*DampedOscillator, error) {
	s := p.InitialState()
	particle, err := dynamo.NewParticle(p.Mass, s.Position, s.Velocity, s.Acceleration)
	if err != nil {
		return nil, err
	}
	return &DampedOscillator{
		particle:   particle,
		coeffs:     p.Coefficients(),
		integrator: integ,
		dt:         p.TimeStep,
		totalTime:  p.TotalTime,
	}, nil
}

// Advance performs exactly one integrator step and moves the clock by dt.
// A non-finite result is reported as ErrNumericalInstability; the particle
// still holds it so the caller can inspect it.
func (o *DampedOscillator) Advance() error {
	next := o.integrator.Step(o.coeffs, o.particle.Kinematics(), o.dt)
	o.particle.Set(next)
	o.steps++
	if !next.IsValid() {
		return fmt.Errorf("%w: %s produced x=%v v=%v a=%v",
			dynamo.ErrNumericalInstability, o.integrator.Name(), next.Position, next.Velocity, next.Acceleration)
	}
	return nil
}

// Elapsed is steps·dt, which avoids the rounding drift of summing dt.
func (o *DampedOscillator) Elapsed() float64 {
	return float64(o.steps) * o.dt
}

// Done is the canonical stop condition: elapsed time reached total time.
func (o *DampedOscillator) Done() bool {
	return o.Elapsed() >= o.totalTime
}

func (o *DampedOscillator) Output() dynamo.Snapshot           { return o.particle.Snapshot() }
func (o *DampedOscillator) Steps() int                        { return o.steps }
func (o *DampedOscillator) TimeStep() float64                 { return o.dt }
func (o *DampedOscillator) TotalTime() float64                { return o.totalTime }
func (o *DampedOscillator) Coefficients() dynamo.Coefficients { return o.coeffs }
func (o *DampedOscillator) Integrator() string                { return o.integrator.Name() }

// Energy returns the current mechanical energy.
func (o *DampedOscillator) Energy() float64 {
	return o.coeffs.Energy(o.particle.Position(), o.particle.Velocity())
}
