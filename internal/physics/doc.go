// Package physics provides the damped harmonic oscillator system.
//
// A [DampedOscillator] owns one [dynamo.Particle], the force law
// coefficients (m, k, γ), a fixed time step and one integrator chosen at
// construction. Each [DampedOscillator.Advance] performs exactly one
// integrator step and moves the clock forward by dt:
//
//	osc, err := physics.New(physics.Params{
//	    Mass: 1, InitialOffset: 1, Spring: 1, Damping: 0.1,
//	    TimeStep: 0.01, TotalTime: 10, Method: integrators.MethodBeeman,
//	})
//	for !osc.Done() {
//	    if err := osc.Advance(); err != nil {
//	        return err
//	    }
//	}
//
// # Initial Conditions
//
// The particle starts at (x0, 0) with velocity (-γ/2m, 0) and zero
// acceleration. The velocity convention assumes a unit amplitude and is
// kept verbatim from the course setup this lab reproduces.
//
// # Reference Solution
//
// [Analytic] returns the closed-form trajectory for all three damping
// regimes and is used to measure integrator error.
package physics
