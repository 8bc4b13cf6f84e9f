// Package dynamo provides the core primitives for simulating a damped
// harmonic oscillator.
//
// The package defines the value types and interfaces shared by every other
// package:
//
//   - [Vector]: immutable 2-D vector (gonum r2.Vec)
//   - [Kinematics]: position, velocity and acceleration of a particle
//   - [Particle]: mutable owner of a point mass's kinematic state
//   - [Snapshot]: immutable copy of a particle taken after a step
//   - [Coefficients]: mass, spring constant and damping coefficient
//   - [Force]: the spring plus viscous damping force law
//   - [Integrator]: one-step advance scheme with private history
//   - [Metric]: observer folding snapshots into a scalar
//
// # Example
//
//	c := dynamo.Coefficients{Mass: 1, Spring: 1, Damping: 0.1}
//	p, _ := dynamo.NewParticle(c.Mass, dynamo.Vector{X: 1}, dynamo.Vector{}, dynamo.Vector{})
//	next := integ.Step(c, p.Kinematics(), 0.01)
//	p.Set(next)
//
// # Thread Safety
//
// Particles and integrators are NOT thread-safe. A particle and the
// integrator advancing it are owned by exactly one system for the
// duration of a run. Snapshots are plain values and may be shared freely.
package dynamo
