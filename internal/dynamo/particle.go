package dynamo

import (
	"fmt"
	"math"
)

// Particle owns the mutable kinematic state of a point mass. It knows
// nothing about how that state is advanced.
type Particle struct {
	mass         float64
	position     Vector
	velocity     Vector
	acceleration Vector
}

func NewParticle(mass float64, position, velocity, acceleration Vector) (*Particle, error) {
	if !(mass > 0) || math.IsInf(mass, 0) {
		return nil, fmt.Errorf("%w: particle mass must be positive and finite, got %g", ErrParameterBounds, mass)
	}
	return &Particle{
		mass:         mass,
		position:     position,
		velocity:     velocity,
		acceleration: acceleration,
	}, nil
}

func (p *Particle) Mass() float64        { return p.mass }
func (p *Particle) Position() Vector     { return p.position }
func (p *Particle) Velocity() Vector     { return p.velocity }
func (p *Particle) Acceleration() Vector { return p.acceleration }

func (p *Particle) Kinematics() Kinematics {
	return Kinematics{Position: p.position, Velocity: p.velocity, Acceleration: p.acceleration}
}

// Set replaces position, velocity and acceleration in one go.
func (p *Particle) Set(s Kinematics) {
	p.position = s.Position
	p.velocity = s.Velocity
	p.acceleration = s.Acceleration
}

func (p *Particle) Snapshot() Snapshot {
	return Snapshot{
		Mass:         p.mass,
		Position:     p.position,
		Velocity:     p.velocity,
		Acceleration: p.acceleration,
	}
}
