package physics

import (
	"math"

	"github.com/san-kum/oscillator/internal/dynamo"
)

type Regime uint8

const (
	Underdamped Regime = iota + 1
	CriticallyDamped
	Overdamped
)

func (r Regime) String() string {
	switch r {
	case Underdamped:
		return "underdamped"
	case CriticallyDamped:
		return "critically damped"
	case Overdamped:
		return "overdamped"
	default:
		return "unknown"
	}
}

// Solution is the closed-form trajectory of x'' = -(k·x + γ·x')/m.
type Solution struct {
	regime Regime
	lambda float64 // γ/2m
	root   float64 // ωd when underdamped, sqrt(λ² - k/m) when overdamped

	// coefficients of the regime's general solution
	a, b float64
}

// Analytic solves the initial value problem for x(0)=x0, x'(0)=v0.
func Analytic(c dynamo.Coefficients, x0, v0 float64) Solution {
	lambda := c.Damping / (2 * c.Mass)
	stiffness := c.Spring / c.Mass
	disc := lambda*lambda - stiffness

	s := Solution{lambda: lambda}
	scale := math.Max(lambda*lambda, math.Abs(stiffness))

	switch {
	case math.Abs(disc) <= 1e-12*scale:
		s.regime = CriticallyDamped
		s.a = x0
		s.b = v0 + lambda*x0
	case disc < 0:
		s.regime = Underdamped
		s.root = math.Sqrt(-disc)
		s.a = x0
		s.b = (v0 + lambda*x0) / s.root
	default:
		s.regime = Overdamped
		s.root = math.Sqrt(disc)
		r1, r2 := -lambda+s.root, -lambda-s.root
		s.a = (v0 - r2*x0) / (r1 - r2)
		s.b = x0 - s.a
	}
	return s
}

func (s Solution) Regime() Regime { return s.regime }

// DampedFrequency is the angular frequency ωd of an underdamped solution
// and zero otherwise.
func (s Solution) DampedFrequency() float64 {
	if s.regime != Underdamped {
		return 0
	}
	return s.root
}

func (s Solution) Position(t float64) float64 {
	switch s.regime {
	case Underdamped:
		wt := s.root * t
		return math.Exp(-s.lambda*t) * (s.a*math.Cos(wt) + s.b*math.Sin(wt))
	case CriticallyDamped:
		return math.Exp(-s.lambda*t) * (s.a + s.b*t)
	default:
		r1, r2 := -s.lambda+s.root, -s.lambda-s.root
		return s.a*math.Exp(r1*t) + s.b*math.Exp(r2*t)
	}
}

func (s Solution) Velocity(t float64) float64 {
	switch s.regime {
	case Underdamped:
		wt := s.root * t
		cos, sin := math.Cos(wt), math.Sin(wt)
		return math.Exp(-s.lambda*t) *
			((s.root*s.b-s.lambda*s.a)*cos - (s.lambda*s.b+s.root*s.a)*sin)
	case CriticallyDamped:
		return math.Exp(-s.lambda*t) * (s.b - s.lambda*(s.a+s.b*t))
	default:
		r1, r2 := -s.lambda+s.root, -s.lambda-s.root
		return s.a*r1*math.Exp(r1*t) + s.b*r2*math.Exp(r2*t)
	}
}
