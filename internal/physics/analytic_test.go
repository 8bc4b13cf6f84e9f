package physics

import (
	"math"
	"testing"

	"github.com/san-kum/oscillator/internal/dynamo"
)

func TestAnalyticRegimes(t *testing.T) {
	tests := []struct {
		name string
		c    dynamo.Coefficients
		want Regime
	}{
		{"undamped", dynamo.Coefficients{Mass: 1, Spring: 1}, Underdamped},
		{"underdamped", dynamo.Coefficients{Mass: 70, Spring: 1e4, Damping: 100}, Underdamped},
		{"critical", dynamo.Coefficients{Mass: 1, Spring: 1, Damping: 2}, CriticallyDamped},
		{"overdamped", dynamo.Coefficients{Mass: 1, Spring: 1, Damping: 5}, Overdamped},
	}

	for _, tt := range tests {
		s := Analytic(tt.c, 1, 0.3)
		if s.Regime() != tt.want {
			t.Errorf("%s: regime %s, want %s", tt.name, s.Regime(), tt.want)
		}
		if got := s.Position(0); math.Abs(got-1) > 1e-12 {
			t.Errorf("%s: x(0) = %v", tt.name, got)
		}
		if got := s.Velocity(0); math.Abs(got-0.3) > 1e-12 {
			t.Errorf("%s: v(0) = %v", tt.name, got)
		}
	}
}

func TestAnalyticSatisfiesEquation(t *testing.T) {
	for _, c := range []dynamo.Coefficients{
		{Mass: 2, Spring: 4, Damping: 1},
		{Mass: 1, Spring: 1, Damping: 2},
		{Mass: 1, Spring: 1, Damping: 5},
	} {
		s := Analytic(c, 1, -0.25)
		const h = 1e-4
		for _, tt := range []float64{0.5, 1, 3} {
			acc := (s.Velocity(tt+h) - s.Velocity(tt-h)) / (2 * h)
			want := -(c.Spring*s.Position(tt) + c.Damping*s.Velocity(tt)) / c.Mass
			if math.Abs(acc-want) > 1e-6 {
				t.Errorf("%+v t=%v: x'' = %v, want %v", c, tt, acc, want)
			}
		}
	}
}

func TestAnalyticUndamped(t *testing.T) {
	s := Analytic(dynamo.Coefficients{Mass: 1, Spring: 1}, 1, 0)
	if s.DampedFrequency() != 1 {
		t.Errorf("ωd = %v, want 1", s.DampedFrequency())
	}
	if got := s.Position(2 * math.Pi); math.Abs(got-1) > 1e-12 {
		t.Errorf("x(2π) = %v, want 1", got)
	}
	if Analytic(dynamo.Coefficients{Mass: 1, Spring: 1, Damping: 5}, 1, 0).DampedFrequency() != 0 {
		t.Error("overdamped solution has no damped frequency")
	}
}
