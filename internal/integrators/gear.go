package integrators

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/oscillator/internal/dynamo"
)

const gearOrder = 5

// Gear corrector coefficients for a second-order equation, in scaled
// (dt^j/j!) units.
var gearCorrector = [gearOrder + 1]float64{
	3.0 / 16.0,
	251.0 / 360.0,
	1.0,
	11.0 / 18.0,
	1.0 / 6.0,
	1.0 / 60.0,
}

// gearHistory holds the position and its first five time derivatives.
type gearHistory [gearOrder + 1]dynamo.Vector

// Gear5 is Gear's fifth-order predictor-corrector.
type Gear5 struct {
	history *gearHistory
}

func NewGear5() *Gear5 {
	return &Gear5{}
}

func (g *Gear5) Name() string { return MethodGear5.String() }

func (g *Gear5) Reset() { g.history = nil }

// Step advances the derivative history by one step. Once seeded, the
// history is the source of truth and s is not read again.
func (g *Gear5) Step(c dynamo.Coefficients, s dynamo.Kinematics, dt float64) dynamo.Kinematics {
	if g.history == nil {
		h := seedGear(s)
		g.history = &h
	}
	next, h := stepGear(c, *g.history, dt)
	*g.history = h
	return next
}

// seedGear takes the known derivatives from s and zeroes the rest.
func seedGear(s dynamo.Kinematics) gearHistory {
	return gearHistory{s.Position, s.Velocity, s.Acceleration}
}

func stepGear(c dynamo.Coefficients, h gearHistory, dt float64) (dynamo.Kinematics, gearHistory) {
	// taylor[i] = dt^i / i!
	var taylor [gearOrder + 1]float64
	taylor[0] = 1
	for i := 1; i <= gearOrder; i++ {
		taylor[i] = taylor[i-1] * dt / float64(i)
	}

	var predicted gearHistory
	for j := range predicted {
		for i := 0; j+i <= gearOrder; i++ {
			predicted[j] = r2.Add(predicted[j], r2.Scale(taylor[i], h[j+i]))
		}
	}

	acceleration := c.Acceleration(predicted[0], predicted[1])
	deltaR2 := r2.Scale(taylor[2], r2.Sub(acceleration, predicted[2]))

	var corrected gearHistory
	for j := range corrected {
		corrected[j] = r2.Add(predicted[j], r2.Scale(gearCorrector[j]/taylor[j], deltaR2))
	}

	next := dynamo.Kinematics{
		Position:     corrected[0],
		Velocity:     corrected[1],
		Acceleration: corrected[2],
	}
	return next, corrected
}
