package metrics

import (
	"math"

	"github.com/san-kum/oscillator/internal/dynamo"
)

// Energy is the mean mechanical energy over the observed snapshots.
type Energy struct {
	name        string
	coeffs      dynamo.Coefficients
	samples     int
	totalEnergy float64
}

func NewEnergy(c dynamo.Coefficients) *Energy {
	return &Energy{
		name:   "energy",
		coeffs: c,
	}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(s dynamo.Snapshot, t float64) {
	e.totalEnergy += e.coeffs.Energy(s.Position, s.Velocity)
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.totalEnergy / float64(e.samples)
}

func (e *Energy) Reset() {
	e.totalEnergy = 0
	e.samples = 0
}

// EnergyDrift is the largest relative deviation from the first observed
// energy. Only meaningful without damping.
type EnergyDrift struct {
	name          string
	coeffs        dynamo.Coefficients
	initialEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift(c dynamo.Coefficients) *EnergyDrift {
	return &EnergyDrift{
		name:   "energy_drift",
		coeffs: c,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(s dynamo.Snapshot, t float64) {
	energy := e.coeffs.Energy(s.Position, s.Velocity)

	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}

type FinalEnergy struct {
	name   string
	coeffs dynamo.Coefficients
	last   float64
}

func NewFinalEnergy(c dynamo.Coefficients) *FinalEnergy {
	return &FinalEnergy{
		name:   "final_energy",
		coeffs: c,
	}
}

func (f *FinalEnergy) Name() string { return f.name }

func (f *FinalEnergy) Observe(s dynamo.Snapshot, t float64) {
	f.last = f.coeffs.Energy(s.Position, s.Velocity)
}

func (f *FinalEnergy) Value() float64 { return f.last }
func (f *FinalEnergy) Reset()         { f.last = 0 }

// Standard returns the metrics reported for every run.
func Standard(c dynamo.Coefficients) []dynamo.Metric {
	return []dynamo.Metric{
		NewEnergy(c),
		NewEnergyDrift(c),
		NewFinalEnergy(c),
		NewStability(StabilityThreshold),
	}
}
