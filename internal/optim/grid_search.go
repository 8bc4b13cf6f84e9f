package optim

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/san-kum/oscillator/internal/dynamo"
	"github.com/san-kum/oscillator/internal/experiment"
	"github.com/san-kum/oscillator/internal/integrators"
	"github.com/san-kum/oscillator/internal/metrics"
	"github.com/san-kum/oscillator/internal/physics"
)

// SweepPoint is the outcome of one (method, time step) run.
type SweepPoint struct {
	Method   integrators.Method
	TimeStep float64
	MaxError float64
	Drift    float64
	Err      error
}

// StepSweep runs every method over a grid of time steps and measures the
// position error against the closed-form solution.
type StepSweep struct {
	steps []float64
}

// NewStepSweep sorts the steps from largest to smallest.
func NewStepSweep(steps []float64) *StepSweep {
	s := append([]float64(nil), steps...)
	sort.Sort(sort.Reverse(sort.Float64Slice(s)))
	return &StepSweep{steps: s}
}

func (g *StepSweep) Steps() []float64 { return g.steps }

// Run sweeps p over the grid. Runs that blow up are recorded with their
// error and an infinite MaxError; invalid parameters abort the sweep.
func (g *StepSweep) Run(ctx context.Context, p physics.Params, methods []integrators.Method) ([]SweepPoint, error) {
	ref := physics.Analytic(p.Coefficients(), p.InitialOffset, p.InitialVelocity())
	points := make([]SweepPoint, 0, len(methods)*len(g.steps))

	for _, m := range methods {
		for _, dt := range g.steps {
			pm := p
			pm.Method = m
			pm.TimeStep = dt

			refErr := metrics.NewReferenceError(ref.Position)
			exp := experiment.New(pm)
			if err := exp.Setup(refErr); err != nil {
				return nil, err
			}

			result, err := exp.Run(ctx)
			if errors.Is(err, dynamo.ErrContextCanceled) {
				return points, err
			}

			pt := SweepPoint{
				Method:   m,
				TimeStep: dt,
				MaxError: result.Metrics[refErr.Name()],
				Drift:    result.Metrics["energy_drift"],
				Err:      err,
			}
			if err != nil {
				pt.MaxError = math.Inf(1)
			}
			points = append(points, pt)
		}
	}
	return points, nil
}

// ObservedOrder estimates the convergence order of method from successive
// points as log(e1/e2)/log(dt1/dt2). Pairs with a failed or zero error
// are skipped.
func ObservedOrder(points []SweepPoint, method integrators.Method) []float64 {
	var orders []float64
	var prev *SweepPoint
	for i := range points {
		pt := &points[i]
		if pt.Method != method {
			continue
		}
		if prev != nil && usable(*prev) && usable(*pt) {
			orders = append(orders, math.Log(prev.MaxError/pt.MaxError)/math.Log(prev.TimeStep/pt.TimeStep))
		}
		prev = pt
	}
	return orders
}

// LargestStep returns the largest time step whose error stays within tol
// for method, and false when none does.
func LargestStep(points []SweepPoint, method integrators.Method, tol float64) (float64, bool) {
	best, found := 0.0, false
	for _, pt := range points {
		if pt.Method == method && pt.Err == nil && pt.MaxError <= tol && pt.TimeStep > best {
			best, found = pt.TimeStep, true
		}
	}
	return best, found
}

func usable(pt SweepPoint) bool {
	return pt.Err == nil && pt.MaxError > 0 && !math.IsInf(pt.MaxError, 0)
}
