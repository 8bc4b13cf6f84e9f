package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/oscillator/internal/dynamo"
	"github.com/san-kum/oscillator/internal/metrics"
	"github.com/san-kum/oscillator/internal/physics"
	"github.com/san-kum/oscillator/internal/sim"
)

// Experiment is one oscillator run with the standard metrics attached.
type Experiment struct {
	params physics.Params
	opts   []sim.Option
	engine *sim.Engine[*physics.DampedOscillator]
}

func New(p physics.Params, opts ...sim.Option) *Experiment {
	return &Experiment{params: p, opts: opts}
}

// Setup validates the parameters and builds the oscillator and engine.
// Extra metrics are added after the standard ones.
func (e *Experiment) Setup(extra ...dynamo.Metric) error {
	osc, err := physics.New(e.params)
	if err != nil {
		return err
	}

	e.engine = sim.New(osc, e.opts...)
	for _, m := range metrics.Standard(e.params.Coefficients()) {
		e.engine.AddMetric(m)
	}
	for _, m := range extra {
		e.engine.AddMetric(m)
	}
	return nil
}

// Run advances until the oscillator reaches its total time.
func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.engine == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.engine.Run(ctx, sim.UntilDone[*physics.DampedOscillator])
}

func (e *Experiment) Params() physics.Params { return e.params }

// Engine returns the underlying engine for adding observers.
func (e *Experiment) Engine() *sim.Engine[*physics.DampedOscillator] {
	return e.engine
}
