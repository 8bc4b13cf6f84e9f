package sim

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/oscillator/internal/dynamo"
	"github.com/san-kum/oscillator/internal/integrators"
	"github.com/san-kum/oscillator/internal/physics"
)

// Comparison is the outcome of one scheme in a side-by-side run.
type Comparison struct {
	Method integrators.Method
	Result *Result
	Err    error
}

// MetricsFactory builds fresh metrics for one run.
type MetricsFactory func(c dynamo.Coefficients) []dynamo.Metric

// Compare runs the same parameters once per method. Each run owns its own
// oscillator and integrator and is sequential; runs execute concurrently.
// A failing run (for instance a numerical blow-up) is reported in its
// Comparison and does not cancel the others. Invalid parameters fail
// before any run starts.
func Compare(ctx context.Context, p physics.Params, methods []integrators.Method, newMetrics MetricsFactory, opts ...Option) ([]Comparison, error) {
	for _, m := range methods {
		pm := p
		pm.Method = m
		if err := pm.Validate(); err != nil {
			return nil, err
		}
	}

	out := make([]Comparison, len(methods))
	g, ctx := errgroup.WithContext(ctx)

	for i, m := range methods {
		i, m := i, m
		g.Go(func() error {
			pm := p
			pm.Method = m

			osc, err := physics.New(pm)
			if err != nil {
				return err
			}

			eng := New(osc, opts...)
			if newMetrics != nil {
				for _, metric := range newMetrics(pm.Coefficients()) {
					eng.AddMetric(metric)
				}
			}

			res, err := eng.Run(ctx, UntilDone[*physics.DampedOscillator])
			out[i] = Comparison{Method: m, Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
