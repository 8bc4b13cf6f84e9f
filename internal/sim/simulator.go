package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/oscillator/internal/dynamo"
)

// Engine drives a System until a stop predicate holds and records a
// snapshot after every advance. Steps are strictly sequential.
type Engine[S System] struct {
	sys       S
	opts      options
	metrics   []dynamo.Metric
	observers []Observer
}

func New[S System](sys S, opts ...Option) *Engine[S] {
	e := &Engine[S]{
		sys:       sys,
		metrics:   make([]dynamo.Metric, 0),
		observers: make([]Observer, 0),
	}
	for _, opt := range opts {
		opt(&e.opts)
	}
	return e
}

func (e *Engine[S]) AddMetric(m dynamo.Metric) { e.metrics = append(e.metrics, m) }
func (e *Engine[S]) AddObserver(o Observer)    { e.observers = append(e.observers, o) }
func (e *Engine[S]) System() S                 { return e.sys }

// Run advances the system at least once and then until stop holds. The
// predicate is evaluated between steps only. On failure the partial
// result is returned along with a *dynamo.SimulationError.
func (e *Engine[S]) Run(ctx context.Context, stop func(S) bool) (*Result, error) {
	result := &Result{
		Snapshots: make([]dynamo.Snapshot, 0),
		Times:     make([]float64, 0),
		Metrics:   make(map[string]float64),
	}

	for _, m := range e.metrics {
		m.Reset()
	}

	if e.opts.recordInitial {
		e.record(result, e.sys.Output(), e.sys.Elapsed())
	}

	for {
		select {
		case <-ctx.Done():
			e.finish(result)
			return result, fmt.Errorf("%w: %w", dynamo.ErrContextCanceled, ctx.Err())
		default:
		}

		if e.opts.maxSteps > 0 && result.StepsTaken >= e.opts.maxSteps {
			e.finish(result)
			return result, e.fail(result, dynamo.ErrStepLimit)
		}

		if err := e.sys.Advance(); err != nil {
			result.StepsTaken++
			e.finish(result)
			return result, e.fail(result, err)
		}
		result.StepsTaken++

		e.record(result, e.sys.Output(), e.sys.Elapsed())

		if stop(e.sys) {
			break
		}
	}

	e.finish(result)
	return result, nil
}

func (e *Engine[S]) record(result *Result, s dynamo.Snapshot, t float64) {
	frame := len(result.Snapshots)
	result.Snapshots = append(result.Snapshots, s)
	result.Times = append(result.Times, t)

	for _, m := range e.metrics {
		m.Observe(s, t)
	}
	for _, obs := range e.observers {
		obs.OnStep(frame, s, t)
	}
}

func (e *Engine[S]) finish(result *Result) {
	for _, m := range e.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func (e *Engine[S]) fail(result *Result, err error) error {
	return &dynamo.SimulationError{
		Step:     result.StepsTaken,
		Time:     e.sys.Elapsed(),
		Snapshot: e.sys.Output(),
		Wrapped:  err,
	}
}
