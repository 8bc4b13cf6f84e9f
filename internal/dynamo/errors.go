package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for oscillator simulations.
var (
	// ErrParameterBounds indicates a configuration value outside its valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrUnknownIntegrator indicates an integrator tag that names no scheme.
	ErrUnknownIntegrator = errors.New("dynamo: unknown integrator")

	// ErrNumericalInstability indicates the state became NaN or Inf.
	ErrNumericalInstability = errors.New("dynamo: numerical instability (NaN or Inf detected)")

	// ErrStepLimit indicates the stop condition never held within the step budget.
	ErrStepLimit = errors.New("dynamo: step limit reached before stop condition")

	// ErrContextCanceled indicates the simulation was interrupted.
	ErrContextCanceled = errors.New("dynamo: simulation canceled by context")
)

// SimulationError wraps an error with the step at which it happened.
type SimulationError struct {
	Step     int
	Time     float64
	Snapshot Snapshot
	Wrapped  error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
