package metrics

import (
	"math"

	"github.com/san-kum/oscillator/internal/dynamo"
)

// ReferenceError is the largest |x - ref(t)| seen over the run.
type ReferenceError struct {
	name  string
	ref   func(t float64) float64
	worst float64
}

func NewReferenceError(ref func(t float64) float64) *ReferenceError {
	return &ReferenceError{
		name: "reference_error",
		ref:  ref,
	}
}

func (r *ReferenceError) Name() string { return r.name }

func (r *ReferenceError) Observe(s dynamo.Snapshot, t float64) {
	r.worst = math.Max(r.worst, math.Abs(s.Position.X-r.ref(t)))
}

func (r *ReferenceError) Value() float64 { return r.worst }
func (r *ReferenceError) Reset()         { r.worst = 0 }
