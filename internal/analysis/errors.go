package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/oscillator/internal/dynamo"
)

// EnergySeries returns the mechanical energy of each snapshot.
func EnergySeries(c dynamo.Coefficients, snaps []dynamo.Snapshot) []float64 {
	out := make([]float64, len(snaps))
	for i, s := range snaps {
		out[i] = c.Energy(s.Position, s.Velocity)
	}
	return out
}

// ErrorStats summarises the deviation of a trajectory from a reference.
type ErrorStats struct {
	MaxAbs float64
	RMS    float64
	// AtMax is the time of the largest deviation.
	AtMax float64
}

// CompareToReference measures the x position of each snapshot against
// ref evaluated at the matching time. snaps and times must have the same
// length.
func CompareToReference(snaps []dynamo.Snapshot, times []float64, ref func(t float64) float64) ErrorStats {
	n := min(len(snaps), len(times))
	if n == 0 {
		return ErrorStats{}
	}

	diff := make([]float64, n)
	for i := range diff {
		diff[i] = math.Abs(snaps[i].Position.X - ref(times[i]))
	}

	idx := floats.MaxIdx(diff)
	return ErrorStats{
		MaxAbs: diff[idx],
		RMS:    floats.Norm(diff, 2) / math.Sqrt(float64(n)),
		AtMax:  times[idx],
	}
}
