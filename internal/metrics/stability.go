package metrics

import (
	"math"

	"github.com/san-kum/oscillator/internal/dynamo"
)

// StabilityThreshold is the default bound on |x| and |v| used by Standard.
const StabilityThreshold = 1e6

// Stability is the fraction of snapshots whose position and velocity stay
// within threshold. A value below one flags a scheme running away.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(snap dynamo.Snapshot, t float64) {
	s.samples++
	for _, val := range []float64{snap.Position.X, snap.Position.Y, snap.Velocity.X, snap.Velocity.Y} {
		if math.IsNaN(val) || math.Abs(val) > s.threshold {
			s.violations++
			break
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
