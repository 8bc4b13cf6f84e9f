package sim

import "github.com/san-kum/oscillator/internal/dynamo"

// System is anything the engine can drive one step at a time.
type System interface {
	Advance() error
	Output() dynamo.Snapshot
	Elapsed() float64
}

// Finisher is a System that knows its own stop condition.
type Finisher interface {
	System
	Done() bool
}

type Observer interface {
	OnStep(frame int, s dynamo.Snapshot, t float64)
}

type ObserverFunc func(frame int, s dynamo.Snapshot, t float64)

func (f ObserverFunc) OnStep(frame int, s dynamo.Snapshot, t float64) { f(frame, s, t) }

// Result is the ordered, append-only record of a run. Snapshots[i] was
// taken at Times[i].
type Result struct {
	Snapshots  []dynamo.Snapshot
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
}

// Positions flattens the x and y position components of every snapshot.
func (r *Result) Positions() (xs, ys []float64) {
	xs = make([]float64, len(r.Snapshots))
	ys = make([]float64, len(r.Snapshots))
	for i, s := range r.Snapshots {
		xs[i] = s.Position.X
		ys[i] = s.Position.Y
	}
	return xs, ys
}

func (r *Result) Final() (dynamo.Snapshot, bool) {
	if len(r.Snapshots) == 0 {
		return dynamo.Snapshot{}, false
	}
	return r.Snapshots[len(r.Snapshots)-1], true
}

// UntilDone stops once the system reports it is done.
func UntilDone[S Finisher](s S) bool { return s.Done() }

// UntilTime stops once elapsed time reaches t.
func UntilTime[S System](t float64) func(S) bool {
	return func(s S) bool { return s.Elapsed() >= t }
}

type options struct {
	recordInitial bool
	maxSteps      int
}

type Option func(*options)

// WithInitialFrame records the pre-simulation state as frame 0.
func WithInitialFrame() Option {
	return func(o *options) { o.recordInitial = true }
}

// WithMaxSteps caps the number of advances. Zero means no cap.
func WithMaxSteps(n int) Option {
	return func(o *options) { o.maxSteps = n }
}
