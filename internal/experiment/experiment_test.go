package experiment

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/oscillator/internal/dynamo"
	"github.com/san-kum/oscillator/internal/integrators"
	"github.com/san-kum/oscillator/internal/physics"
	"github.com/san-kum/oscillator/internal/sim"
)

func TestExperimentRun(t *testing.T) {
	p := physics.Params{
		Mass: 1, InitialOffset: 1, Spring: 1,
		TimeStep: 0.01, TotalTime: 1, Method: integrators.MethodBeeman,
	}
	exp := New(p, sim.WithInitialFrame())

	if _, err := exp.Run(context.Background()); err == nil {
		t.Error("expected error before setup")
	}
	if err := exp.Setup(); err != nil {
		t.Fatalf("setup: %v", err)
	}

	var frames int
	exp.Engine().AddObserver(sim.ObserverFunc(func(int, dynamo.Snapshot, float64) { frames++ }))

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(result.Snapshots) != 101 || frames != 101 {
		t.Errorf("expected 101 frames, got %d snapshots and %d observed", len(result.Snapshots), frames)
	}
	for _, name := range []string{"energy", "energy_drift", "final_energy", "stability"} {
		if _, ok := result.Metrics[name]; !ok {
			t.Errorf("missing metric %s", name)
		}
	}
	if result.Metrics["energy_drift"] > 1e-3 {
		t.Errorf("undamped drift too large: %v", result.Metrics["energy_drift"])
	}
}

func TestExperimentInvalid(t *testing.T) {
	exp := New(physics.Params{Mass: -1, TimeStep: 0.1, TotalTime: 1, Method: integrators.MethodVerlet})
	if err := exp.Setup(); !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}
}
