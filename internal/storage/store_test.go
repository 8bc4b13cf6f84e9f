package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/oscillator/internal/dynamo"
	"github.com/san-kum/oscillator/internal/integrators"
	"github.com/san-kum/oscillator/internal/physics"
	"github.com/san-kum/oscillator/internal/sim"
)

var testParams = physics.Params{
	Mass: 2, InitialOffset: 1, Spring: 4, Damping: 1,
	TimeStep: 0.01, TotalTime: 0.02, Method: integrators.MethodGear5,
}

func testResult() *sim.Result {
	return &sim.Result{
		Snapshots: []dynamo.Snapshot{
			{Mass: 2, Position: dynamo.Vector{X: 1.0}, Velocity: dynamo.Vector{X: -0.25}},
			{Mass: 2, Position: dynamo.Vector{X: 0.9}, Velocity: dynamo.Vector{X: -0.1}, Acceleration: dynamo.Vector{X: -1.75}},
		},
		Times:      []float64{0.01, 0.02},
		Metrics:    map[string]float64{"energy": 1.5},
		StepsTaken: 2,
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(testParams, testResult(), nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Integrator != "gear" {
		t.Errorf("expected integrator 'gear', got '%s'", meta.Integrator)
	}
	if meta.Steps != 2 || meta.Error != "" {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if meta.Metrics["energy"] != 1.5 {
		t.Errorf("expected energy 1.5, got %f", meta.Metrics["energy"])
	}

	p, err := meta.Params()
	if err != nil {
		t.Fatalf("params: %v", err)
	}
	if p != testParams {
		t.Errorf("params = %+v, want %+v", p, testParams)
	}

	snaps, times, err := st.LoadSnapshots(runID)
	if err != nil {
		t.Fatalf("load snapshots failed: %v", err)
	}
	want := testResult()
	if len(snaps) != 2 || len(times) != 2 {
		t.Fatalf("expected 2 snapshots, got %d/%d", len(snaps), len(times))
	}
	for i := range snaps {
		if snaps[i] != want.Snapshots[i] || times[i] != want.Times[i] {
			t.Errorf("row %d: got %+v at %v", i, snaps[i], times[i])
		}
	}
}

func TestStoreRecordsRunError(t *testing.T) {
	st := New(t.TempDir())
	runErr := &dynamo.SimulationError{Step: 3, Time: 0.03, Wrapped: dynamo.ErrNumericalInstability}

	runID, err := st.Save(testParams, testResult(), runErr)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	meta, res, err := st.LoadResult(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Error != runErr.Error() {
		t.Errorf("error = %q, want %q", meta.Error, runErr.Error())
	}
	if res.StepsTaken != 2 || len(res.Snapshots) != 2 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	first, _ := st.Save(testParams, testResult(), nil)
	second, _ := st.Save(testParams, testResult(), nil)
	if err := os.Mkdir(filepath.Join(st.baseDir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != first || runs[1].ID != second {
		t.Errorf("runs not in save order: %s, %s", runs[0].ID, runs[1].ID)
	}
}

func TestStoreListMissingDir(t *testing.T) {
	runs, err := New(filepath.Join(t.TempDir(), "absent")).List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list, got %v, %v", runs, err)
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runID, err := st.Save(testParams, testResult(), nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{"metadata.json", "states.csv"} {
		if _, err := os.Stat(filepath.Join(tmpDir, runID, name)); errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s not created", name)
		}
	}
}

func TestLoadMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
