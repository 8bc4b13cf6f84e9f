package export

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/oscillator/internal/dynamo"
	"github.com/san-kum/oscillator/internal/integrators"
	"github.com/san-kum/oscillator/internal/physics"
	"github.com/san-kum/oscillator/internal/sim"
)

func testSnapshots() []dynamo.Snapshot {
	return []dynamo.Snapshot{
		{Mass: 1, Position: dynamo.Vector{X: 1}, Velocity: dynamo.Vector{X: -0.5}, Acceleration: dynamo.Vector{X: -1}},
		{Mass: 1, Position: dynamo.Vector{X: 0.25}, Velocity: dynamo.Vector{X: 2}, Acceleration: dynamo.Vector{X: 1e-7}},
	}
}

func TestOvito(t *testing.T) {
	var buf bytes.Buffer
	if err := Ovito(&buf, testSnapshots()); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"4", "0", "1 0 -0.5 0", "0 0 0 0", "100 0 0 0", "-100 0 0 0",
		"4", "1", "0.25 0 2 0", "0 0 0 0", "100 0 0 0", "-100 0 0 0",
	}, "\n") + "\n"

	if got := buf.String(); got != want {
		t.Errorf("ovito output mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestOvitoEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Ovito(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestMovement(t *testing.T) {
	var buf bytes.Buffer
	if err := Movement(&buf, testSnapshots()); err != nil {
		t.Fatal(err)
	}

	want := "x = [1, 0.25];\ny = [0, 0];\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	buf.Reset()
	if err := Movement(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "x = [];\ny = [];\n" {
		t.Errorf("empty run: got %q", got)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	times := []float64{0.1, 0.2}
	snaps := testSnapshots()
	snaps[1].Position.X = math.Pi

	var buf bytes.Buffer
	if err := CSV(&buf, times, snaps); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "time,x,y,vx,vy,ax,ay\n") {
		t.Errorf("unexpected header in %q", buf.String())
	}

	gotTimes, gotSnaps, err := ReadCSV(&buf, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(gotTimes) != 2 || gotTimes[1] != 0.2 {
		t.Errorf("times = %v", gotTimes)
	}
	for i := range snaps {
		if gotSnaps[i] != snaps[i] {
			t.Errorf("snapshot %d: got %+v, want %+v", i, gotSnaps[i], snaps[i])
		}
	}
}

func TestCSVErrors(t *testing.T) {
	if err := CSV(&bytes.Buffer{}, []float64{0}, nil); err == nil {
		t.Error("expected length mismatch error")
	}
	if _, _, err := ReadCSV(strings.NewReader(""), 1); err == nil {
		t.Error("expected missing header error")
	}
	bad := "time,x,y,vx,vy,ax,ay\n0,1,0,zero,0,0,0\n"
	if _, _, err := ReadCSV(strings.NewReader(bad), 1); err == nil {
		t.Error("expected parse error")
	}
}

func TestJSON(t *testing.T) {
	p := physics.Params{
		Mass: 2, InitialOffset: 0.5, Spring: 4, Damping: 1,
		TimeStep: 0.1, TotalTime: 0.2, Method: integrators.MethodBeeman,
	}
	result := &sim.Result{
		Snapshots:  testSnapshots(),
		Times:      []float64{0.1, 0.2},
		Metrics:    map[string]float64{"energy": 1.5},
		StepsTaken: 2,
	}

	var buf bytes.Buffer
	if err := JSON(&buf, p, result); err != nil {
		t.Fatal(err)
	}

	var got ExportData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Integrator != "beeman" || got.Steps != 2 || got.Spring != 4 {
		t.Errorf("unexpected header fields %+v", got)
	}
	if len(got.Positions) != 2 || got.Positions[1] != 0.25 || got.Velocities[0] != -0.5 {
		t.Errorf("unexpected series %+v", got)
	}
	if got.Metrics["energy"] != 1.5 {
		t.Errorf("metrics = %v", got.Metrics)
	}
}

func TestPositionPlot(t *testing.T) {
	times := []float64{0, 0.1, 0.2, 0.3}
	var buf bytes.Buffer

	err := PositionPlot(&buf, "x(t)",
		Series{Name: "verlet", Times: times, Positions: []float64{1, 0.9, 0.7, 0.4}},
		Series{Name: "gear", Times: times, Positions: []float64{1, 0.91, 0.71, 0.41}},
	)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}

	if err := PositionPlot(&buf, "empty"); err == nil {
		t.Error("expected error without series")
	}
	bad := Series{Name: "nan", Times: times[:2], Positions: []float64{1, math.NaN()}}
	if err := PositionPlot(&buf, "bad", bad); err == nil {
		t.Error("expected error for NaN data")
	}
}

func TestTrajectorySVG(t *testing.T) {
	var buf bytes.Buffer
	if err := TrajectorySVG(&buf, []float64{0, 1, 2}, []float64{1, 0, -1}, 200, 100, "#00ff00"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || strings.Count(out, " L") != 2 {
		t.Errorf("unexpected svg %q", out)
	}
	if err := TrajectorySVG(&buf, []float64{0}, []float64{1}, 10, 10, "red"); err == nil {
		t.Error("expected error for single point")
	}
}
