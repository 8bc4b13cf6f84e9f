package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/oscillator/internal/physics"
	"github.com/san-kum/oscillator/internal/sim"
)

type ExportData struct {
	Integrator    string             `json:"integrator"`
	Mass          float64            `json:"particle_mass"`
	InitialOffset float64            `json:"initial_offset"`
	Spring        float64            `json:"spring_constant"`
	Damping       float64            `json:"damping_coefficient"`
	Dt            float64            `json:"time_step"`
	Duration      float64            `json:"total_time"`
	Steps         int                `json:"steps"`
	Times         []float64          `json:"times"`
	Positions     []float64          `json:"positions"`
	Velocities    []float64          `json:"velocities"`
	Accelerations []float64          `json:"accelerations"`
	Metrics       map[string]float64 `json:"metrics"`
}

func NewExportData(p physics.Params, result *sim.Result) ExportData {
	data := ExportData{
		Integrator:    p.Method.String(),
		Mass:          p.Mass,
		InitialOffset: p.InitialOffset,
		Spring:        p.Spring,
		Damping:       p.Damping,
		Dt:            p.TimeStep,
		Duration:      p.TotalTime,
		Steps:         result.StepsTaken,
		Times:         result.Times,
		Positions:     make([]float64, len(result.Snapshots)),
		Velocities:    make([]float64, len(result.Snapshots)),
		Accelerations: make([]float64, len(result.Snapshots)),
		Metrics:       result.Metrics,
	}

	for i, s := range result.Snapshots {
		data.Positions[i] = s.Position.X
		data.Velocities[i] = s.Velocity.X
		data.Accelerations[i] = s.Acceleration.X
	}
	return data
}

// JSON writes an indented document describing the run.
func JSON(w io.Writer, p physics.Params, result *sim.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(p, result))
}
