package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/oscillator/internal/dynamo"
	"github.com/san-kum/oscillator/internal/export"
	"github.com/san-kum/oscillator/internal/integrators"
	"github.com/san-kum/oscillator/internal/physics"
	"github.com/san-kum/oscillator/internal/sim"
)

const (
	metadataFile = "metadata.json"
	statesFile   = "states.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string             `json:"id"`
	Timestamp     time.Time          `json:"timestamp"`
	Integrator    string             `json:"integrator"`
	Mass          float64            `json:"particle_mass"`
	InitialOffset float64            `json:"initial_offset"`
	Spring        float64            `json:"spring_constant"`
	Damping       float64            `json:"damping_coefficient"`
	Dt            float64            `json:"time_step"`
	Duration      float64            `json:"total_time"`
	Steps         int                `json:"steps"`
	Error         string             `json:"error,omitempty"`
	Metrics       map[string]float64 `json:"metrics"`
}

// Params rebuilds the oscillator parameters the run was made with.
func (m *RunMetadata) Params() (physics.Params, error) {
	method, err := integrators.ParseMethod(m.Integrator)
	if err != nil {
		return physics.Params{}, err
	}
	return physics.Params{
		Mass:          m.Mass,
		InitialOffset: m.InitialOffset,
		Spring:        m.Spring,
		Damping:       m.Damping,
		TimeStep:      m.Dt,
		TotalTime:     m.Duration,
		Method:        method,
	}, nil
}

// Save writes a run under a new directory and returns its ID. runErr is
// the error the run ended with, if any; partial results are kept.
func (s *Store) Save(p physics.Params, result *sim.Result, runErr error) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", p.Method, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Timestamp:     now,
		Integrator:    p.Method.String(),
		Mass:          p.Mass,
		InitialOffset: p.InitialOffset,
		Spring:        p.Spring,
		Damping:       p.Damping,
		Dt:            p.TimeStep,
		Duration:      p.TotalTime,
		Steps:         result.StepsTaken,
		Metrics:       result.Metrics,
	}
	if runErr != nil {
		meta.Error = runErr.Error()
	}

	if err := writeMetadata(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, statesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := export.CSV(csvFile, result.Times, result.Snapshots); err != nil {
		return "", err
	}
	return runID, csvFile.Close()
}

func writeMetadata(path string, meta RunMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}
	return f.Close()
}

// List returns every readable run, oldest first. Directories without
// valid metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadSnapshots reads the recorded trajectory of a run.
func (s *Store) LoadSnapshots(runID string) ([]dynamo.Snapshot, []float64, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, statesFile))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	times, snaps, err := export.ReadCSV(file, meta.Mass)
	if err != nil {
		return nil, nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return snaps, times, nil
}

// LoadResult reassembles a stored run into a sim.Result.
func (s *Store) LoadResult(runID string) (*RunMetadata, *sim.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	snaps, times, err := s.LoadSnapshots(runID)
	if err != nil {
		return nil, nil, err
	}
	return meta, &sim.Result{
		Snapshots:  snaps,
		Times:      times,
		Metrics:    meta.Metrics,
		StepsTaken: meta.Steps,
	}, nil
}
