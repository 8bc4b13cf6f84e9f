package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/san-kum/oscillator/internal/config"
	"github.com/san-kum/oscillator/internal/dynamo"
	"github.com/san-kum/oscillator/internal/experiment"
	"github.com/san-kum/oscillator/internal/export"
	"github.com/san-kum/oscillator/internal/sim"
	"github.com/san-kum/oscillator/internal/storage"
)

// resolveConfig layers the configuration: defaults, then the preset, then
// the config file, then any flag set explicitly on the command line.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("mass") {
		cfg.ParticleMass = mass
	}
	if flags.Changed("offset") {
		cfg.InitialOffset = offset
	}
	if flags.Changed("spring") {
		cfg.SpringConstant = spring
	}
	if flags.Changed("damping") {
		cfg.DampingCoefficient = damping
	}
	if flags.Changed("dt") {
		cfg.TimeStep = dt
	}
	if flags.Changed("time") {
		cfg.TotalTime = duration
	}
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if flags.Changed("ovito") {
		cfg.Output.Ovito = ovitoPath
	}
	if flags.Changed("movement") {
		cfg.Output.Movement = movementPath
	}
	if flags.Changed("data") || cfg.Output.Dir == "" {
		cfg.Output.Dir = dataDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p, err := cfg.Params()
	if err != nil {
		return err
	}

	info := level.Info(logger)
	exp := experiment.New(p)
	if err := exp.Setup(); err != nil {
		return err
	}

	total := int(p.TotalTime/p.TimeStep) + 1
	exp.Engine().AddObserver(sim.ObserverFunc(func(frame int, s dynamo.Snapshot, t float64) {
		if every := max(total/10, 1); frame%every == 0 {
			level.Debug(logger).Log("msg", "progress", "frame", frame, "t", t, "x", s.Position.X)
		}
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	info.Log("msg", "starting simulation", "integrator", p.Method, "dt", p.TimeStep, "total_time", p.TotalTime)
	start := time.Now()
	result, runErr := exp.Run(ctx)
	info.Log("msg", "simulation finished", "steps", result.StepsTaken, "snapshots", len(result.Snapshots), "took", time.Since(start))

	if runErr != nil {
		level.Warn(logger).Log("msg", "run stopped early", "err", runErr)
	}

	st := storage.New(cfg.Output.Dir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(p, result, runErr)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	info.Log("msg", "saved run", "id", runID, "dir", filepath.Join(cfg.Output.Dir, runID))

	if err := writeOutput(cfg.Output.Ovito, "ovito", func(w io.Writer) error {
		return export.Ovito(w, result.Snapshots)
	}); err != nil {
		return err
	}
	if err := writeOutput(cfg.Output.Movement, "movement", func(w io.Writer) error {
		return export.Movement(w, result.Snapshots)
	}); err != nil {
		return err
	}

	fmt.Println(renderSummary(runID, p.Method.String(), result))

	if errors.Is(runErr, dynamo.ErrContextCanceled) {
		return nil
	}
	return runErr
}

// writeOutput creates path and hands it to write. An empty path is skipped.
func writeOutput(path, kind string, write func(io.Writer) error) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	level.Info(logger).Log("msg", "saving output", "kind", kind, "path", path)
	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", kind, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	level.Info(logger).Log("msg", "saved output", "kind", kind, "path", path)
	return nil
}
