package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/san-kum/oscillator/internal/analysis"
	"github.com/san-kum/oscillator/internal/export"
	"github.com/san-kum/oscillator/internal/integrators"
	"github.com/san-kum/oscillator/internal/metrics"
	"github.com/san-kum/oscillator/internal/physics"
	"github.com/san-kum/oscillator/internal/sim"
	"github.com/san-kum/oscillator/internal/storage"
)

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p, err := cfg.Params()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	level.Info(logger).Log("msg", "starting comparison", "dt", p.TimeStep, "total_time", p.TotalTime)
	start := time.Now()
	runs, err := sim.Compare(ctx, p, integrators.Methods(), metrics.Standard)
	if err != nil {
		return err
	}
	level.Info(logger).Log("msg", "comparison finished", "took", time.Since(start))

	ref := physics.Analytic(p.Coefficients(), p.InitialOffset, p.InitialVelocity())

	rows := make([][]string, 0, len(runs))
	series := make([]export.Series, 0, len(runs)+1)
	for _, run := range runs {
		if run.Err != nil {
			level.Warn(logger).Log("msg", "run failed", "integrator", run.Method, "err", run.Err)
		}
		rows = append(rows, comparisonRow(run, ref))

		xs, _ := run.Result.Positions()
		if run.Err == nil {
			series = append(series, export.Series{Name: run.Method.String(), Times: run.Result.Times, Positions: xs})
		}

		if saveRuns {
			if err := saveRun(cfg.Output.Dir, p, run); err != nil {
				return err
			}
		}
	}

	fmt.Printf("%s  %s regime, dt=%g, T=%g\n", title.Render("comparison"), ref.Regime(), p.TimeStep, p.TotalTime)
	fmt.Println(renderTable(
		[]string{"INTEG", "STEPS", "FINAL X", "FINAL E", "DRIFT", "MAX ERR", "RMS ERR", "STATUS"},
		rows,
	))

	if pngPath != "" && len(series) > 0 {
		exact := make([]float64, len(series[0].Times))
		for i, t := range series[0].Times {
			exact[i] = ref.Position(t)
		}
		series = append(series, export.Series{Name: "analytic", Times: series[0].Times, Positions: exact})

		return writeOutput(pngPath, "png", func(w io.Writer) error {
			return export.PositionPlot(w, "x(t) by integrator", series...)
		})
	}
	return nil
}

func comparisonRow(run sim.Comparison, ref physics.Solution) []string {
	res := run.Result
	stats := analysis.CompareToReference(res.Snapshots, res.Times, ref.Position)

	finalX := "-"
	if last, ok := res.Final(); ok {
		finalX = fmt.Sprintf("%.6g", last.Position.X)
	}

	status := "ok"
	if run.Err != nil {
		status = failed.Render("failed")
	}

	return []string{
		run.Method.String(),
		fmt.Sprint(res.StepsTaken),
		finalX,
		fmt.Sprintf("%.6g", res.Metrics["final_energy"]),
		fmt.Sprintf("%.3e", res.Metrics["energy_drift"]),
		fmt.Sprintf("%.3e", stats.MaxAbs),
		fmt.Sprintf("%.3e", stats.RMS),
		status,
	}
}

func saveRun(dir string, p physics.Params, run sim.Comparison) error {
	st := storage.New(dir)
	if err := st.Init(); err != nil {
		return err
	}
	p.Method = run.Method
	runID, err := st.Save(p, run.Result, run.Err)
	if err != nil {
		return fmt.Errorf("save %s run: %w", run.Method, err)
	}
	level.Info(logger).Log("msg", "saved run", "integrator", run.Method, "id", runID)
	return nil
}
