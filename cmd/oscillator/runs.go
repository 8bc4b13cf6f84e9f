package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/oscillator/internal/analysis"
	"github.com/san-kum/oscillator/internal/config"
	"github.com/san-kum/oscillator/internal/export"
	"github.com/san-kum/oscillator/internal/physics"
	"github.com/san-kum/oscillator/internal/storage"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tINTEG\tMASS\tK\tGAMMA\tDT\tDURATION\tSTEPS\tSTATUS")

	for _, run := range runs {
		status := "ok"
		if run.Error != "" {
			status = "failed"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%g\t%g\t%gs\t%gs\t%d\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Integrator,
			run.Mass,
			run.Spring,
			run.Damping,
			run.Dt,
			run.Duration,
			run.Steps,
			status,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, result, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}
	if len(result.Snapshots) == 0 {
		return fmt.Errorf("run %s has no snapshots", meta.ID)
	}

	xs, _ := result.Positions()
	p, err := meta.Params()
	if err != nil {
		return err
	}
	energy := analysis.EnergySeries(p.Coefficients(), result.Snapshots)

	for _, plot := range []struct {
		caption string
		data    []float64
	}{
		{"x (m) vs time", xs},
		{"mechanical energy (J) vs time", energy},
	} {
		graph := asciigraph.Plot(plot.data,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption(plot.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, result, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}
	p, err := meta.Params()
	if err != nil {
		return err
	}

	xs, _ := result.Positions()
	ref := physics.Analytic(p.Coefficients(), p.InitialOffset, p.InitialVelocity())
	stats := analysis.CompareToReference(result.Snapshots, result.Times, ref.Position)
	fft := analysis.DominantFrequency(xs, p.TimeStep)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "run\t%s\n", meta.ID)
	fmt.Fprintf(w, "regime\t%s\n", ref.Regime())
	fmt.Fprintf(w, "dominant frequency\t%.6g Hz\n", fft)
	if wd := ref.DampedFrequency(); wd > 0 {
		fmt.Fprintf(w, "analytic frequency\t%.6g Hz\n", wd/(2*math.Pi))
	}
	if period := analysis.MeanPeriod(result.Times, xs); period > 0 {
		fmt.Fprintf(w, "mean period\t%.6g s\n", period)
	}
	fmt.Fprintf(w, "max |x - x_exact|\t%.3e (t=%.4g)\n", stats.MaxAbs, stats.AtMax)
	fmt.Fprintf(w, "rms |x - x_exact|\t%.3e\n", stats.RMS)
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()

	if ps := analysis.PowerSpectrum(xs); len(ps) > 1 {
		n := min(len(ps), 100)
		fmt.Println(asciigraph.Plot(ps[1:n],
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (x)"),
		))
		fmt.Println()
	}

	fmt.Println(analysis.PhasePortraitToASCII(analysis.PhasePortrait(result.Snapshots), 72, 20))
	fmt.Println("phase portrait (x vs v)")
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, result, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}
	p, err := meta.Params()
	if err != nil {
		return err
	}
	xs, _ := result.Positions()

	var write func(io.Writer) error
	switch strings.ToLower(exportFormat) {
	case "ovito":
		write = func(w io.Writer) error { return export.Ovito(w, result.Snapshots) }
	case "movement":
		write = func(w io.Writer) error { return export.Movement(w, result.Snapshots) }
	case "json":
		write = func(w io.Writer) error { return export.JSON(w, p, result) }
	case "csv":
		write = func(w io.Writer) error { return export.CSV(w, result.Times, result.Snapshots) }
	case "svg":
		write = func(w io.Writer) error { return export.TrajectorySVG(w, result.Times, xs, 800, 400, "#00ff88") }
	case "png":
		if exportOut == "" {
			return fmt.Errorf("png export needs --out")
		}
		write = func(w io.Writer) error {
			return export.PositionPlot(w, meta.ID, export.Series{Name: meta.Integrator, Times: result.Times, Positions: xs})
		}
	default:
		return fmt.Errorf("unknown format: %s", exportFormat)
	}

	if exportOut == "" {
		return write(os.Stdout)
	}
	return writeOutput(exportOut, exportFormat, write)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tINTEG\tMASS\tK\tGAMMA\tX0\tDT\tDURATION")
	for _, name := range config.ListPresets() {
		c := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%g\t%gs\t%gs\n",
			name, c.Integrator, c.ParticleMass, c.SpringConstant, c.DampingCoefficient,
			c.InitialOffset, c.TimeStep, c.TotalTime)
	}
	return w.Flush()
}
