package main

import (
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/san-kum/oscillator/internal/config"
)

var (
	dataDir    string
	verbose    bool
	configFile string
	preset     string

	mass       float64
	offset     float64
	spring     float64
	damping    float64
	dt         float64
	duration   float64
	integrator string

	ovitoPath    string
	movementPath string
	pngPath      string
	saveRuns     bool

	exportFormat string
	exportOut    string

	stepGrid  []float64
	tolerance float64

	logger kitlog.Logger
)

// main registers the commands and exits with status 1 if the executed
// command returns an error.
func main() {
	logger = newLogger(false)

	rootCmd := &cobra.Command{
		Use:           "oscillator",
		Short:         "damped harmonic oscillator integrator lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(verbose)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultOutputDir, "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run one simulation and store it",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addParamFlags(runCmd)
	runCmd.Flags().StringVar(&ovitoPath, "ovito", "", "write an ovito frame file")
	runCmd.Flags().StringVar(&movementPath, "movement", "", "write x/y position arrays")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run every integrator on the same parameters",
		Args:  cobra.NoArgs,
		RunE:  compareIntegrators,
	}
	addParamFlags(compareCmd)
	compareCmd.Flags().StringVar(&pngPath, "png", "", "write a position plot")
	compareCmd.Flags().BoolVar(&saveRuns, "save", false, "store each run")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "measure error against the exact solution over a grid of time steps",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addParamFlags(sweepCmd)
	sweepCmd.Flags().Float64SliceVar(&stepGrid, "steps", []float64{0.02, 0.01, 0.005, 0.0025}, "time steps to try")
	sweepCmd.Flags().Float64Var(&tolerance, "tol", 1e-3, "error tolerance for the largest usable step")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot position and energy of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency and error analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "ovito, movement, json, csv, svg or png")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (stdout if empty)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, compareCmd, sweepCmd, listCmd, plotCmd, analyzeCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
}

func newLogger(debug bool) kitlog.Logger {
	l := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	l = kitlog.With(l, "ts", kitlog.DefaultTimestampUTC)
	if debug {
		return level.NewFilter(l, level.AllowDebug())
	}
	return level.NewFilter(l, level.AllowInfo())
}

func addParamFlags(cmd *cobra.Command) {
	defaults := config.DefaultConfig()
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&mass, "mass", defaults.ParticleMass, "particle mass (kg)")
	cmd.Flags().Float64Var(&offset, "offset", defaults.InitialOffset, "initial x position (m)")
	cmd.Flags().Float64Var(&spring, "spring", defaults.SpringConstant, "spring constant (N/m)")
	cmd.Flags().Float64Var(&damping, "damping", defaults.DampingCoefficient, "viscous damping coefficient (kg/s)")
	cmd.Flags().Float64Var(&dt, "dt", defaults.TimeStep, "time step (s)")
	cmd.Flags().Float64Var(&duration, "time", defaults.TotalTime, "total time (s)")
	cmd.Flags().StringVar(&integrator, "integrator", defaults.Integrator, "verlet, beeman or gear")
}
