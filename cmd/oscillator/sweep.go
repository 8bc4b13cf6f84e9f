package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/san-kum/oscillator/internal/integrators"
	"github.com/san-kum/oscillator/internal/optim"
)

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p, err := cfg.Params()
	if err != nil {
		return err
	}
	for _, step := range stepGrid {
		if step <= 0 || step > p.TotalTime {
			return fmt.Errorf("time step %g outside (0, %g]", step, p.TotalTime)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sweep := optim.NewStepSweep(stepGrid)
	level.Info(logger).Log("msg", "starting sweep", "steps", len(sweep.Steps()))
	points, err := sweep.Run(ctx, p, integrators.Methods())
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(points))
	for _, pt := range points {
		status := "ok"
		if pt.Err != nil {
			status = failed.Render("unstable")
		}
		rows = append(rows, []string{
			pt.Method.String(),
			fmt.Sprintf("%g", pt.TimeStep),
			fmt.Sprintf("%.3e", pt.MaxError),
			fmt.Sprintf("%.3e", pt.Drift),
			status,
		})
	}
	fmt.Println(renderTable([]string{"INTEG", "DT", "MAX ERR", "DRIFT", "STATUS"}, rows))

	for _, m := range integrators.Methods() {
		orders := make([]string, 0)
		for _, o := range optim.ObservedOrder(points, m) {
			orders = append(orders, fmt.Sprintf("%.2f", o))
		}
		line := metricLine(m.String(), "order "+strings.Join(orders, ", "))
		if step, ok := optim.LargestStep(points, m, tolerance); ok {
			line += fmt.Sprintf("  largest dt within %g: %g", tolerance, step)
		}
		fmt.Println(line)
	}
	return nil
}
