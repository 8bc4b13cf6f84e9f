package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/san-kum/oscillator/internal/sim"
)

var (
	panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 2)

	title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	metricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(14)

	metricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	failed = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ff4444"))

	headerCell = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1)

	cell = lipgloss.NewStyle().Padding(0, 1)
)

func metricLine(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, metricLabel.Render(label), metricValue.Render(value))
}

func renderSummary(runID, method string, result *sim.Result) string {
	lines := []string{
		title.Render(runID),
		metricLine("integrator", method),
		metricLine("steps", fmt.Sprint(result.StepsTaken)),
	}
	if last, ok := result.Final(); ok {
		lines = append(lines,
			metricLine("final x", fmt.Sprintf("%.6g", last.Position.X)),
			metricLine("final v", fmt.Sprintf("%.6g", last.Velocity.X)),
		)
	}

	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		lines = append(lines, metricLine(name, fmt.Sprintf("%.6g", result.Metrics[name])))
	}

	return panel.Render(strings.Join(lines, "\n"))
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#444466"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCell
			}
			return cell
		}).
		Render()
}
