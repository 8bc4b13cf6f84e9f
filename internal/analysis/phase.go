package analysis

import (
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/oscillator/internal/dynamo"
)

type PhasePoint struct {
	X, Y float64
}

// PhasePortrait2D holds the (x, v) trajectory of a run.
type PhasePortrait2D struct {
	Points []PhasePoint
}

// PhasePortrait collects position against velocity along the x axis.
func PhasePortrait(snaps []dynamo.Snapshot) *PhasePortrait2D {
	portrait := &PhasePortrait2D{Points: make([]PhasePoint, 0, len(snaps))}
	for _, s := range snaps {
		portrait.Points = append(portrait.Points, PhasePoint{X: s.Position.X, Y: s.Velocity.X})
	}
	return portrait
}

// PhasePortraitToASCII renders the portrait on a width×height grid with
// axes drawn where they cross the visible area.
func PhasePortraitToASCII(portrait *PhasePortrait2D, width, height int) string {
	if portrait == nil || len(portrait.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	xs := make([]float64, len(portrait.Points))
	ys := make([]float64, len(portrait.Points))
	for i, p := range portrait.Points {
		xs[i], ys[i] = p.X, p.Y
	}
	bx := newAxis(floats.Min(xs), floats.Max(xs), width)
	by := newAxis(floats.Min(ys), floats.Max(ys), height)

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	for i := range xs {
		col, row := bx.cell(xs[i]), height-1-by.cell(ys[i])
		canvas[row][col] = '•'
	}

	if bx.contains(0) {
		col := bx.cell(0)
		for row := range canvas {
			if canvas[row][col] == ' ' {
				canvas[row][col] = '│'
			}
		}
	}
	if by.contains(0) {
		row := height - 1 - by.cell(0)
		for col := range canvas[row] {
			if canvas[row][col] == ' ' {
				canvas[row][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// axis maps a value range, padded by 10% on each side, onto n cells.
type axis struct {
	lo, span float64
	n        int
}

func newAxis(lo, hi float64, n int) axis {
	span := hi - lo
	if span == 0 {
		span = 1
	}
	lo -= span * 0.1
	return axis{lo: lo, span: span * 1.2, n: n}
}

func (a axis) contains(v float64) bool {
	return v >= a.lo && v <= a.lo+a.span
}

func (a axis) cell(v float64) int {
	c := int((v - a.lo) / a.span * float64(a.n-1))
	return max(0, min(a.n-1, c))
}

// Crossings returns the times at which xs crosses level going upward,
// linearly interpolated between samples.
func Crossings(times, xs []float64, level float64) []float64 {
	var out []float64
	n := min(len(times), len(xs))
	for i := 1; i < n; i++ {
		prev, curr := xs[i-1], xs[i]
		if prev < level && curr >= level {
			frac := (level - prev) / (curr - prev)
			out = append(out, times[i-1]+frac*(times[i]-times[i-1]))
		}
	}
	return out
}

// MeanPeriod averages the spacing of successive upward zero crossings.
// It returns zero when fewer than two crossings exist.
func MeanPeriod(times, xs []float64) float64 {
	c := Crossings(times, xs, 0)
	if len(c) < 2 {
		return 0
	}
	return (c[len(c)-1] - c[0]) / float64(len(c)-1)
}
