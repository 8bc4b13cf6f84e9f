package export

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// TrajectorySVG writes x(t) as a single SVG path scaled to width×height
// with 10% padding around the data.
func TrajectorySVG(w io.Writer, times, xs []float64, width, height int, strokeColor string) error {
	if len(times) != len(xs) || len(xs) < 2 {
		return fmt.Errorf("svg: need at least two points, got %d times and %d positions", len(times), len(xs))
	}

	minT, rangeT := paddedRange(times)
	minX, rangeX := paddedRange(xs)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="`,
		width, height, width, height, strokeColor)

	for i := range xs {
		px := (times[i] - minT) / rangeT * float64(width)
		py := float64(height) - (xs[i]-minX)/rangeX*float64(height)

		if i == 0 {
			fmt.Fprintf(&sb, "M%.1f,%.1f", px, py)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", px, py)
		}
	}

	sb.WriteString("\"/>\n</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func paddedRange(vs []float64) (lo, span float64) {
	lo, hi := floats.Min(vs), floats.Max(vs)
	span = hi - lo
	if span == 0 {
		span = 1
	}
	return lo - 0.1*span, 1.2 * span
}
