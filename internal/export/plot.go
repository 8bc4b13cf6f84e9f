package export

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Series is one labelled x(t) curve.
type Series struct {
	Name      string
	Times     []float64
	Positions []float64
}

// PositionPlot renders every series on shared axes and writes a PNG.
func PositionPlot(w io.Writer, title string, series ...Series) error {
	if len(series) == 0 {
		return fmt.Errorf("plot: no series")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time (s)"
	p.Y.Label.Text = "x (m)"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, s := range series {
		if len(s.Times) != len(s.Positions) || len(s.Times) == 0 {
			return fmt.Errorf("plot: series %q has %d times and %d positions", s.Name, len(s.Times), len(s.Positions))
		}

		pts := make(plotter.XYs, len(s.Times))
		for j := range pts {
			pts[j].X = s.Times[j]
			pts[j].Y = s.Positions[j]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("plot: series %q: %w", s.Name, err)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(i)
		if i > 0 {
			line.LineStyle.Dashes = plotutil.Dashes(i)
		}
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	c := vgimg.NewWith(
		vgimg.UseWH(8*vg.Inch, 5*vg.Inch),
		vgimg.UseDPI(150),
	)
	p.Draw(draw.New(c))

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("plot: write png: %w", err)
	}
	return nil
}
