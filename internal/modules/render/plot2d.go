package render

import (
	"fmt"
	"math"

	"github.com/aristath/quantumlab/internal/modules/scene"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// axisMargin pads data limits by 5% of their span on each side.
const axisMargin = 0.05

func build2D(s scene.Plot2D, theme scene.Theme) (*plot.Plot, error) {
	if len(s.X) != len(s.Y) {
		return nil, fmt.Errorf("%w: %d x, %d y", ErrMismatchedSeries, len(s.X), len(s.Y))
	}
	if len(s.X) == 0 {
		return nil, ErrEmptySeries
	}

	p := plot.New()
	p.Title.Text = s.Title
	applyTheme(p, theme)

	curve := make(plotter.XYs, len(s.X))
	for i := range s.X {
		curve[i] = plotter.XY{X: s.X[i], Y: s.Y[i]}
	}

	xMin, xMax := padded(floats.Min(s.X), floats.Max(s.X))
	// The fill reaches down to zero, so zero is always in range
	yMin, yMax := padded(math.Min(floats.Min(s.Y), 0), math.Max(floats.Max(s.Y), 0))

	for _, b := range s.Bands {
		band, err := plotter.NewPolygon(plotter.XYs{
			{X: b.Low, Y: yMin}, {X: b.High, Y: yMin},
			{X: b.High, Y: yMax}, {X: b.Low, Y: yMax},
		})
		if err != nil {
			return nil, err
		}
		band.Color = scene.WithAlpha(b.Color, 0.3)
		band.LineStyle.Color = b.Color
		band.LineStyle.Width = vg.Points(2)
		p.Add(band)

		if b.Label != "" {
			label, err := plotter.NewLabels(plotter.XYLabels{
				XYs:    plotter.XYs{{X: (b.Low + b.High) / 2, Y: yMax}},
				Labels: []string{b.Label},
			})
			if err != nil {
				return nil, err
			}
			label.TextStyle[0].Color = b.Color
			label.TextStyle[0].XAlign = text.XCenter
			label.TextStyle[0].YAlign = text.YTop
			p.Add(label)
		}
	}

	if s.FillAlpha > 0 {
		outline := make(plotter.XYs, 0, len(curve)+2)
		outline = append(outline, curve...)
		outline = append(outline,
			plotter.XY{X: curve[len(curve)-1].X, Y: 0},
			plotter.XY{X: curve[0].X, Y: 0},
		)
		fill, err := plotter.NewPolygon(outline)
		if err != nil {
			return nil, err
		}
		fill.Color = scene.WithAlpha(s.Color, s.FillAlpha)
		fill.LineStyle.Color = fill.Color
		fill.LineStyle.Width = 0
		p.Add(fill)
	}

	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = s.Color
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)

	for _, m := range s.Markers {
		marker, err := plotter.NewLine(plotter.XYs{{X: m.X, Y: yMin}, {X: m.X, Y: yMax}})
		if err != nil {
			return nil, err
		}
		marker.LineStyle.Color = m.Color
		marker.LineStyle.Width = vg.Points(1.5)
		p.Add(marker)
	}

	p.X.Min, p.X.Max = xMin, xMax
	p.Y.Min, p.Y.Max = yMin, yMax
	return p, nil
}

// padded widens [lo, hi] by axisMargin, giving a flat range a unit span first.
func padded(lo, hi float64) (float64, float64) {
	if hi == lo {
		lo, hi = lo-0.5, hi+0.5
	}
	pad := (hi - lo) * axisMargin
	return lo - pad, hi + pad
}
