package render

import (
	"math"

	"github.com/aristath/quantumlab/internal/modules/scene"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

const (
	// sceneExtent is the half-width of the visible screen square.
	sceneExtent = 1.5
	// headRatio is the arrowhead length relative to the projected shaft.
	headRatio = 0.3
	// headAngle is the half-angle of the arrowhead in radians.
	headAngle = math.Pi / 8
)

func build3D(s scene.Plot3D, theme scene.Theme, camera Camera) (*plot.Plot, error) {
	surface := s.Surface
	if surface.Rows*surface.Cols != len(surface.Points) {
		return nil, ErrMalformedSurface
	}

	p := plot.New()
	p.Title.Text = s.Title
	applyTheme(p, theme)
	p.HideAxes()

	project := func(v r3.Vec) plotter.XY {
		x, y := camera.Project(v)
		return plotter.XY{X: x, Y: y}
	}

	wire := scene.WithAlpha(surface.Color, surface.Alpha)
	addWire := func(xys plotter.XYs) error {
		if len(xys) < 2 {
			return nil
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.LineStyle.Color = wire
		line.LineStyle.Width = vg.Points(1)
		p.Add(line)
		return nil
	}

	for i := 0; i < surface.Rows; i++ {
		row := make(plotter.XYs, surface.Cols)
		for j := 0; j < surface.Cols; j++ {
			row[j] = project(surface.At(i, j))
		}
		if err := addWire(row); err != nil {
			return nil, err
		}
	}
	for j := 0; j < surface.Cols; j++ {
		col := make(plotter.XYs, surface.Rows)
		for i := 0; i < surface.Rows; i++ {
			col[i] = project(surface.At(i, j))
		}
		if err := addWire(col); err != nil {
			return nil, err
		}
	}

	tail, tip := project(s.Arrow.Origin), project(s.Arrow.Tip())
	for _, segment := range arrowSegments(tail, tip) {
		line, err := plotter.NewLine(segment)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = s.Arrow.Color
		line.LineStyle.Width = vg.Points(s.Arrow.Width)
		p.Add(line)
	}

	for _, l := range s.Labels {
		label, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{project(l.Position)},
			Labels: []string{l.Text},
		})
		if err != nil {
			return nil, err
		}
		label.TextStyle[0].Color = l.Color
		label.TextStyle[0].XAlign = text.XLeft
		p.Add(label)
	}

	p.X.Min, p.X.Max = -sceneExtent, sceneExtent
	p.Y.Min, p.Y.Max = -sceneExtent, sceneExtent
	return p, nil
}

// arrowSegments returns the shaft and, unless the arrow points at the camera, two head strokes.
func arrowSegments(tail, tip plotter.XY) []plotter.XYs {
	segments := []plotter.XYs{{tail, tip}}

	dx, dy := tip.X-tail.X, tip.Y-tail.Y
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		return segments
	}

	back := math.Atan2(-dy, -dx)
	head := headRatio * length
	for _, side := range []float64{-headAngle, headAngle} {
		sin, cos := math.Sincos(back + side)
		segments = append(segments, plotter.XYs{
			tip,
			{X: tip.X + head*cos, Y: tip.Y + head*sin},
		})
	}
	return segments
}
