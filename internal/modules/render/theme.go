package render

import (
	"github.com/aristath/quantumlab/internal/modules/scene"
	"gonum.org/v1/plot"
)

// applyTheme colors the background, title, legend and both axes.
func applyTheme(p *plot.Plot, t scene.Theme) {
	p.BackgroundColor = t.Background
	p.Title.TextStyle.Color = t.Foreground
	p.Legend.TextStyle.Color = t.Foreground

	for _, a := range []*plot.Axis{&p.X, &p.Y} {
		a.LineStyle.Color = t.Foreground
		a.Label.TextStyle.Color = t.Foreground
		a.Tick.Label.Color = t.Foreground
		a.Tick.LineStyle.Color = t.Foreground
	}
}
