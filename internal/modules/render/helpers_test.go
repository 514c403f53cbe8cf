package render

import "gonum.org/v1/plot/plotter"

func xy(x, y float64) plotter.XY {
	return plotter.XY{X: x, Y: y}
}
