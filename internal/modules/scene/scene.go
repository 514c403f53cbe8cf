// Package scene describes figures independently of how they are drawn.
// The lab builds scenes from computed fields; the renderer turns them into images.
package scene

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"
)

// Size is a figure size in inches.
type Size struct {
	Width  float64
	Height float64
}

// Figure sizes used by the simulations
var (
	Wide   = Size{Width: 10, Height: 5}
	Square = Size{Width: 8, Height: 8}
)

// Marker is a vertical line spanning the whole y range.
type Marker struct {
	X     float64
	Color color.Color
}

// Band is a shaded vertical strip between two x positions.
type Band struct {
	Low   float64
	High  float64
	Color color.Color
	Label string
}

// Plot2D is a curve over a grid, filled down to zero.
type Plot2D struct {
	Slug      string
	Title     string
	Size      Size
	X         []float64
	Y         []float64
	Color     color.Color
	FillAlpha float64 // 0 disables the fill
	Markers   []Marker
	Bands     []Band
}

// Surface is a row-major grid of points drawn as a wireframe.
type Surface struct {
	Rows   int
	Cols   int
	Points []r3.Vec
	Color  color.Color
	Alpha  float64
}

// At returns the point at row i, column j.
func (s Surface) At(i, j int) r3.Vec {
	return s.Points[i*s.Cols+j]
}

// Arrow is a vector drawn from Origin along Direction, scaled to Length.
type Arrow struct {
	Origin    r3.Vec
	Direction r3.Vec
	Length    float64
	Color     color.Color
	Width     float64 // points
}

// Tip returns Origin + Length·Direction.
func (a Arrow) Tip() r3.Vec {
	return r3.Add(a.Origin, r3.Scale(a.Length, a.Direction))
}

// Label is text anchored at a 3-D position.
type Label struct {
	Position r3.Vec
	Text     string
	Color    color.Color
}

// Plot3D is a wireframe surface with one arrow and its labels.
type Plot3D struct {
	Slug    string
	Title   string
	Size    Size
	Surface Surface
	Arrow   Arrow
	Labels  []Label
}
