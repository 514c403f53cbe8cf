// Package sampler builds the coordinate grids the field evaluators run over.
package sampler

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Grid sizes and bounds of the three simulations
const (
	SlitPoints = 1000
	SlitLow    = -10.0
	SlitHigh   = 10.0

	BoxPoints = 100

	SphereU = 20
	SphereV = 10
)

// Linspace returns count evenly spaced values spanning [low, high], both ends included.
func Linspace(low, high float64, count int) []float64 {
	switch {
	case count <= 0:
		return []float64{}
	case count == 1:
		return []float64{low}
	}
	return floats.Span(make([]float64, count), low, high)
}

// Spacing returns the distance between neighbouring grid points, or 0 for grids shorter than 2.
func Spacing(grid []float64) float64 {
	if len(grid) < 2 {
		return 0
	}
	return grid[1] - grid[0]
}

// Mesh is a row-major 2-D grid of (u, v) pairs. Rows follow u, columns follow v.
type Mesh struct {
	u []float64
	v []float64
}

// NewMesh spans u and v independently, both ends included.
func NewMesh(uLow, uHigh float64, uCount int, vLow, vHigh float64, vCount int) Mesh {
	return Mesh{
		u: Linspace(uLow, uHigh, uCount),
		v: Linspace(vLow, vHigh, vCount),
	}
}

// SphereMesh is the 20×10 angular mesh over [0, 2π]×[0, π].
func SphereMesh() Mesh {
	return NewMesh(0, 2*math.Pi, SphereU, 0, math.Pi, SphereV)
}

// Rows returns the number of u samples.
func (m Mesh) Rows() int { return len(m.u) }

// Cols returns the number of v samples.
func (m Mesh) Cols() int { return len(m.v) }

// At returns the (u, v) pair at row i, column j.
func (m Mesh) At(i, j int) (u, v float64) {
	return m.u[i], m.v[j]
}

// U returns a copy of the u axis.
func (m Mesh) U() []float64 { return append([]float64(nil), m.u...) }

// V returns a copy of the v axis.
func (m Mesh) V() []float64 { return append([]float64(nil), m.v...) }
