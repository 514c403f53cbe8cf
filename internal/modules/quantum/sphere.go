package quantum

import (
	"math"
	"math/cmplx"

	"github.com/aristath/quantumlab/internal/modules/sampler"
	"gonum.org/v1/gonum/spatial/r3"
)

// BlochSphere maps every (u, v) of the mesh to (cos u sin v, sin u sin v, cos v).
func BlochSphere(mesh sampler.Mesh) Sphere {
	rows, cols := mesh.Rows(), mesh.Cols()
	points := make([]r3.Vec, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			u, v := mesh.At(i, j)
			sinV := math.Sin(v)
			points = append(points, r3.Vec{
				X: math.Cos(u) * sinV,
				Y: math.Sin(u) * sinV,
				Z: math.Cos(v),
			})
		}
	}
	return Sphere{Rows: rows, Cols: cols, Points: points}
}

// IllustrativeState is the fixed arrow drawn on the menu's Bloch sphere.
// It marks an equal superposition direction and is not derived from any amplitudes.
func IllustrativeState() r3.Vec {
	return r3.Vec{X: 1, Y: 0, Z: 0}
}

// BlochVector returns the Bloch vector of cos(θ/2)|0⟩ + e^{iφ}·sin(θ/2)|1⟩,
// computed from the state's amplitudes.
func BlochVector(theta, phi float64) r3.Vec {
	alpha := complex(math.Cos(theta/2), 0)
	beta := cmplx.Rect(math.Sin(theta/2), phi)

	coherence := cmplx.Conj(alpha) * beta
	return r3.Vec{
		X: 2 * real(coherence),
		Y: 2 * imag(coherence),
		Z: BornRule(alpha) - BornRule(beta),
	}
}
