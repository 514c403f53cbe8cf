package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Camera is an orthographic view direction in degrees.
type Camera struct {
	Azimuth   float64
	Elevation float64
}

// DefaultCamera looks from azimuth -60°, elevation 30°.
func DefaultCamera() Camera {
	return Camera{Azimuth: -60, Elevation: 30}
}

// basis returns the screen right and up directions in world coordinates.
func (c Camera) basis() (right, up r3.Vec) {
	az := c.Azimuth * math.Pi / 180
	el := c.Elevation * math.Pi / 180
	sinA, cosA := math.Sincos(az)
	sinE, cosE := math.Sincos(el)

	right = r3.Vec{X: -sinA, Y: cosA}
	up = r3.Vec{X: -sinE * cosA, Y: -sinE * sinA, Z: cosE}
	return right, up
}

// Project maps a world point onto the screen plane.
func (c Camera) Project(v r3.Vec) (x, y float64) {
	right, up := c.basis()
	return r3.Dot(v, right), r3.Dot(v, up)
}
