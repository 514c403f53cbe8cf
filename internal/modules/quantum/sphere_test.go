package quantum

import (
	"math"
	"testing"

	"github.com/aristath/quantumlab/internal/modules/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestBlochSphere_PointsOnUnitSphere(t *testing.T) {
	mesh := sampler.SphereMesh()
	sphere := BlochSphere(mesh)

	require.Equal(t, mesh.Rows(), sphere.Rows)
	require.Equal(t, mesh.Cols(), sphere.Cols)
	require.Len(t, sphere.Points, sampler.SphereU*sampler.SphereV)

	for _, p := range sphere.Points {
		assert.InDelta(t, 1.0, p.X*p.X+p.Y*p.Y+p.Z*p.Z, 1e-12)
	}
}

func TestBlochSphere_Poles(t *testing.T) {
	sphere := BlochSphere(sampler.SphereMesh())

	north := sphere.At(0, 0)
	assert.InDelta(t, 1.0, north.Z, 1e-12)

	south := sphere.At(3, sphere.Cols-1)
	assert.InDelta(t, -1.0, south.Z, 1e-12)
}

func TestIllustrativeState(t *testing.T) {
	state := IllustrativeState()

	assert.Equal(t, r3.Vec{X: 1}, state)
	assert.Equal(t, 1.0, r3.Norm(state))
}

func TestBlochVector(t *testing.T) {
	tests := []struct {
		name  string
		theta float64
		phi   float64
		want  r3.Vec
	}{
		{"|0⟩ points north", 0, 0, r3.Vec{Z: 1}},
		{"|1⟩ points south", math.Pi, 0, r3.Vec{Z: -1}},
		{"|+⟩ on the x axis", math.Pi / 2, 0, r3.Vec{X: 1}},
		{"|+i⟩ on the y axis", math.Pi / 2, math.Pi / 2, r3.Vec{Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BlochVector(tt.theta, tt.phi)
			assert.InDelta(t, tt.want.X, got.X, 1e-12)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-12)
			assert.InDelta(t, tt.want.Z, got.Z, 1e-12)
		})
	}
}

func TestBlochVector_UnitLength(t *testing.T) {
	for theta := 0.0; theta <= math.Pi; theta += 0.3 {
		for phi := 0.0; phi < 2*math.Pi; phi += 0.7 {
			assert.InDelta(t, 1.0, r3.Norm(BlochVector(theta, phi)), 1e-12)
		}
	}
}
