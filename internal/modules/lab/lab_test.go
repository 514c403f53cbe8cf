package lab

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/aristath/quantumlab/internal/modules/quantum"
	"github.com/aristath/quantumlab/internal/modules/scene"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// recordingRenderer keeps every scene it is asked to draw
type recordingRenderer struct {
	plots2D []scene.Plot2D
	plots3D []scene.Plot3D
	themes  []scene.Theme
	err     error
}

func (r *recordingRenderer) Draw2D(_ context.Context, s scene.Plot2D, theme scene.Theme) error {
	r.plots2D = append(r.plots2D, s)
	r.themes = append(r.themes, theme)
	return r.err
}

func (r *recordingRenderer) Draw3D(_ context.Context, s scene.Plot3D, theme scene.Theme) error {
	r.plots3D = append(r.plots3D, s)
	r.themes = append(r.themes, theme)
	return r.err
}

func newTestService() (*Service, *recordingRenderer, *bytes.Buffer) {
	renderer := &recordingRenderer{}
	out := &bytes.Buffer{}
	log := zerolog.New(nil).Level(zerolog.Disabled)
	return NewService(renderer, scene.DarkBackground(), out, log), renderer, out
}

func TestRun_DoubleSlit(t *testing.T) {
	svc, renderer, out := newTestService()

	require.NoError(t, svc.Run(context.Background(), KindDoubleSlit))

	assert.Equal(t, "\n--- Visualizing Double Slit Interference ---\n", out.String())
	require.Len(t, renderer.plots2D, 1)
	assert.Empty(t, renderer.plots3D)

	plot := renderer.plots2D[0]
	assert.Equal(t, "Double Slit Interference Pattern", plot.Title)
	assert.Equal(t, scene.Wide, plot.Size)
	assert.Equal(t, scene.Cyan, plot.Color)
	assert.Equal(t, 0.3, plot.FillAlpha)
	assert.Empty(t, plot.Markers)
	require.Len(t, plot.X, 1000)
	require.Len(t, plot.Y, 1000)
	assert.InDelta(t, -10.0, plot.X[0], 1e-12)
	assert.InDelta(t, 10.0, plot.X[999], 1e-12)
	assert.Equal(t, "dark_background", renderer.themes[0].Name)
}

func TestRun_ParticleInBox(t *testing.T) {
	svc, renderer, out := newTestService()

	require.NoError(t, svc.Run(context.Background(), KindParticleInBox))

	assert.Equal(t, "\n--- Visualizing Particle in a Box (n=2) ---\n", out.String())
	require.Len(t, renderer.plots2D, 1)

	plot := renderer.plots2D[0]
	assert.Equal(t, "Particle in a Box (Level 2)", plot.Title)
	assert.Equal(t, scene.Lime, plot.Color)
	require.Len(t, plot.X, 100)
	assert.InDelta(t, 0.0, plot.Y[0], 1e-12)
	assert.InDelta(t, 0.0, plot.Y[99], 1e-12)
	assert.Equal(t, []scene.Marker{{X: 0, Color: scene.Red}, {X: 1, Color: scene.Red}}, plot.Markers)
}

func TestParticleInBox_OtherLevel(t *testing.T) {
	svc, renderer, out := newTestService()

	require.NoError(t, svc.ParticleInBox(context.Background(), quantum.BoxParams{Width: 2, Level: 3}))

	assert.Contains(t, out.String(), "(n=3)")
	plot := renderer.plots2D[0]
	assert.Equal(t, "Particle in a Box (Level 3)", plot.Title)
	assert.InDelta(t, 2.0, plot.X[len(plot.X)-1], 1e-12)
	assert.Equal(t, 2.0, plot.Markers[1].X)
}

func TestParticleInBox_InvalidLevel(t *testing.T) {
	svc, renderer, out := newTestService()

	err := svc.ParticleInBox(context.Background(), quantum.BoxParams{Width: 1, Level: 0})

	assert.ErrorIs(t, err, quantum.ErrInvalidLevel)
	assert.Empty(t, out.String())
	assert.Empty(t, renderer.plots2D)
}

func TestRun_BlochSphere(t *testing.T) {
	svc, renderer, out := newTestService()

	require.NoError(t, svc.Run(context.Background(), KindBlochSphere))

	assert.Equal(t, "\n--- Visualizing Qubit (Superposition) ---\n", out.String())
	assert.Empty(t, renderer.plots2D)
	require.Len(t, renderer.plots3D, 1)

	plot := renderer.plots3D[0]
	assert.Equal(t, "Bloch Sphere Visualization", plot.Title)
	assert.Equal(t, scene.Square, plot.Size)
	assert.Equal(t, 20, plot.Surface.Rows)
	assert.Equal(t, 10, plot.Surface.Cols)
	for _, p := range plot.Surface.Points {
		assert.InDelta(t, 1.0, r3.Norm(p), 1e-12)
	}

	assert.Equal(t, r3.Vec{}, plot.Arrow.Origin)
	assert.Equal(t, r3.Vec{X: 1}, plot.Arrow.Direction)
	assert.Equal(t, 1.0, plot.Arrow.Length)
	assert.Equal(t, scene.Magenta, plot.Arrow.Color)

	require.Len(t, plot.Labels, 1)
	assert.Equal(t, "|Ψ⟩ Superposition", plot.Labels[0].Text)
	assert.Equal(t, r3.Vec{X: 1.2}, plot.Labels[0].Position)
}

func TestBlochSphere_CustomState(t *testing.T) {
	svc, renderer, _ := newTestService()
	state := quantum.BlochVector(0, 0)

	require.NoError(t, svc.BlochSphere(context.Background(), BlochOptions{State: &state, PoleLabels: true}))

	plot := renderer.plots3D[0]
	assert.InDelta(t, 1.0, plot.Arrow.Direction.Z, 1e-12)
	assert.Len(t, plot.Labels, 5)
}

func TestRun_Tunneling(t *testing.T) {
	svc, renderer, _ := newTestService()

	require.NoError(t, svc.Run(context.Background(), KindTunneling))

	plot := renderer.plots2D[0]
	assert.Equal(t, "Quantum Tunneling Effect", plot.Title)
	assert.Zero(t, plot.FillAlpha)
	require.Len(t, plot.Bands, 1)
	assert.Equal(t, "Barrier", plot.Bands[0].Label)
	for _, y := range plot.Y {
		assert.LessOrEqual(t, math.Abs(y), 1.0)
	}
}

func TestRun_UnknownKind(t *testing.T) {
	svc, renderer, out := newTestService()

	err := svc.Run(context.Background(), Kind(42))

	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Empty(t, out.String())
	assert.Empty(t, renderer.plots2D)
	assert.Empty(t, renderer.plots3D)
}

func TestRun_PropagatesRendererError(t *testing.T) {
	svc, renderer, _ := newTestService()
	renderer.err = errors.New("display closed")

	err := svc.Run(context.Background(), KindDoubleSlit)
	assert.EqualError(t, err, "display closed")
}
