// Package lab runs the simulations: evaluate a field, describe it as a scene, hand it to the renderer.
package lab

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aristath/quantumlab/internal/modules/quantum"
	"github.com/aristath/quantumlab/internal/modules/sampler"
	"github.com/aristath/quantumlab/internal/modules/scene"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrUnknownKind is returned for a simulation the lab does not have.
var ErrUnknownKind = errors.New("unknown simulation")

// Renderer draws scenes. Both calls block until the figure is dismissed.
type Renderer interface {
	Draw2D(ctx context.Context, s scene.Plot2D, theme scene.Theme) error
	Draw3D(ctx context.Context, s scene.Plot3D, theme scene.Theme) error
}

// Service runs simulations against a renderer
type Service struct {
	renderer Renderer
	theme    scene.Theme
	out      io.Writer
	log      zerolog.Logger
}

// NewService creates a new lab service. Headers are printed to out.
func NewService(renderer Renderer, theme scene.Theme, out io.Writer, log zerolog.Logger) *Service {
	return &Service{
		renderer: renderer,
		theme:    theme,
		out:      out,
		log:      log.With().Str("service", "lab").Logger(),
	}
}

// Run executes the default variant of a simulation.
func (s *Service) Run(ctx context.Context, kind Kind) error {
	switch kind {
	case KindDoubleSlit:
		return s.DoubleSlit(ctx)
	case KindParticleInBox:
		return s.ParticleInBox(ctx, quantum.DefaultBoxParams())
	case KindBlochSphere:
		return s.BlochSphere(ctx, BlochOptions{})
	case KindTunneling:
		return s.Tunneling(ctx)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}

// DoubleSlit plots the two-slit interference density over [-10, 10].
func (s *Service) DoubleSlit(ctx context.Context) error {
	s.header("Visualizing Double Slit Interference")

	grid := sampler.Linspace(sampler.SlitLow, sampler.SlitHigh, sampler.SlitPoints)
	field, err := quantum.DoubleSlit(grid, quantum.DefaultSlitParams())
	if err != nil {
		return fmt.Errorf("failed to evaluate interference: %w", err)
	}

	peakX, peak := quantum.Peak(field.Grid, field.Density)
	s.log.Info().
		Int("points", len(grid)).
		Float64("wavelength", field.Params.Wavelength).
		Float64("slit_distance", field.Params.SlitDistance).
		Float64("peak_x", peakX).
		Float64("peak_density", peak).
		Msg("Interference evaluated")

	return s.renderer.Draw2D(ctx, scene.Plot2D{
		Slug:      "double-slit",
		Title:     "Double Slit Interference Pattern",
		Size:      scene.Wide,
		X:         field.Grid,
		Y:         field.Density,
		Color:     scene.Cyan,
		FillAlpha: 0.3,
	}, s.theme)
}

// ParticleInBox plots the level-n density of an infinite well, with walls marked at 0 and L.
func (s *Service) ParticleInBox(ctx context.Context, params quantum.BoxParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	s.header(fmt.Sprintf("Visualizing Particle in a Box (n=%d)", params.Level))

	grid := sampler.Linspace(0, params.Width, sampler.BoxPoints)
	box, err := quantum.ParticleInBox(grid, params)
	if err != nil {
		return fmt.Errorf("failed to evaluate particle in a box: %w", err)
	}

	s.log.Info().
		Int("level", params.Level).
		Float64("width", params.Width).
		Float64("norm", quantum.Normalization(box.Grid, box.Density)).
		Floats64("nodes", params.Nodes()).
		Msg("Box wavefunction evaluated")

	return s.renderer.Draw2D(ctx, scene.Plot2D{
		Slug:      "particle-in-box",
		Title:     fmt.Sprintf("Particle in a Box (Level %d)", params.Level),
		Size:      scene.Wide,
		X:         box.Grid,
		Y:         box.Density,
		Color:     scene.Lime,
		FillAlpha: 0.3,
		Markers: []scene.Marker{
			{X: 0, Color: scene.Red},
			{X: params.Width, Color: scene.Red},
		},
	}, s.theme)
}

// BlochOptions selects the arrow drawn on the Bloch sphere.
type BlochOptions struct {
	// State overrides the illustrative (1,0,0) arrow when set.
	State *r3.Vec
	// PoleLabels adds |0⟩, |1⟩, |+⟩ and |−⟩ next to the axes.
	PoleLabels bool
}

// BlochSphere draws the unit-sphere wireframe with a state arrow and its label.
func (s *Service) BlochSphere(ctx context.Context, opts BlochOptions) error {
	s.header("Visualizing Qubit (Superposition)")

	mesh := sampler.SphereMesh()
	sphere := quantum.BlochSphere(mesh)

	state := quantum.IllustrativeState()
	if opts.State != nil {
		state = *opts.State
	}

	labels := []scene.Label{{Position: r3.Vec{X: 1.2}, Text: "|Ψ⟩ Superposition", Color: scene.White}}
	if opts.PoleLabels {
		labels = append(labels,
			scene.Label{Position: r3.Vec{Z: 1.15}, Text: "|0⟩", Color: scene.Cyan},
			scene.Label{Position: r3.Vec{Z: -1.25}, Text: "|1⟩", Color: scene.Cyan},
			scene.Label{Position: r3.Vec{Y: 1.15}, Text: "|+⟩", Color: scene.Cyan},
			scene.Label{Position: r3.Vec{Y: -1.25}, Text: "|−⟩", Color: scene.Cyan},
		)
	}

	s.log.Info().
		Int("rows", sphere.Rows).
		Int("cols", sphere.Cols).
		Float64("state_x", state.X).
		Float64("state_y", state.Y).
		Float64("state_z", state.Z).
		Msg("Bloch sphere evaluated")

	return s.renderer.Draw3D(ctx, scene.Plot3D{
		Slug:  "bloch-sphere",
		Title: "Bloch Sphere Visualization",
		Size:  scene.Square,
		Surface: scene.Surface{
			Rows:   sphere.Rows,
			Cols:   sphere.Cols,
			Points: sphere.Points,
			Color:  scene.Gray,
			Alpha:  0.2,
		},
		Arrow: scene.Arrow{
			Origin:    r3.Vec{},
			Direction: state,
			Length:    1.0,
			Color:     scene.Magenta,
			Width:     3,
		},
		Labels: labels,
	}, s.theme)
}

// Tunneling draws one frame of a wave packet approaching a potential barrier.
func (s *Service) Tunneling(ctx context.Context) error {
	s.header("Visualizing Quantum Tunneling")

	params := quantum.DefaultPacketParams()
	grid := sampler.Linspace(sampler.SlitLow, sampler.SlitHigh, sampler.SlitPoints)
	packet := quantum.WavePacket(grid, params)

	s.log.Info().
		Float64("center", params.Center).
		Float64("barrier_low", params.BarrierLow).
		Float64("barrier_high", params.BarrierHigh).
		Msg("Wave packet evaluated")

	return s.renderer.Draw2D(ctx, scene.Plot2D{
		Slug:  "tunneling",
		Title: "Quantum Tunneling Effect",
		Size:  scene.Wide,
		X:     packet.Grid,
		Y:     packet.Amplitude,
		Color: scene.Lime,
		Bands: []scene.Band{{
			Low:   params.BarrierLow,
			High:  params.BarrierHigh,
			Color: scene.Pink,
			Label: "Barrier",
		}},
	}, s.theme)
}

func (s *Service) header(title string) {
	fmt.Fprintf(s.out, "\n--- %s ---\n", title)
}
