// Package render draws scenes with gonum/plot, encodes them as SVG or PNG and hands the
// resulting figure to a Display.
package render

import (
	"context"
	"errors"
	"fmt"

	"github.com/aristath/quantumlab/internal/modules/scene"
	"github.com/rs/zerolog"
	"gonum.org/v1/plot"
)

var (
	// ErrUnknownFormat is returned for an image format other than svg or png.
	ErrUnknownFormat = errors.New("unknown image format")
	// ErrEmptySeries is returned when a 2-D scene has no samples.
	ErrEmptySeries = errors.New("scene has no samples")
	// ErrMismatchedSeries is returned when x and y differ in length.
	ErrMismatchedSeries = errors.New("x and y lengths differ")
	// ErrMalformedSurface is returned when a surface's point count is not rows×cols.
	ErrMalformedSurface = errors.New("surface point count does not match its shape")
)

// Config holds renderer configuration
type Config struct {
	Format  string // svg or png
	DPI     int
	Display Display
	Camera  Camera
	Log     zerolog.Logger
}

// Renderer draws scenes and shows them on its display.
type Renderer struct {
	format  string
	dpi     int
	display Display
	camera  Camera
	log     zerolog.Logger
}

// New creates a new renderer
func New(cfg Config) (*Renderer, error) {
	if !knownFormat(cfg.Format) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}
	if cfg.DPI <= 0 {
		return nil, fmt.Errorf("dpi must be positive, got %d", cfg.DPI)
	}
	if cfg.Display == nil {
		return nil, errors.New("renderer needs a display")
	}

	camera := cfg.Camera
	if camera == (Camera{}) {
		camera = DefaultCamera()
	}

	return &Renderer{
		format:  cfg.Format,
		dpi:     cfg.DPI,
		display: cfg.Display,
		camera:  camera,
		log:     cfg.Log.With().Str("component", "renderer").Logger(),
	}, nil
}

// Draw2D draws a filled curve and blocks until the display is dismissed.
func (r *Renderer) Draw2D(ctx context.Context, s scene.Plot2D, theme scene.Theme) error {
	p, err := build2D(s, theme)
	if err != nil {
		return fmt.Errorf("failed to build %s: %w", s.Slug, err)
	}
	return r.show(ctx, p, s.Slug, s.Title, s.Size, s.Summary())
}

// Draw3D draws a wireframe with an arrow and labels and blocks until the display is dismissed.
func (r *Renderer) Draw3D(ctx context.Context, s scene.Plot3D, theme scene.Theme) error {
	p, err := build3D(s, theme, r.camera)
	if err != nil {
		return fmt.Errorf("failed to build %s: %w", s.Slug, err)
	}
	return r.show(ctx, p, s.Slug, s.Title, s.Size, s.Summary())
}

func (r *Renderer) show(ctx context.Context, p *plot.Plot, slug, title string, size scene.Size, summary scene.Summary) error {
	data, err := encode(p, size, r.format, r.dpi)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", slug, err)
	}

	fig := NewFigure(slug, title, r.format, data, size, r.dpi, summary)
	r.log.Debug().
		Str("figure_id", fig.ID.String()).
		Str("slug", slug).
		Str("format", r.format).
		Int("bytes", len(data)).
		Msg("Figure encoded")

	if err := r.display.Show(ctx, fig); err != nil {
		return fmt.Errorf("failed to show %s: %w", slug, err)
	}
	return nil
}
