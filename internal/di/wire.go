// Package di provides dependency injection wiring and initialization.
package di

import (
	"fmt"
	"io"

	"github.com/aristath/quantumlab/internal/config"
	"github.com/aristath/quantumlab/internal/modules/lab"
	"github.com/aristath/quantumlab/internal/modules/render"
	"github.com/aristath/quantumlab/internal/modules/scene"
	"github.com/rs/zerolog"
)

// Wire initializes all dependencies and returns a fully configured container
// Order of operations:
// 1. Build the display named in the configuration
// 2. Build the renderer on top of it
// 3. Build the lab service, which prints simulation headers to out
func Wire(cfg *config.Config, out io.Writer, log zerolog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Theme:  scene.DarkBackground(),
	}

	// Step 1: Display
	display, format, err := NewDisplay(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize display: %w", err)
	}
	container.Display = display

	// Step 2: Renderer
	renderer, err := render.New(render.Config{
		Format:  format,
		DPI:     cfg.DPI,
		Display: display,
		Log:     log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}
	container.Renderer = renderer

	// Step 3: Simulations
	container.Lab = lab.NewService(renderer, container.Theme, out, log)

	log.Debug().
		Str("display", cfg.Display).
		Str("format", format).
		Int("dpi", cfg.DPI).
		Msg("Dependencies wired")

	return container, nil
}
