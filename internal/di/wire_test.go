package di

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/aristath/quantumlab/internal/config"
	"github.com/aristath/quantumlab/internal/modules/lab"
	"github.com/aristath/quantumlab/internal/modules/render"
	"github.com/aristath/quantumlab/internal/viewer"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWire_FileDisplay(t *testing.T) {
	cfg := config.Default()
	cfg.Display = config.DisplayFile
	cfg.OutputDir = t.TempDir()

	var out bytes.Buffer
	container, err := Wire(cfg, &out, zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, container)

	assert.Same(t, cfg, container.Config)
	assert.IsType(t, &render.FileDisplay{}, container.Display)
	assert.NotNil(t, container.Renderer)
	assert.NotNil(t, container.Lab)
	assert.Equal(t, "dark_background", container.Theme.Name)

	// The wired graph runs a simulation end to end
	require.NoError(t, container.Lab.Run(context.Background(), lab.KindParticleInBox))
	assert.Contains(t, out.String(), "--- Visualizing Particle in a Box (n=2) ---")
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "particle-in-box.svg"))
}

func TestWire_BrowserDisplay(t *testing.T) {
	cfg := config.Default()
	cfg.OpenBrowser = false

	container, err := Wire(cfg, &bytes.Buffer{}, zerolog.Nop())
	require.NoError(t, err)

	assert.IsType(t, &viewer.Display{}, container.Display)
}

func TestWire_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "unknown display", mutate: func(c *config.Config) { c.Display = "projector" }},
		{name: "unknown format", mutate: func(c *config.Config) { c.Display = config.DisplayFile; c.Format = "gif" }},
		{name: "zero dpi", mutate: func(c *config.Config) { c.Display = config.DisplayFile; c.DPI = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)

			container, err := Wire(cfg, &bytes.Buffer{}, zerolog.Nop())
			assert.Error(t, err)
			assert.Nil(t, container)
		})
	}
}

func TestNewDisplay_Window(t *testing.T) {
	cfg := config.Default()
	cfg.Display = config.DisplayWindow

	display, format, err := NewDisplay(cfg, zerolog.Nop())
	if !render.WindowAvailable {
		assert.ErrorIs(t, err, render.ErrWindowUnavailable)
		assert.Nil(t, display)
		return
	}

	require.NoError(t, err)
	assert.Equal(t, "png", format)
}
