package di

import (
	"fmt"

	"github.com/aristath/quantumlab/internal/config"
	"github.com/aristath/quantumlab/internal/modules/render"
	"github.com/aristath/quantumlab/internal/viewer"
	"github.com/rs/zerolog"
)

// NewDisplay builds the display named by cfg.Display and returns the image format it needs.
// The native window can only blit raster images, so it switches svg to png.
func NewDisplay(cfg *config.Config, log zerolog.Logger) (render.Display, string, error) {
	switch cfg.Display {
	case config.DisplayBrowser:
		return viewer.New(viewer.Config{
			Addr:        cfg.ViewerAddr,
			OpenBrowser: cfg.OpenBrowser,
			Log:         log,
		}), cfg.Format, nil

	case config.DisplayWindow:
		window, err := render.NewWindowDisplay(log)
		if err != nil {
			return nil, "", err
		}
		if cfg.Format != "png" {
			log.Debug().Str("format", cfg.Format).Msg("Window display renders png")
		}
		return window, "png", nil

	case config.DisplayFile:
		return render.NewFileDisplay(cfg.OutputDir, log), cfg.Format, nil

	default:
		return nil, "", fmt.Errorf("%w: %q", config.ErrUnknownDisplay, cfg.Display)
	}
}
