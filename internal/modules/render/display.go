package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Display shows a figure. Show blocks until the figure is dismissed or ctx is done.
type Display interface {
	Show(ctx context.Context, fig Figure) error
}

// FileDisplay writes each figure into a directory and returns immediately.
type FileDisplay struct {
	dir string
	log zerolog.Logger
}

// NewFileDisplay creates a display writing into dir
func NewFileDisplay(dir string, log zerolog.Logger) *FileDisplay {
	return &FileDisplay{
		dir: dir,
		log: log.With().Str("display", "file").Logger(),
	}
}

// Show writes the figure to <dir>/<slug>.<format>.
func (d *FileDisplay) Show(ctx context.Context, fig Figure) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(d.dir, fig.FileName())
	if err := os.WriteFile(path, fig.Data, 0644); err != nil {
		return fmt.Errorf("failed to write figure: %w", err)
	}

	d.log.Info().Str("path", path).Str("figure_id", fig.ID.String()).Msg("Figure written")
	return nil
}
