//go:build window

package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// WindowAvailable reports whether this build can open native windows.
const WindowAvailable = true

// WindowDisplay shows a PNG figure in a native window sized to the figure.
type WindowDisplay struct {
	log zerolog.Logger
}

// NewWindowDisplay creates a native window display
func NewWindowDisplay(log zerolog.Logger) (*WindowDisplay, error) {
	return &WindowDisplay{log: log.With().Str("display", "window").Logger()}, nil
}

// figureWindow is the ebiten game that paints one still image.
type figureWindow struct {
	ctx   context.Context
	image *ebiten.Image
	w, h  int
}

func (g *figureWindow) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	return nil
}

func (g *figureWindow) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.image, nil)
}

func (g *figureWindow) Layout(int, int) (int, int) {
	return g.w, g.h
}

// Show blocks until the window is closed or ctx is done.
func (d *WindowDisplay) Show(ctx context.Context, fig Figure) error {
	if fig.Format != "png" {
		return fmt.Errorf("%w: window display needs png, got %q", ErrUnknownFormat, fig.Format)
	}

	img, _, err := image.Decode(bytes.NewReader(fig.Data))
	if err != nil {
		return fmt.Errorf("failed to decode figure: %w", err)
	}

	b := img.Bounds()
	ebiten.SetWindowTitle(fig.Title)
	ebiten.SetWindowSize(b.Dx(), b.Dy())

	d.log.Info().Str("figure_id", fig.ID.String()).Int("width", b.Dx()).Int("height", b.Dy()).Msg("Opening window")
	if err := ebiten.RunGame(&figureWindow{
		ctx:   ctx,
		image: ebiten.NewImageFromImage(img),
		w:     b.Dx(),
		h:     b.Dy(),
	}); err != nil {
		return err
	}
	return ctx.Err()
}
