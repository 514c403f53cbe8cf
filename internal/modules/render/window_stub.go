//go:build !window

package render

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// WindowAvailable reports whether this build can open native windows.
const WindowAvailable = false

// ErrWindowUnavailable is returned when the binary was built without the window tag.
var ErrWindowUnavailable = errors.New("native window display not compiled in (build with -tags window)")

// WindowDisplay is unavailable in this build.
type WindowDisplay struct{}

// NewWindowDisplay always fails without the window build tag
func NewWindowDisplay(zerolog.Logger) (*WindowDisplay, error) {
	return nil, ErrWindowUnavailable
}

// Show is never reached; NewWindowDisplay does not return a value.
func (d *WindowDisplay) Show(context.Context, Figure) error {
	return ErrWindowUnavailable
}
