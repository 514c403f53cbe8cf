package scene

import "image/color"

// Named colors used by the simulations
var (
	Black   = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	White   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Cyan    = color.NRGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}
	Lime    = color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	Red     = color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	Gray    = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	Magenta = color.NRGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
	Pink    = color.NRGBA{R: 0xff, G: 0x00, B: 0x88, A: 0xff}
)

// Theme is the style every draw call is given explicitly.
type Theme struct {
	Name       string
	Background color.Color
	Foreground color.Color // titles, axes, ticks and default text
}

// DarkBackground is white on black.
func DarkBackground() Theme {
	return Theme{
		Name:       "dark_background",
		Background: Black,
		Foreground: White,
	}
}

// WithAlpha returns c with its opacity scaled to alpha in [0, 1].
func WithAlpha(c color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	switch {
	case alpha <= 0:
		n.A = 0
	case alpha < 1:
		n.A = uint8(float64(n.A)*alpha + 0.5)
	}
	return n
}
