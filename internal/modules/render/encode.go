package render

import (
	"bytes"
	"fmt"

	"github.com/aristath/quantumlab/internal/modules/scene"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

func knownFormat(format string) bool {
	return format == "svg" || format == "png"
}

// encode draws p onto a canvas of the given size in inches.
func encode(p *plot.Plot, size scene.Size, format string, dpi int) ([]byte, error) {
	w := vg.Length(size.Width) * vg.Inch
	h := vg.Length(size.Height) * vg.Inch

	var buf bytes.Buffer
	switch format {
	case "svg":
		c := vgsvg.New(w, h)
		p.Draw(draw.New(c))
		if _, err := c.WriteTo(&buf); err != nil {
			return nil, err
		}
	case "png":
		c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
		p.Draw(draw.New(c))
		if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return buf.Bytes(), nil
}
