package render

import (
	"github.com/aristath/quantumlab/internal/modules/scene"
	"github.com/google/uuid"
)

// Figure is an encoded image ready for a display.
type Figure struct {
	ID       uuid.UUID
	Slug     string
	Title    string
	Format   string
	Data     []byte
	WidthPx  int
	HeightPx int
	Summary  scene.Summary
}

// NewFigure wraps encoded image data, sizing it in pixels at dpi.
func NewFigure(slug, title, format string, data []byte, size scene.Size, dpi int, summary scene.Summary) Figure {
	return Figure{
		ID:       uuid.New(),
		Slug:     slug,
		Title:    title,
		Format:   format,
		Data:     data,
		WidthPx:  int(size.Width*float64(dpi) + 0.5),
		HeightPx: int(size.Height*float64(dpi) + 0.5),
		Summary:  summary,
	}
}

// ContentType returns the MIME type of the encoded data.
func (f Figure) ContentType() string {
	switch f.Format {
	case "png":
		return "image/png"
	case "svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}

// FileName returns "<slug>.<format>".
func (f Figure) FileName() string {
	return f.Slug + "." + f.Format
}
