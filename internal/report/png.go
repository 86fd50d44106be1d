package report

import (
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"io"

	"biome-painter/internal/core"
	"biome-painter/internal/render"
)

// ErrDisplaySize is returned when a display buffer does not match its size.
var ErrDisplaySize = errors.New("report: display buffer does not match size")

// WritePNG encodes a palette-indexed display buffer as a PNG image.
func WritePNG(w io.Writer, size core.Size, cells []uint8, palette []color.RGBA) error {
	img := render.PaletteImage(size.W, size.H, cells, palette)
	if img == nil {
		return fmt.Errorf("%w: %d cells for %dx%d", ErrDisplaySize, len(cells), size.W, size.H)
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
