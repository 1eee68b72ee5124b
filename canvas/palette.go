package canvas

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrNoColor is returned when a buffer index has no palette entry.
var ErrNoColor = errors.New("no color for buffer")

// A Palette assigns a color to each buffer index.
type Palette []color.RGBA

// DefaultPalette is indexed directly by buffer index. Index 0 is never used
// by a valid access and repeats the color of buffer 1.
var DefaultPalette = Palette{
	{R: 218, G: 102, B: 114, A: 0xff},
	{R: 218, G: 102, B: 114, A: 0xff},
	{R: 105, G: 255, B: 193, A: 0xff},
	{R: 150, G: 135, B: 215, A: 0xff},
	{R: 255, G: 250, B: 205, A: 0xff},
	{R: 210, G: 105, B: 30, A: 0xff},
	{R: 210, G: 180, B: 140, A: 0xff},
	{R: 188, G: 143, B: 143, A: 0xff},
	{R: 255, G: 240, B: 245, A: 0xff},
	{R: 230, G: 230, B: 250, A: 0xff},
	{R: 255, G: 255, B: 240, A: 0xff},
}

// ColorFor returns the color of a buffer.
func (p Palette) ColorFor(buffer int) (color.RGBA, error) {
	if buffer < 0 || buffer >= len(p) {
		return color.RGBA{}, fmt.Errorf("%w %d, palette has %d entries",
			ErrNoColor, buffer, len(p))
	}

	return p[buffer], nil
}
