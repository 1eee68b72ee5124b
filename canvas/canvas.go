// Package canvas provides the pixel grid that memory accesses are painted
// onto.
package canvas

import (
	"image"
	"image/color"
)

const (
	// DefaultSize is the side length of the square area given to each
	// buffer.
	DefaultSize = 180

	// BuffersPerRow is the number of buffers laid out side by side.
	BuffersPerRow = 3
)

// A Canvas is a black-initialized RGB pixel grid. It is BuffersPerRow
// buffer areas wide and one buffer area tall.
type Canvas struct {
	size int
	img  *image.RGBA
}

// New creates an all-black canvas where each buffer area is size pixels
// wide and tall.
func New(size int) *Canvas {
	if size <= 0 {
		panic("canvas size must be positive")
	}

	img := image.NewRGBA(image.Rect(0, 0, size*BuffersPerRow, size))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}

	return &Canvas{
		size: size,
		img:  img,
	}
}

// Size returns the side length of a buffer area.
func (c *Canvas) Size() int {
	return c.size
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Image exposes the canvas as an image. The returned image shares pixels with
// the canvas.
func (c *Canvas) Image() image.Image {
	return c.img
}

// At returns the color of the pixel at (x, y).
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// MapCoordinates converts a buffer-relative access position into canvas
// coordinates. Buffer 1 occupies the leftmost area.
func (c *Canvas) MapCoordinates(buffer, row, col int) (x, y int) {
	return col + (buffer-1)*c.size, row
}

// SetRun paints width consecutive pixels, starting at (x, y) and going right.
// Pixels that fall outside the canvas are dropped. It returns the number of
// pixels painted.
func (c *Canvas) SetRun(x, y, width int, clr color.RGBA) int {
	if y < 0 || y >= c.Height() {
		return 0
	}

	clr.A = 0xff

	painted := 0
	for i := 0; i < width; i++ {
		px := x + i
		if px >= c.Width() {
			break
		}

		if px < 0 {
			continue
		}

		c.img.SetRGBA(px, y, clr)
		painted++
	}

	return painted
}

// Fade darkens every pixel by one step per channel. Channels that are already
// zero stay at zero.
func (c *Canvas) Fade() {
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		for ch := i; ch < i+3; ch++ {
			if pix[ch] > 0 {
				pix[ch]--
			}
		}
	}
}
