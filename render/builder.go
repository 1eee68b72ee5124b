package render

import (
	"github.com/sarchlab/heapvis/canvas"
	"github.com/sarchlab/heapvis/frame"
)

// Builder can build renderers.
type Builder struct {
	canvasSize   int
	palette      canvas.Palette
	writer       frame.Writer
	fadeInterval uint64
	saveInterval uint64
	narrowWidth  int
	wideWidth    int
}

// MakeBuilder returns a Builder with the default parameters.
func MakeBuilder() Builder {
	return Builder{
		canvasSize:   canvas.DefaultSize,
		palette:      canvas.DefaultPalette,
		fadeInterval: 15,
		saveInterval: 153,
		narrowWidth:  1,
		wideWidth:    8,
	}
}

// WithCanvasSize sets the side length of each buffer area.
func (b Builder) WithCanvasSize(size int) Builder {
	b.canvasSize = size
	return b
}

// WithPalette sets the colors used for each buffer.
func (b Builder) WithPalette(palette canvas.Palette) Builder {
	b.palette = palette
	return b
}

// WithFrameWriter sets where frames are saved.
func (b Builder) WithFrameWriter(w frame.Writer) Builder {
	b.writer = w
	return b
}

// WithFadeInterval sets the number of accesses between two fades.
func (b Builder) WithFadeInterval(n uint64) Builder {
	b.fadeInterval = n
	return b
}

// WithSaveInterval sets the number of accesses between two saved frames.
func (b Builder) WithSaveInterval(n uint64) Builder {
	b.saveInterval = n
	return b
}

// WithRunWidths sets how many pixels an access paints, for the narrow buffer
// and for all other buffers.
func (b Builder) WithRunWidths(narrow, wide int) Builder {
	b.narrowWidth = narrow
	b.wideWidth = wide
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.writer == nil {
		panic("frame writer is not set")
	}

	if b.fadeInterval == 0 || b.saveInterval == 0 {
		panic("fade and save intervals must be positive")
	}

	if len(b.palette) == 0 {
		panic("palette is empty")
	}
}

// Build creates a renderer with an all-black canvas.
func (b Builder) Build() *Renderer {
	b.parametersMustBeValid()

	return &Renderer{
		canvas:       canvas.New(b.canvasSize),
		palette:      b.palette,
		writer:       b.writer,
		fadeInterval: b.fadeInterval,
		saveInterval: b.saveInterval,
		narrowWidth:  b.narrowWidth,
		wideWidth:    b.wideWidth,
	}
}
