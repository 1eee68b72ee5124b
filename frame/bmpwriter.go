package frame

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

// FirstCounter is the counter value before the first frame is written. The
// counter has a fixed number of digits so that file names sort in the order
// the frames were written.
const FirstCounter = 10000000

// BMPWriter writes each frame to a BMP file named <prefix><counter>.bmp.
type BMPWriter struct {
	dir     string
	prefix  string
	counter int
	written int
}

// NewBMPWriter creates a BMPWriter that writes heap<counter>.bmp files into
// dir. An empty dir means the current working directory.
func NewBMPWriter(dir string) *BMPWriter {
	return &BMPWriter{
		dir:     dir,
		prefix:  "heap",
		counter: FirstCounter,
	}
}

// WithPrefix sets the file name prefix.
func (w *BMPWriter) WithPrefix(prefix string) *BMPWriter {
	w.prefix = prefix
	return w
}

// Counter returns the counter of the last frame written.
func (w *BMPWriter) Counter() int {
	return w.counter
}

// Written returns the number of frames written.
func (w *BMPWriter) Written() int {
	return w.written
}

// WriteFrame encodes img as a BMP file. Fully opaque images are stored with
// 24 bits per pixel.
func (w *BMPWriter) WriteFrame(img image.Image) (string, error) {
	w.counter++

	path := filepath.Join(w.dir, fmt.Sprintf("%s%d.bmp", w.prefix, w.counter))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating frame %s: %w", path, err)
	}

	err = bmp.Encode(f, img)
	if err != nil {
		f.Close()
		return "", fmt.Errorf("encoding frame %s: %w", path, err)
	}

	err = f.Close()
	if err != nil {
		return "", fmt.Errorf("closing frame %s: %w", path, err)
	}

	w.written++

	return path, nil
}
