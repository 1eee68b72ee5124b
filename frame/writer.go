// Package frame stores canvas snapshots as numbered image files.
package frame

import "image"

// A Writer persists frames.
type Writer interface {
	// WriteFrame stores one frame and returns where it was stored.
	WriteFrame(img image.Image) (string, error)
}
