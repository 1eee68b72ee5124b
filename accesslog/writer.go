package accesslog

import (
	"bufio"
	"fmt"
	"io"
)

// A Writer serializes events into the access log format.
type Writer struct {
	w          *bufio.Writer
	events     []Event
	bufferSize int
	err        error
}

// NewWriter creates a Writer that writes to w. Events are buffered and
// written out in batches.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:          bufio.NewWriter(w),
		bufferSize: 1000,
	}
}

// Write queues an event to be written.
func (w *Writer) Write(evt Event) {
	w.events = append(w.events, evt)
	if len(w.events) >= w.bufferSize {
		w.err = w.flushEvents()
	}
}

// Flush writes all the queued events. It returns the first error encountered
// since the writer was created.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}

	if err := w.flushEvents(); err != nil {
		w.err = err
		return err
	}

	return w.w.Flush()
}

func (w *Writer) flushEvents() error {
	if w.err != nil {
		return w.err
	}

	for _, evt := range w.events {
		if _, err := fmt.Fprintln(w.w, evt.String()); err != nil {
			return err
		}
	}

	w.events = nil

	return nil
}
