// Package render turns a stream of memory accesses into a sequence of
// frames. Recent accesses are bright, older ones fade towards black.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/sarchlab/heapvis/accesslog"
	"github.com/sarchlab/heapvis/canvas"
	"github.com/sarchlab/heapvis/frame"
	"github.com/sarchlab/heapvis/hooking"
)

// narrowBuffer is painted one pixel wide, all other buffers eight.
const narrowBuffer = 2

// EventSource provides events until it returns io.EOF.
type EventSource interface {
	Next() (accesslog.Event, error)
}

// A Renderer paints accesses onto a canvas, fades the canvas periodically,
// and saves periodic frames.
type Renderer struct {
	hooking.HookableBase

	canvas  *canvas.Canvas
	palette canvas.Palette
	writer  frame.Writer

	fadeInterval uint64
	saveInterval uint64
	narrowWidth  int
	wideWidth    int

	eventCount uint64
}

// Canvas returns the canvas being painted.
func (r *Renderer) Canvas() *canvas.Canvas {
	return r.canvas
}

// EventCount returns the number of accesses processed.
func (r *Renderer) EventCount() uint64 {
	return r.eventCount
}

// Run handles events from src until it is exhausted. The first error stops
// the run. Accesses after the last saved frame are not saved.
func (r *Renderer) Run(src EventSource) error {
	for {
		evt, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		err = r.Handle(evt)
		if err != nil {
			return err
		}
	}
}

// Handle processes one event. Events that are not accesses leave the canvas
// and the counters untouched.
func (r *Renderer) Handle(evt accesslog.Event) error {
	if !evt.IsAccess() {
		r.InvokeHook(hooking.HookCtx{
			Domain: r,
			Pos:    hooking.HookPosEventSkipped,
			Item:   evt,
		})

		return nil
	}

	err := r.draw(evt)
	if err != nil {
		return err
	}

	r.eventCount++

	if r.eventCount%r.saveInterval == 0 {
		err = r.saveFrame()
		if err != nil {
			return err
		}
	}

	if r.eventCount%r.fadeInterval == 0 {
		r.fade()
	}

	return nil
}

func (r *Renderer) draw(evt accesslog.Event) error {
	clr, err := r.palette.ColorFor(evt.Buffer)
	if err != nil {
		return fmt.Errorf("drawing %s: %w", evt, err)
	}

	x, y := r.canvas.MapCoordinates(evt.Buffer, evt.Row, evt.Col)

	width := r.wideWidth
	if evt.Buffer == narrowBuffer {
		width = r.narrowWidth
	}

	painted := r.canvas.SetRun(x, y, width, clr)

	r.InvokeHook(hooking.HookCtx{
		Domain: r,
		Pos:    hooking.HookPosAccessDrawn,
		Item:   evt,
		Detail: hooking.AccessDetail{
			X:       x,
			Y:       y,
			Color:   clr,
			Width:   width,
			Painted: painted,
		},
	})

	return nil
}

func (r *Renderer) fade() {
	r.canvas.Fade()

	r.InvokeHook(hooking.HookCtx{
		Domain: r,
		Pos:    hooking.HookPosCanvasFaded,
		Item:   r.eventCount,
	})
}

func (r *Renderer) saveFrame() error {
	path, err := r.writer.WriteFrame(r.canvas.Image())
	if err != nil {
		return fmt.Errorf("saving frame after %d accesses: %w",
			r.eventCount, err)
	}

	r.InvokeHook(hooking.HookCtx{
		Domain: r,
		Pos:    hooking.HookPosFrameSaved,
		Item:   path,
		Detail: r.eventCount,
	})

	return nil
}
