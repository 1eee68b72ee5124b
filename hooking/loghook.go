package hooking

import (
	"log"

	"github.com/sarchlab/heapvis/accesslog"
)

// A LogHook is a hook that is resonsible for recording information from the
// renderer.
type LogHook interface {
	Hook
}

// LogHookBase provides the common logic for all LogHooks.
type LogHookBase struct {
	*log.Logger
}

// AccessLogger is a hook that prints every painted access and every saved
// frame.
type AccessLogger struct {
	LogHookBase
}

// NewAccessLogger returns a new AccessLogger which will write into the
// logger.
func NewAccessLogger(logger *log.Logger) *AccessLogger {
	h := new(AccessLogger)
	h.Logger = logger
	return h
}

// Func writes the access information into the logger.
func (h *AccessLogger) Func(ctx HookCtx) {
	switch ctx.Pos {
	case HookPosAccessDrawn:
		evt, ok := ctx.Item.(accesslog.Event)
		if !ok {
			return
		}

		detail, ok := ctx.Detail.(AccessDetail)
		if !ok {
			return
		}

		h.Logger.Printf("%s -> (%d, %d) rgb(%d, %d, %d) x%d",
			evt, detail.X, detail.Y,
			detail.Color.R, detail.Color.G, detail.Color.B,
			detail.Painted)
	case HookPosFrameSaved:
		h.Logger.Printf("frame %v after %v accesses", ctx.Item, ctx.Detail)
	}
}
