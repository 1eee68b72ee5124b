package hooking

import "fmt"

// StatsHook counts what the renderer has done.
type StatsHook struct {
	Accesses uint64
	Pixels   uint64
	Skipped  uint64
	Fades    uint64
	Frames   uint64
	Clipped  uint64

	LastFrame string
}

// NewStatsHook creates a new StatsHook.
func NewStatsHook() *StatsHook {
	return &StatsHook{}
}

// Func updates the counters.
func (h *StatsHook) Func(ctx HookCtx) {
	switch ctx.Pos {
	case HookPosAccessDrawn:
		h.Accesses++

		detail, ok := ctx.Detail.(AccessDetail)
		if !ok {
			return
		}

		h.Pixels += uint64(detail.Painted)
		if detail.Painted < detail.Width {
			h.Clipped++
		}
	case HookPosEventSkipped:
		h.Skipped++
	case HookPosCanvasFaded:
		h.Fades++
	case HookPosFrameSaved:
		h.Frames++
		h.LastFrame, _ = ctx.Item.(string)
	}
}

// Summary reports the counters in one line.
func (h *StatsHook) Summary() string {
	s := fmt.Sprintf(
		"%d accesses, %d pixels (%d clipped runs), %d skipped, "+
			"%d fades, %d frames",
		h.Accesses, h.Pixels, h.Clipped, h.Skipped, h.Fades, h.Frames)

	if h.LastFrame != "" {
		s += ", last frame " + h.LastFrame
	}

	return s
}
