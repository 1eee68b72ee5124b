package hooking

import "image/color"

// The positions a renderer invokes hooks at.
var (
	// HookPosAccessDrawn is invoked after an access is painted. Item is the
	// accesslog.Event, Detail is an AccessDetail.
	HookPosAccessDrawn = &HookPos{Name: "AccessDrawn"}

	// HookPosEventSkipped is invoked for events that are not painted. Item
	// is the accesslog.Event.
	HookPosEventSkipped = &HookPos{Name: "EventSkipped"}

	// HookPosCanvasFaded is invoked after the canvas fades. Item is the
	// number of accesses processed so far.
	HookPosCanvasFaded = &HookPos{Name: "CanvasFaded"}

	// HookPosFrameSaved is invoked after a frame is written. Item is the
	// path of the frame, Detail is the number of accesses processed so far.
	HookPosFrameSaved = &HookPos{Name: "FrameSaved"}
)

// AccessDetail describes where and how an access was painted.
type AccessDetail struct {
	X, Y    int
	Color   color.RGBA
	Width   int
	Painted int
}
