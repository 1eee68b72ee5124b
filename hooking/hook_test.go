package hooking

import (
	"bytes"
	"image/color"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/heapvis/accesslog"
)

var _ = Describe("HookableBase", func() {
	It("should invoke hooks in registration order", func() {
		var order []string
		base := &HookableBase{}

		base.AcceptHook(HookFunc(func(HookCtx) { order = append(order, "a") }))
		base.AcceptHook(HookFunc(func(HookCtx) { order = append(order, "b") }))
		base.InvokeHook(HookCtx{Pos: HookPosCanvasFaded})

		Expect(base.NumHooks()).To(Equal(2))
		Expect(order).To(Equal([]string{"a", "b"}))
	})
})

var _ = Describe("AccessLogger", func() {
	var (
		buf    *bytes.Buffer
		logger *AccessLogger
	)

	BeforeEach(func() {
		buf = new(bytes.Buffer)
		logger = NewAccessLogger(log.New(buf, "", 0))
	})

	It("should log drawn accesses", func() {
		logger.Func(HookCtx{
			Pos:  HookPosAccessDrawn,
			Item: accesslog.Event{Kind: accesslog.KindAccess, Buffer: 1, Row: 30, Col: 40},
			Detail: AccessDetail{
				X: 40, Y: 30,
				Color:   color.RGBA{R: 218, G: 102, B: 114, A: 0xff},
				Width:   8,
				Painted: 8,
			},
		})

		Expect(buf.String()).To(Equal(
			"a 1 30 40 -> (40, 30) rgb(218, 102, 114) x8\n"))
	})

	It("should log saved frames", func() {
		logger.Func(HookCtx{
			Pos:    HookPosFrameSaved,
			Item:   "heap10000001.bmp",
			Detail: uint64(153),
		})

		Expect(buf.String()).To(Equal(
			"frame heap10000001.bmp after 153 accesses\n"))
	})

	It("should ignore other positions", func() {
		logger.Func(HookCtx{Pos: HookPosCanvasFaded, Item: uint64(15)})

		Expect(buf.Len()).To(BeZero())
	})
})

var _ = Describe("StatsHook", func() {
	It("should count renderer activity", func() {
		h := NewStatsHook()

		h.Func(HookCtx{Pos: HookPosAccessDrawn,
			Detail: AccessDetail{Width: 8, Painted: 8}})
		h.Func(HookCtx{Pos: HookPosAccessDrawn,
			Detail: AccessDetail{Width: 8, Painted: 3}})
		h.Func(HookCtx{Pos: HookPosEventSkipped})
		h.Func(HookCtx{Pos: HookPosCanvasFaded})
		h.Func(HookCtx{Pos: HookPosFrameSaved, Item: "heap10000001.bmp"})

		Expect(h.Accesses).To(Equal(uint64(2)))
		Expect(h.Pixels).To(Equal(uint64(11)))
		Expect(h.Clipped).To(Equal(uint64(1)))
		Expect(h.Skipped).To(Equal(uint64(1)))
		Expect(h.Fades).To(Equal(uint64(1)))
		Expect(h.Frames).To(Equal(uint64(1)))
		Expect(h.Summary()).To(Equal(
			"2 accesses, 11 pixels (1 clipped runs), 1 skipped, " +
				"1 fades, 1 frames, last frame heap10000001.bmp"))
	})
})
