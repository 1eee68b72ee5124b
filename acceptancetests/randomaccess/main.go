// Command randomaccess renders a randomly generated access log and checks
// that the expected frames are produced.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/heapvis/accesslog"
	"github.com/sarchlab/heapvis/canvas"
	"github.com/sarchlab/heapvis/frame"
	"github.com/sarchlab/heapvis/hooking"
	"github.com/sarchlab/heapvis/render"
)

var (
	numAccess = flag.Int("num-access", 153*20+77, "number of accesses to generate")
	seed      = flag.Int64("seed", 1, "random seed")
	keep      = flag.Bool("keep", false, "keep the generated log and frames")
)

func main() {
	flag.Parse()
	rng := rand.New(rand.NewSource(*seed))

	dir := "heapvis_acceptance_" + xid.New().String()
	err := os.Mkdir(dir, 0o755)
	if err != nil {
		log.Fatal(err)
	}

	if !*keep {
		atexit.Register(func() { os.RemoveAll(dir) })
	}

	logPath := filepath.Join(dir, "dump.txt")
	generateLog(logPath, rng)

	stats := renderLog(logPath, dir)

	mustHaveRenderedAllAccesses(stats)
	mustHaveWrittenAllFrames(dir)

	fmt.Println(stats.Summary())
	atexit.Exit(0)
}

// generateLog writes a log that walks each buffer row by row with random
// jumps, touching all three buffers.
func generateLog(path string, rng *rand.Rand) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	w := accesslog.NewWriter(f)

	var rows, cols [canvas.BuffersPerRow]int
	for i := 0; i < *numAccess; i++ {
		b := rng.Intn(canvas.BuffersPerRow)

		cols[b] += 8
		if cols[b] >= canvas.DefaultSize || rng.Intn(50) == 0 {
			cols[b] = rng.Intn(canvas.DefaultSize)
			rows[b] = (rows[b] + 1) % canvas.DefaultSize
		}

		w.Write(accesslog.Event{
			Kind:   accesslog.KindAccess,
			Buffer: b + 1,
			Row:    rows[b],
			Col:    cols[b],
		})
	}

	err = w.Flush()
	if err != nil {
		log.Fatal(err)
	}
}

func renderLog(logPath, dir string) *hooking.StatsHook {
	f, err := os.Open(logPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	stats := hooking.NewStatsHook()
	r := render.MakeBuilder().
		WithFrameWriter(frame.NewBMPWriter(dir)).
		Build()
	r.AcceptHook(stats)

	err = r.Run(accesslog.NewReader(f))
	if err != nil {
		log.Fatal(err)
	}

	return stats
}

func mustHaveRenderedAllAccesses(stats *hooking.StatsHook) {
	if stats.Accesses != uint64(*numAccess) {
		log.Panicf("rendered %d accesses, expected %d",
			stats.Accesses, *numAccess)
	}

	expectedFrames := uint64(*numAccess / 153)
	if stats.Frames != expectedFrames {
		log.Panicf("saved %d frames, expected %d", stats.Frames, expectedFrames)
	}
}

func mustHaveWrittenAllFrames(dir string) {
	for i := 1; i <= *numAccess/153; i++ {
		name := fmt.Sprintf("heap%d.bmp", frame.FirstCounter+i)

		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			log.Panicf("frame %s is missing: %v", name, err)
		}

		if info.Size() == 0 {
			log.Panicf("frame %s is empty", name)
		}
	}
}
