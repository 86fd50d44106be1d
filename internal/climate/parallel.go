package climate

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelRowThreshold is the minimum row count worth fanning out. Below it
// goroutine overhead dominates.
const parallelRowThreshold = 64

// workers caps the number of row chunks processed concurrently. Zero means
// GOMAXPROCS. Tests pin it to compare serial and parallel runs.
var workers = 0

// forEachRowChunk runs fn over [y0, y1) chunks that together cover [0, h).
// Every cell of a per-row layer is written by exactly one chunk, so results
// do not depend on scheduling.
func forEachRowChunk(h int, fn func(y0, y1 int)) {
	n := workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n <= 1 || h < parallelRowThreshold {
		fn(0, h)
		return
	}

	chunk := (h + n - 1) / n
	var g errgroup.Group
	g.SetLimit(n)
	for start := 0; start < h; start += chunk {
		y0, y1 := start, min(start+chunk, h)
		g.Go(func() error {
			fn(y0, y1)
			return nil
		})
	}
	_ = g.Wait()
}
