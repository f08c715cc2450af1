// Package parallel provides the two scheduling primitives shared by the
// graph construction pipeline and the algorithm packages: a fork-join over
// dense index ranges and a chunk-stealing worker loop driven by an atomic
// cursor.
//
// Both primitives are synchronous: the caller's goroutine blocks until every
// worker has returned. A panic inside a worker is recovered, carried across
// the join, and re-raised on the caller's goroutine together with the worker
// stack trace.
package parallel

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Workers returns the degree of parallelism used when the caller does not
// supply one. It is read once per call, never cached globally.
func Workers() int {
	return runtime.GOMAXPROCS(0)
}

// panicError transports a worker panic across the errgroup join.
type panicError struct {
	value any
	stack []byte
}

func (p *panicError) Error() string {
	return fmt.Sprintf("parallel: worker panic: %v\n%s", p.value, p.stack)
}

// Run spawns workers goroutines, each executing fn with its worker index,
// and blocks until all of them have returned. The first non-nil error is
// returned. If a worker panics, Run re-panics on the calling goroutine
// after all other workers have finished.
func Run(workers int, fn func(worker int) error) error {
	if workers < 1 {
		workers = 1
	}

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &panicError{value: r, stack: debug.Stack()}
				}
			}()
			return fn(w)
		})
	}

	err := g.Wait()
	if pe, ok := err.(*panicError); ok {
		panic(pe.Error())
	}

	return err
}

// Cursor is a shared chunk-stealing cursor over a dense index range.
// Workers claim contiguous chunks via Next until the range is exhausted.
type Cursor struct {
	next atomic.Int64
}

// Next claims the next chunk of at most size indices out of [0, total).
// It reports the claimed half-open range and whether any work remains.
func (c *Cursor) Next(size, total int) (lo, hi int, ok bool) {
	lo = int(c.next.Add(int64(size))) - size
	if lo >= total {
		return 0, 0, false
	}
	hi = lo + size
	if hi > total {
		hi = total
	}

	return lo, hi, true
}

// ForEachChunk processes the index range [0, total) with the default number
// of workers, each stealing contiguous chunks of the given size. fn receives
// half-open [lo, hi) ranges; distinct invocations never overlap.
func ForEachChunk(total, size int, fn func(lo, hi int)) {
	if total == 0 {
		return
	}
	if size < 1 {
		size = 1
	}

	var cursor Cursor
	_ = Run(Workers(), func(int) error {
		for {
			lo, hi, ok := cursor.Next(size, total)
			if !ok {
				return nil
			}
			fn(lo, hi)
		}
	})
}
