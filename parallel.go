package slideconv

import (
	"runtime"
	"sync"
)

// DefaultMinParallelPixels is the smallest pixel count that is split across workers.
const DefaultMinParallelPixels = 1 << 16

// Options controls how a conversion is scheduled.
type Options struct {
	// Workers limits the number of goroutines, 0 uses GOMAXPROCS and 1 runs serially.
	Workers int
	// MinParallelPixels is the pixel count below which the conversion runs on the calling goroutine.
	MinParallelPixels int
}

// WithWorkers limits the number of goroutines used by a conversion.
func WithWorkers(n int) func(o *Options) {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithMinParallelPixels sets the pixel count threshold for splitting work.
func WithMinParallelPixels(n int) func(o *Options) {
	return func(o *Options) {
		o.MinParallelPixels = n
	}
}

func newOptions(opts []func(o *Options)) Options {
	opt := Options{
		MinParallelPixels: DefaultMinParallelPixels,
	}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	return opt
}

var (
	workerSemOnce sync.Once
	workerSem     chan struct{}
)

// parallelFor calls fn over [0, total) split into contiguous ranges.
// Ranges never overlap, so fn needs no synchronization when it only touches its own range.
func parallelFor(total int, opt Options, fn func(start, end int)) {
	if total <= 0 {
		return
	}
	if total < opt.MinParallelPixels {
		fn(0, total)
		return
	}
	workerSemOnce.Do(func() {
		workerSem = make(chan struct{}, runtime.GOMAXPROCS(0))
	})
	workers := cap(workerSem)
	if opt.Workers > 0 && workers > opt.Workers {
		workers = opt.Workers
	}
	if workers > total {
		workers = total
	}
	if workers <= 1 {
		fn(0, total)
		return
	}

	Logger().Debug("slideconv: parallel conversion", "pixels", total, "workers", workers)

	step := (total + workers - 1) / workers
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * step
		end := start + step
		if end > total {
			end = total
		}
		if start >= end {
			break
		}
		workerSem <- struct{}{}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			defer func() { <-workerSem }()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
