package renderer

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// WorkerPool renders tiles in parallel with a bounded number of goroutines
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Run calls render once per tile and waits for all of them. Tiles never
// overlap, so render may write its pixels without synchronization. The
// first error returned by any tile is reported.
func (wp *WorkerPool) Run(tiles []*Tile, render func(tile *Tile) error) error {
	var g errgroup.Group
	g.SetLimit(wp.numWorkers)
	for _, tile := range tiles {
		g.Go(func() error {
			return render(tile)
		})
	}
	return g.Wait()
}
