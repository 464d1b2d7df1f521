package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile          *Tile
	TargetSamples int
	PixelStats    [][]PixelStats // Shared pixel stats array to write to
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TileID int
	Stats  RenderStats
}

// WorkerPool renders the tiles of one frame in parallel
type WorkerPool struct {
	renderer   *TileRenderer
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers (0 = CPU count)
func NewWorkerPool(renderer *TileRenderer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{renderer: renderer, numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// RenderFrame renders every task and returns once all of them are done.
// Tiles never overlap, so each pixel is written by exactly one goroutine and
// each tile draws only from its own sampler. Tiles not yet started when ctx
// is cancelled are skipped and the context error is returned.
func (wp *WorkerPool) RenderFrame(ctx context.Context, tasks []TileTask) ([]TileResult, error) {
	results := make([]TileResult, len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(wp.numWorkers)

	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			stats := wp.renderer.RenderTileBounds(task.Tile.Bounds, task.PixelStats, task.Tile.Sampler, task.TargetSamples)
			results[i] = TileResult{TileID: task.Tile.ID, Stats: stats}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
