package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func newFrameTasks(width, height, tileSize, target int) ([]TileTask, [][]PixelStats) {
	pixelStats := newPixelStats(width, height)
	tiles := NewTileGrid(width, height, tileSize, 42)
	tasks := make([]TileTask, len(tiles))
	for i, tile := range tiles {
		tasks[i] = TileTask{Tile: tile, TargetSamples: target, PixelStats: pixelStats}
	}
	return tasks, pixelStats
}

func TestWorkerPool_RenderFrame(t *testing.T) {
	scene := createMockScene(37, 23)
	mock := &MockIntegrator{returnColor: core.NewVec3(0.1, 0.2, 0.3)}
	pool := NewWorkerPool(NewTileRenderer(scene, mock, 37, 23), 4)
	tasks, pixelStats := newFrameTasks(37, 23, 8, 2)

	results, err := pool.RenderFrame(context.Background(), tasks)
	if err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}
	if len(results) != len(tasks) {
		t.Fatalf("Expected %d results, got %d", len(tasks), len(results))
	}

	total := 0
	for i, result := range results {
		if result.TileID != tasks[i].Tile.ID {
			t.Errorf("Result %d belongs to tile %d, want %d", i, result.TileID, tasks[i].Tile.ID)
		}
		total += result.Stats.TotalSamples
	}
	if total != 37*23*2 {
		t.Errorf("Expected %d samples in total, got %d", 37*23*2, total)
	}
	if mock.calls() != 37*23*2 {
		t.Errorf("Expected %d integrator calls, got %d", 37*23*2, mock.calls())
	}

	for y := range pixelStats {
		for x := range pixelStats[y] {
			if pixelStats[y][x].SampleCount != 2 {
				t.Fatalf("Pixel (%d,%d) has %d samples, want 2", x, y, pixelStats[y][x].SampleCount)
			}
		}
	}
}

func TestWorkerPool_Cancelled(t *testing.T) {
	scene := createMockScene(16, 16)
	mock := &MockIntegrator{}
	pool := NewWorkerPool(NewTileRenderer(scene, mock, 16, 16), 2)
	tasks, _ := newFrameTasks(16, 16, 4, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pool.RenderFrame(ctx, tasks)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if mock.calls() != 0 {
		t.Errorf("No tile should render after cancellation, got %d calls", mock.calls())
	}
}

func TestWorkerPool_DefaultsToCPUCount(t *testing.T) {
	pool := NewWorkerPool(nil, 0)
	if pool.GetNumWorkers() <= 0 {
		t.Errorf("Expected positive worker count, got %d", pool.GetNumWorkers())
	}
}
