package renderer

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// testLogger implements core.Logger for testing by discarding all output
type testLogger struct{}

var _ core.Logger = (*testLogger)(nil)

func (tl *testLogger) Printf(format string, args ...interface{}) {}

func TestProgressiveSampleCalculation(t *testing.T) {
	config := DefaultProgressiveConfig()
	config.InitialSamples = 1
	config.MaxSamplesPerPixel = 50
	config.MaxPasses = 7

	pr := &ProgressiveRaytracer{
		config: config,
	}

	// Pass 1: 1 sample
	// Pass 2-6: (50-1)/6 = 8 samples per pass -> 9, 17, ...
	// Pass 7: 50 (final pass gets all remaining)
	expectedTotalSamples := []int{1, 9, 17, 25, 33, 41, 50}

	for pass := 1; pass <= 7; pass++ {
		totalSamples := pr.getSamplesForPass(pass)

		if totalSamples != expectedTotalSamples[pass-1] {
			t.Errorf("Pass %d: expected %d total samples, got %d",
				pass, expectedTotalSamples[pass-1], totalSamples)
		}
	}
}

func TestProgressiveSampleCalculation_SinglePass(t *testing.T) {
	pr := &ProgressiveRaytracer{config: ProgressiveConfig{InitialSamples: 1, MaxSamplesPerPixel: 32, MaxPasses: 1}}
	if got := pr.getSamplesForPass(1); got != 32 {
		t.Errorf("Single pass should take all samples, got %d", got)
	}
}

func TestProgressiveConfig(t *testing.T) {
	config := DefaultProgressiveConfig()

	if config.TileSize != 32 {
		t.Errorf("Expected default tile size 32, got %d", config.TileSize)
	}
	if config.InitialSamples != 1 {
		t.Errorf("Expected default initial samples 1, got %d", config.InitialSamples)
	}
	if config.MaxSamplesPerPixel != 64 {
		t.Errorf("Expected default max samples 64, got %d", config.MaxSamplesPerPixel)
	}
	if config.MaxPasses != 8 {
		t.Errorf("Expected default max passes 8, got %d", config.MaxPasses)
	}
}

func TestNewProgressiveRaytracer_InvalidConfig(t *testing.T) {
	scene := createMockScene(8, 8)
	mock := &MockIntegrator{}

	tests := []struct {
		name          string
		width, height int
		mutate        func(*ProgressiveConfig)
	}{
		{"zero width", 0, 8, func(*ProgressiveConfig) {}},
		{"negative height", 8, -1, func(*ProgressiveConfig) {}},
		{"zero tile size", 8, 8, func(c *ProgressiveConfig) { c.TileSize = 0 }},
		{"zero passes", 8, 8, func(c *ProgressiveConfig) { c.MaxPasses = 0 }},
		{"zero samples", 8, 8, func(c *ProgressiveConfig) { c.MaxSamplesPerPixel = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultProgressiveConfig()
			tt.mutate(&config)
			_, err := NewProgressiveRaytracer(scene, tt.width, tt.height, config, mock, &testLogger{})
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestProgressiveRaytracer_RenderProgressive(t *testing.T) {
	scene := createMockScene(20, 12)
	mock := &MockIntegrator{returnColor: core.NewVec3(0.25, 0.25, 0.25)}
	config := ProgressiveConfig{TileSize: 8, InitialSamples: 1, MaxSamplesPerPixel: 7, MaxPasses: 4, NumWorkers: 3, Seed: 1}

	pr, err := NewProgressiveRaytracer(scene, 20, 12, config, mock, &testLogger{})
	if err != nil {
		t.Fatalf("NewProgressiveRaytracer failed: %v", err)
	}

	passChan, errChan := pr.RenderProgressive(context.Background())

	var passes []PassResult
	for result := range passChan {
		passes = append(passes, result)
	}
	for err := range errChan {
		t.Fatalf("Unexpected render error: %v", err)
	}

	// Targets: 1, then (7-1)/3 = 2 per pass -> 3, 5, and the last pass tops up to 7
	wantSamples := []int{1, 3, 5, 7}
	if len(passes) != len(wantSamples) {
		t.Fatalf("Expected %d passes, got %d", len(wantSamples), len(passes))
	}
	for i, pass := range passes {
		if pass.PassNumber != i+1 {
			t.Errorf("Pass %d reported number %d", i+1, pass.PassNumber)
		}
		if pass.Stats.TotalPixels != 240 {
			t.Errorf("Pass %d: expected 240 pixels, got %d", i+1, pass.Stats.TotalPixels)
		}
		if pass.Stats.MinSamples != wantSamples[i] || pass.Stats.MaxSamplesUsed != wantSamples[i] {
			t.Errorf("Pass %d: expected %d samples everywhere, got min %d max %d",
				i+1, wantSamples[i], pass.Stats.MinSamples, pass.Stats.MaxSamplesUsed)
		}
		if pass.IsLast != (i == len(passes)-1) {
			t.Errorf("Pass %d: IsLast = %v", i+1, pass.IsLast)
		}
		if pass.Image.Bounds() != image.Rect(0, 0, 20, 12) {
			t.Errorf("Pass %d: unexpected image bounds %v", i+1, pass.Image.Bounds())
		}
	}

	// Accumulation is linear: every pass averages the same constant color
	final := passes[len(passes)-1].Image
	if c := final.RGBAAt(10, 6); c.R != 128 || c.G != 128 || c.B != 128 {
		t.Errorf("Expected mid grey pixel, got %v", c)
	}
	if mock.calls() != 240*7 {
		t.Errorf("Expected %d integrator calls, got %d", 240*7, mock.calls())
	}
	// Each pass only tops pixels up from the previous target
	for i, pass := range passes {
		prev := 0
		if i > 0 {
			prev = wantSamples[i-1]
		}
		if want := 240 * (wantSamples[i] - prev); pass.Stats.NewSamples != want {
			t.Errorf("Pass %d: expected %d new samples, got %d", i+1, want, pass.Stats.NewSamples)
		}
	}
}

func TestProgressiveRaytracer_CancelledBeforeFirstPass(t *testing.T) {
	scene := createMockScene(8, 8)
	mock := &MockIntegrator{}
	pr, err := NewProgressiveRaytracer(scene, 8, 8, DefaultProgressiveConfig(), mock, &testLogger{})
	if err != nil {
		t.Fatalf("NewProgressiveRaytracer failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	passChan, errChan := pr.RenderProgressive(ctx)
	for range passChan {
		t.Error("No pass should complete after cancellation")
	}
	if err := <-errChan; !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if mock.calls() != 0 {
		t.Errorf("Expected no rendering, got %d integrator calls", mock.calls())
	}
}

func TestProgressiveRaytracer_UniqueIDs(t *testing.T) {
	scene := createMockScene(4, 4)
	a, _ := NewProgressiveRaytracer(scene, 4, 4, DefaultProgressiveConfig(), &MockIntegrator{}, &testLogger{})
	b, _ := NewProgressiveRaytracer(scene, 4, 4, DefaultProgressiveConfig(), &MockIntegrator{}, &testLogger{})
	if a.ID() == b.ID() {
		t.Errorf("Expected distinct render IDs, both were %s", a.ID())
	}
}

func TestNewTileGrid(t *testing.T) {
	width, height, tileSize := 400, 225, 64
	tiles := NewTileGrid(width, height, tileSize, 42)

	expectedTilesX := (width + tileSize - 1) / tileSize   // 7 tiles
	expectedTilesY := (height + tileSize - 1) / tileSize  // 4 tiles
	expectedTotalTiles := expectedTilesX * expectedTilesY // 28 tiles

	if len(tiles) != expectedTotalTiles {
		t.Errorf("Expected %d tiles, got %d", expectedTotalTiles, len(tiles))
	}

	// Tiles cover the entire image without gaps or overlaps
	covered := make([][]bool, height)
	for y := range covered {
		covered[y] = make([]bool, width)
	}

	for _, tile := range tiles {
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				if x >= width || y >= height {
					t.Errorf("Tile %d extends beyond image bounds at (%d,%d)", tile.ID, x, y)
				}
				if covered[y][x] {
					t.Errorf("Pixel (%d,%d) is covered by multiple tiles", x, y)
				}
				covered[y][x] = true
			}
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !covered[y][x] {
				t.Errorf("Pixel (%d,%d) is not covered by any tile", x, y)
			}
		}
	}
}

func TestTileDeterministicRandom(t *testing.T) {
	bounds := image.Rect(0, 0, 64, 64)
	tile1 := NewTile(42, bounds, 7)
	tile2 := NewTile(42, bounds, 7)

	val1 := tile1.Sampler.Get1D()
	val2 := tile2.Sampler.Get1D()

	if val1 != val2 {
		t.Errorf("Tiles with same ID should produce same random values: %f != %f", val1, val2)
	}

	tile3 := NewTile(43, bounds, 7)
	val3 := tile3.Sampler.Get1D()

	if val1 == val3 {
		t.Error("Tiles with different IDs should produce different random values")
	}
}
