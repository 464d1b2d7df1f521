package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// ErrInvalidConfig is returned when a progressive render cannot be set up
var ErrInvalidConfig = errors.New("invalid render configuration")

// ProgressiveConfig contains configuration for progressive rendering
type ProgressiveConfig struct {
	TileSize           int   // Size of each square tile in pixels
	InitialSamples     int   // Samples for first pass (1 recommended)
	MaxSamplesPerPixel int   // Maximum total samples per pixel
	MaxPasses          int   // Maximum number of passes
	NumWorkers         int   // Number of parallel workers (0 = use CPU count)
	Seed               int64 // Base seed for the per-tile sampler streams
}

// DefaultProgressiveConfig returns sensible default values
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		TileSize:           32,
		InitialSamples:     1,
		MaxSamplesPerPixel: 64,
		MaxPasses:          8,
		NumWorkers:         0,
		Seed:               42,
	}
}

// ProgressiveRaytracer manages progressive rendering with multiple passes
type ProgressiveRaytracer struct {
	id            uuid.UUID
	width, height int
	config        ProgressiveConfig
	tiles         []*Tile
	pixelStats    [][]PixelStats // Accumulation buffer in image coordinates
	workerPool    *WorkerPool
	logger        core.Logger
}

// NewProgressiveRaytracer creates a new progressive raytracer
func NewProgressiveRaytracer(scene Scene, width, height int, config ProgressiveConfig, integratorInst integrator.Integrator, logger core.Logger) (*ProgressiveRaytracer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, width, height)
	}
	if config.TileSize <= 0 || config.MaxPasses <= 0 || config.MaxSamplesPerPixel <= 0 {
		return nil, fmt.Errorf("%w: tile size %d, passes %d, samples %d",
			ErrInvalidConfig, config.TileSize, config.MaxPasses, config.MaxSamplesPerPixel)
	}
	config.InitialSamples = max(1, min(config.InitialSamples, config.MaxSamplesPerPixel))
	if logger == nil {
		logger = NewDefaultLogger()
	}

	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	tileRenderer := NewTileRenderer(scene, integratorInst, width, height)

	return &ProgressiveRaytracer{
		id:         uuid.New(),
		width:      width,
		height:     height,
		config:     config,
		tiles:      NewTileGrid(width, height, config.TileSize, config.Seed),
		pixelStats: pixelStats,
		workerPool: NewWorkerPool(tileRenderer, config.NumWorkers),
		logger:     logger,
	}, nil
}

// ID returns the identifier of this render, used in log lines and output names
func (pr *ProgressiveRaytracer) ID() uuid.UUID {
	return pr.id
}

// getSamplesForPass calculates the target total samples for a given pass
func (pr *ProgressiveRaytracer) getSamplesForPass(passNumber int) int {
	if pr.config.MaxPasses == 1 {
		return pr.config.MaxSamplesPerPixel
	}

	// First pass is a quick preview
	if passNumber == 1 {
		return pr.config.InitialSamples
	}

	// Divide remaining samples evenly across remaining passes
	remainingSamples := pr.config.MaxSamplesPerPixel - pr.config.InitialSamples
	remainingPasses := pr.config.MaxPasses - 1
	samplesPerPass := remainingSamples / remainingPasses

	targetSamples := pr.config.InitialSamples + (passNumber-1)*samplesPerPass

	// The final pass tops up to the maximum
	if passNumber >= pr.config.MaxPasses {
		targetSamples = pr.config.MaxSamplesPerPixel
	}

	return targetSamples
}

// RenderPass renders a single progressive pass using parallel processing
func (pr *ProgressiveRaytracer) RenderPass(ctx context.Context, passNumber int) (*image.RGBA, RenderStats, error) {
	targetSamples := pr.getSamplesForPass(passNumber)

	pr.logger.Printf("[%s] Pass %d: Target %d samples per pixel (using %d workers)...\n",
		pr.id, passNumber, targetSamples, pr.workerPool.GetNumWorkers())

	tasks := make([]TileTask, len(pr.tiles))
	for i, tile := range pr.tiles {
		tasks[i] = TileTask{
			Tile:          tile,
			TargetSamples: targetSamples,
			PixelStats:    pr.pixelStats,
		}
	}

	results, err := pr.workerPool.RenderFrame(ctx, tasks)
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("pass %d: %w", passNumber, err)
	}

	img, stats := pr.assembleCurrentImage(targetSamples)
	for _, result := range results {
		stats.NewSamples += result.Stats.TotalSamples
	}
	return img, stats, nil
}

// PassResult contains the result of a single pass
type PassResult struct {
	PassNumber int
	Image      *image.RGBA
	Stats      RenderStats
	IsLast     bool
}

// RenderProgressive runs passes in the background and reports each finished pass.
// Cancellation is checked between passes; the error channel then carries ctx.Err().
// Both channels are closed when rendering stops.
func (pr *ProgressiveRaytracer) RenderProgressive(ctx context.Context) (<-chan PassResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(passChan)
		defer close(errChan)

		pr.logger.Printf("[%s] Starting progressive rendering with %d passes...\n", pr.id, pr.config.MaxPasses)

		for pass := 1; pass <= pr.config.MaxPasses; pass++ {
			select {
			case <-ctx.Done():
				pr.logger.Printf("[%s] Rendering cancelled before pass %d\n", pr.id, pass)
				errChan <- ctx.Err()
				return
			default:
			}

			startTime := time.Now()

			img, stats, err := pr.RenderPass(ctx, pass)
			if err != nil {
				errChan <- err
				return
			}

			actualSamples := int(stats.AverageSamples)
			pr.logger.Printf("[%s] Pass %d completed in %v (%d new samples, actual: %d samples/pixel, luminance %.3f)\n",
				pr.id, pass, time.Since(startTime), stats.NewSamples, actualSamples, CalculateAverageLuminance(img))

			isLast := pass == pr.config.MaxPasses || actualSamples >= pr.config.MaxSamplesPerPixel
			result := PassResult{
				PassNumber: pass,
				Image:      img,
				Stats:      stats,
				IsLast:     isLast,
			}

			select {
			case passChan <- result:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}

			if isLast {
				return
			}
		}
	}()

	return passChan, errChan
}

// assembleCurrentImage creates an image from the accumulation buffer and gathers statistics
func (pr *ProgressiveRaytracer) assembleCurrentImage(targetSamples int) (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, pr.width, pr.height))
	stats := RenderStats{MaxSamples: targetSamples, MinSamples: pr.config.MaxSamplesPerPixel}

	for y := 0; y < pr.height; y++ {
		for x := 0; x < pr.width; x++ {
			pixel := &pr.pixelStats[y][x]
			img.SetRGBA(x, y, ColorToRGBA(pixel.GetColor()))
			stats.add(pixel.SampleCount)
		}
	}

	stats.finalize()
	return img, stats
}

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID      int             // Unique tile identifier
	Bounds  image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Sampler core.Sampler    // Tile-specific random stream
}

// NewTile creates a new tile with its own deterministic sampler
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:      id,
		Bounds:  bounds,
		Sampler: core.NewSeededSampler(seed + int64(id)),
	}
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seed))
			tileID++
		}
	}

	return tiles
}
