package renderer

import (
	"image/color"
	"math"

	"github.com/golang/glog"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          400,
		SamplesPerPixel: 64,
		MaxDepth:        50,
	}
}

// Scene is everything the renderer needs from a scene
type Scene interface {
	integrator.Scene
	GetCamera() *Camera
	GetSamplingConfig() SamplingConfig
}

// DefaultLogger implements core.Logger on top of glog
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	glog.InfoDepthf(1, format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// ColorToRGBA converts linear radiance to an 8-bit pixel.
// Each channel is gamma corrected with a square root, clamped to [0, 0.999] and scaled by 256.
func ColorToRGBA(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: toByte(c.X),
		G: toByte(c.Y),
		B: toByte(c.Z),
		A: 255,
	}
}

func toByte(x float64) uint8 {
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	return uint8(256 * math.Min(math.Sqrt(x), 0.999))
}
