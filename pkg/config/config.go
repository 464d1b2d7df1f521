package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable, e.g. PATHTRACER_SCENE
const Prefix = "PATHTRACER"

// Config holds the renderer settings read from the environment
type Config struct {
	Scene           string `envconfig:"SCENE" default:"cornell"`
	Width           int    `envconfig:"WIDTH" default:"400"`
	Height          int    `envconfig:"HEIGHT" default:"0"` // 0 = derive from the scene's aspect ratio
	SamplesPerPixel int    `envconfig:"SAMPLES_PER_PIXEL" default:"64"`
	MaxDepth        int    `envconfig:"MAX_DEPTH" default:"50"`
	MaxPasses       int    `envconfig:"MAX_PASSES" default:"8"`
	TileSize        int    `envconfig:"TILE_SIZE" default:"32"`
	Workers         int    `envconfig:"WORKERS" default:"0"` // 0 = one per CPU
	OutputDir       string `envconfig:"OUTPUT_DIR" default:"output"`
	TextureDir      string `envconfig:"TEXTURE_DIR" default:"assets"`
	Seed            int64  `envconfig:"SEED" default:"42"`
}

// Load reads the configuration from PATHTRACER_* variables, applying defaults for unset ones
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
