package renderer

import (
	"fmt"

	"github.com/df07/go-aobench/pkg/integrator"
)

// Config contains rendering configuration
type Config struct {
	Width      int // Image width
	Height     int // Image height
	Subsamples int // Subsamples per pixel axis (Subsamples^2 primary rays per pixel)
	AOSamples  int // Ambient occlusion samples per hemisphere axis
	Workers    int // 1 renders on the calling goroutine, 0 uses one worker per CPU
	TileSize   int // Tile edge in pixels for parallel rendering
}

// DefaultConfig returns the benchmark settings
func DefaultConfig() Config {
	return Config{
		Width:      256,
		Height:     256,
		Subsamples: 2,
		AOSamples:  integrator.DefaultAOSamples,
		Workers:    1,
		TileSize:   32,
	}
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.Subsamples <= 0 {
		return fmt.Errorf("%w: %d subsamples", ErrInvalidSamples, c.Subsamples)
	}
	if c.AOSamples <= 0 {
		return fmt.Errorf("%w: %d ambient occlusion samples", ErrInvalidSamples, c.AOSamples)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTileSize, c.TileSize)
	}
	return nil
}

// Sequential reports whether the frame is rendered from a single random stream
func (c Config) Sequential() bool {
	return c.Workers == 1
}
