package renderer

import (
	"fmt"
	"image"
	"time"

	"github.com/df07/go-aobench/pkg/core"
	"github.com/df07/go-aobench/pkg/integrator"
	"github.com/df07/go-aobench/pkg/log"
	"github.com/df07/go-aobench/pkg/scene"
)

var logger = log.New("renderer")

// Raytracer renders the scene into a FrameBuffer
type Raytracer struct {
	scene      *scene.Scene
	config     Config
	camera     *Camera
	integrator integrator.Integrator
}

// NewRaytracer creates a raytracer shading hits with ambient occlusion
func NewRaytracer(sc *scene.Scene, config Config) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Raytracer{
		scene:      sc,
		config:     config,
		camera:     NewCamera(config.Width, config.Height, config.Subsamples),
		integrator: integrator.NewAmbientOcclusion(config.AOSamples),
	}, nil
}

// SetIntegrator replaces the shading algorithm. Integrators used with more
// than one worker must be safe for concurrent use.
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// Config returns the render configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// Render renders a complete frame. With one worker every sample comes from the
// fixed-seed stream in row-major pixel order; otherwise the frame is split into
// tiles with independent streams. Both modes are deterministic.
func (rt *Raytracer) Render() (*FrameBuffer, RenderStats, error) {
	start := time.Now()
	fb := NewFrameBuffer(rt.config.Width, rt.config.Height)

	var stats RenderStats
	var err error
	if rt.config.Sequential() {
		logger.Noticef("rendering %dx%d frame on a single stream", rt.config.Width, rt.config.Height)
		stats = rt.RenderBounds(fb, image.Rect(0, 0, rt.config.Width, rt.config.Height), core.NewXorShift())
		stats.Tiles = 1
		stats.Workers = 1
	} else {
		stats, err = rt.renderTiles(fb)
		if err != nil {
			return nil, RenderStats{}, err
		}
	}

	stats.Duration = time.Since(start)
	logger.Noticef("render completed in %v (%d primary rays, %d occlusion rays)",
		stats.Duration, stats.PrimaryRays, stats.OcclusionRays)

	return fb, stats, nil
}

// renderTiles renders the frame in parallel tiles
func (rt *Raytracer) renderTiles(fb *FrameBuffer) (RenderStats, error) {
	tiles := NewTileGrid(rt.config.Width, rt.config.Height, rt.config.TileSize)
	pool := NewWorkerPool(rt, rt.config.Workers, len(tiles))

	logger.Noticef("rendering %dx%d frame in %d tiles using %d workers",
		rt.config.Width, rt.config.Height, len(tiles), pool.GetNumWorkers())

	pool.Start()
	defer pool.Stop()

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Frame: fb})
	}

	stats := RenderStats{Tiles: len(tiles), Workers: pool.GetNumWorkers()}
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			return RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			return RenderStats{}, result.Error
		}

		stats.Merge(result.Stats)
		logger.Debugf("tile %d/%d done by worker %d (%v)",
			i+1, len(tiles), result.WorkerID, tiles[result.TaskID].Bounds)
	}

	return stats, nil
}

// RenderBounds renders the pixels inside bounds in row-major order, drawing
// every sample from sampler, and writes them to fb
func (rt *Raytracer) RenderBounds(fb *FrameBuffer, bounds image.Rectangle, sampler core.Sampler) RenderStats {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			fb.SetColor(x, y, rt.renderPixel(x, y, sampler, &stats))
		}
	}

	return stats
}

// RenderPixel returns the averaged color of pixel (x, y) before clamping
func (rt *Raytracer) RenderPixel(x, y int, sampler core.Sampler) core.Vec3 {
	var stats RenderStats
	return rt.renderPixel(x, y, sampler, &stats)
}

func (rt *Raytracer) renderPixel(x, y int, sampler core.Sampler, stats *RenderStats) core.Vec3 {
	n := rt.config.Subsamples
	var accum core.Vec3

	for v := 0; v < n; v++ {
		for u := 0; u < n; u++ {
			color, rayStats := rt.integrator.RayColor(rt.camera.GetRay(x, y, u, v), rt.scene, sampler)
			accum = accum.Add(color)

			stats.PrimaryRays++
			if rayStats.Hit {
				stats.PrimaryHits++
			}
			stats.OcclusionRays += rayStats.OcclusionRays
			stats.OccludedRays += rayStats.Occluded
		}
	}

	count := float64(n * n)
	return core.NewVec3(accum.X/count, accum.Y/count, accum.Z/count)
}
