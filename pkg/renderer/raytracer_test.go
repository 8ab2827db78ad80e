package renderer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/df07/go-aobench/pkg/core"
	"github.com/df07/go-aobench/pkg/integrator"
	"github.com/df07/go-aobench/pkg/scene"
)

// MockIntegrator returns a fixed color and counts calls
type MockIntegrator struct {
	returnColor core.Vec3
	callCount   int
}

func (m *MockIntegrator) RayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler) (core.Vec3, integrator.RayStats) {
	m.callCount++
	return m.returnColor, integrator.RayStats{Hit: true}
}

// smallConfig keeps render tests fast
func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 16
	cfg.Height = 16
	cfg.Subsamples = 1
	cfg.AOSamples = 4
	cfg.TileSize = 5
	return cfg
}

func newTestRaytracer(t *testing.T, cfg Config) *Raytracer {
	t.Helper()
	rt, err := NewRaytracer(scene.NewDefaultScene(), cfg)
	if err != nil {
		t.Fatalf("NewRaytracer: %v", err)
	}
	return rt
}

func render(t *testing.T, rt *Raytracer) (*FrameBuffer, RenderStats) {
	t.Helper()
	fb, stats, err := rt.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return fb, stats
}

func TestNewRaytracer_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0

	rt, err := NewRaytracer(scene.NewDefaultScene(), cfg)
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Expected ErrInvalidDimensions, got %v", err)
	}
	if rt != nil {
		t.Error("Expected nil raytracer on error")
	}
}

func TestRaytracer_FrameBufferLength(t *testing.T) {
	sizes := [][2]int{{16, 16}, {7, 3}, {1, 1}, {20, 9}}

	for _, size := range sizes {
		for _, workers := range []int{1, 3} {
			cfg := smallConfig()
			cfg.Width, cfg.Height = size[0], size[1]
			cfg.Workers = workers

			fb, stats := render(t, newTestRaytracer(t, cfg))
			if len(fb.Pix) != size[0]*size[1]*3 {
				t.Errorf("%dx%d workers=%d: expected %d bytes, got %d", size[0], size[1], workers, size[0]*size[1]*3, len(fb.Pix))
			}
			if stats.TotalPixels != size[0]*size[1] {
				t.Errorf("%dx%d workers=%d: expected %d pixels in stats, got %d", size[0], size[1], workers, size[0]*size[1], stats.TotalPixels)
			}
		}
	}
}

func TestRaytracer_SequentialDeterministic(t *testing.T) {
	cfg := smallConfig()

	a, _ := render(t, newTestRaytracer(t, cfg))
	b, _ := render(t, newTestRaytracer(t, cfg))

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("Expected identical frames from repeated sequential renders")
	}
}

func TestRaytracer_TiledDeterministicAcrossWorkerCounts(t *testing.T) {
	var reference []byte
	for _, workers := range []int{2, 4, 0} {
		cfg := smallConfig()
		cfg.Workers = workers

		fb, stats := render(t, newTestRaytracer(t, cfg))
		if stats.Tiles != 16 {
			t.Errorf("workers=%d: expected 16 tiles, got %d", workers, stats.Tiles)
		}

		if reference == nil {
			reference = fb.Pix
			continue
		}
		if !bytes.Equal(reference, fb.Pix) {
			t.Errorf("workers=%d: frame differs from the first tiled render", workers)
		}
	}
}

func TestRaytracer_MissesAreBlack(t *testing.T) {
	// The top row looks up into empty sky
	fb, _ := render(t, newTestRaytracer(t, smallConfig()))

	for x := 0; x < fb.Width; x++ {
		r, g, b := fb.RGB(x, 0)
		if r != 0 || g != 0 || b != 0 {
			t.Errorf("Pixel (%d,0): expected black, got (%d,%d,%d)", x, r, g, b)
		}
	}
}

func TestRaytracer_HitsAreGray(t *testing.T) {
	fb, stats := render(t, newTestRaytracer(t, smallConfig()))

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := fb.RGB(x, y)
			if r != g || g != b {
				t.Fatalf("Pixel (%d,%d): expected gray, got (%d,%d,%d)", x, y, r, g, b)
			}
		}
	}

	// The bottom center looks down at open ground
	if r, _, _ := fb.RGB(fb.Width/2, fb.Height-1); r == 0 {
		t.Error("Expected lit ground at the bottom of the frame")
	}

	if stats.PrimaryHits == 0 || stats.PrimaryHits == stats.PrimaryRays {
		t.Errorf("Expected a mix of hits and misses, got %d of %d", stats.PrimaryHits, stats.PrimaryRays)
	}
	if stats.OcclusionRays != stats.PrimaryHits*16 {
		t.Errorf("Expected 16 occlusion rays per hit, got %d for %d hits", stats.OcclusionRays, stats.PrimaryHits)
	}
}

func TestRaytracer_SubsampleAveraging(t *testing.T) {
	cfg := smallConfig()
	cfg.Subsamples = 3

	rt := newTestRaytracer(t, cfg)
	mock := &MockIntegrator{returnColor: core.NewVec3(0.5, 0.25, 1.0)}
	rt.SetIntegrator(mock)

	color := rt.RenderPixel(3, 4, core.NewXorShift())
	if mock.callCount != 9 {
		t.Errorf("Expected 9 primary rays, got %d", mock.callCount)
	}
	if color.Subtract(mock.returnColor).Length() > 1e-12 {
		t.Errorf("Expected average %v, got %v", mock.returnColor, color)
	}
}

func TestRaytracer_RenderPixelMatchesFrame(t *testing.T) {
	cfg := smallConfig()
	rt := newTestRaytracer(t, cfg)
	fb, _ := render(t, rt)

	// Replaying the stream in row-major order reproduces every pixel
	sampler := core.NewXorShift()
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			c := rt.RenderPixel(x, y, sampler)
			if r, _, _ := fb.RGB(x, y); r != Clamp(c.X) {
				t.Fatalf("Pixel (%d,%d): frame has %d, replay gives %d", x, y, r, Clamp(c.X))
			}
		}
	}
}
