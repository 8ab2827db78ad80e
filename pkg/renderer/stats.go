package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels   int           // Total number of pixels rendered
	PrimaryRays   int           // Camera rays cast
	PrimaryHits   int           // Camera rays that hit the scene
	OcclusionRays int           // Ambient occlusion rays cast
	OccludedRays  int           // Ambient occlusion rays that hit the scene
	Tiles         int           // Units of work the frame was split into
	Workers       int           // Goroutines that rendered tiles
	Duration      time.Duration // Wall clock time of the render
}

// Merge accumulates the ray counters of other
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.PrimaryRays += other.PrimaryRays
	s.PrimaryHits += other.PrimaryHits
	s.OcclusionRays += other.OcclusionRays
	s.OccludedRays += other.OccludedRays
}

// AverageVisibility returns the unoccluded fraction over all ambient occlusion rays
func (s RenderStats) AverageVisibility() float64 {
	if s.OcclusionRays == 0 {
		return 0
	}
	return float64(s.OcclusionRays-s.OccludedRays) / float64(s.OcclusionRays)
}

// RaysPerSecond returns the total ray throughput
func (s RenderStats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.PrimaryRays+s.OcclusionRays) / s.Duration.Seconds()
}
