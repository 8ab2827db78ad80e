package integrator

import (
	"github.com/df07/go-aobench/pkg/core"
	"github.com/df07/go-aobench/pkg/scene"
)

// RayStats counts the work done while shading one primary ray
type RayStats struct {
	Hit           bool // Primary ray hit a primitive
	OcclusionRays int  // Secondary rays cast
	Occluded      int  // Secondary rays that hit something
}

// Integrator defines the interface for shading algorithms
type Integrator interface {
	// RayColor computes the color seen along a primary ray
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) (core.Vec3, RayStats)
}
