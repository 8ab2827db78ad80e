package integrator

import (
	"math"

	"github.com/df07/go-aobench/pkg/core"
	"github.com/df07/go-aobench/pkg/geometry"
	"github.com/df07/go-aobench/pkg/scene"
)

const (
	// DefaultAOSamples is the number of theta and phi steps per hit point
	DefaultAOSamples = 8

	// DefaultAOEpsilon lifts occlusion ray origins off the surface along the normal
	DefaultAOEpsilon = 1e-4
)

// AmbientOcclusion shades hits by the fraction of a cosine-weighted hemisphere
// that escapes the scene
type AmbientOcclusion struct {
	NTheta  int
	NPhi    int
	Epsilon float64
}

// NewAmbientOcclusion creates an estimator casting samples*samples rays per hit
func NewAmbientOcclusion(samples int) *AmbientOcclusion {
	return &AmbientOcclusion{
		NTheta:  samples,
		NPhi:    samples,
		Epsilon: DefaultAOEpsilon,
	}
}

// RayColor implements Integrator. Misses are black; hits are gray with the
// visibility in every channel.
func (ao *AmbientOcclusion) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) (core.Vec3, RayStats) {
	isect := s.Intersect(ray)
	if !isect.Hit {
		return core.Vec3{}, RayStats{}
	}

	occluded, total := ao.Occlusion(isect, s, sampler)
	v := visibility(occluded, total)

	return core.NewVec3(v, v, v), RayStats{
		Hit:           true,
		OcclusionRays: total,
		Occluded:      occluded,
	}
}

// Estimate returns the unoccluded fraction of the hemisphere above isect, in [0, 1]
func (ao *AmbientOcclusion) Estimate(isect geometry.Intersection, s *scene.Scene, sampler core.Sampler) float64 {
	return visibility(ao.Occlusion(isect, s, sampler))
}

// Occlusion casts NTheta*NPhi rays from the hit point and counts those that hit the scene.
// Each ray consumes two samples: the radial term first, then the azimuth.
func (ao *AmbientOcclusion) Occlusion(isect geometry.Intersection, s *scene.Scene, sampler core.Sampler) (occluded, total int) {
	basis := core.NewBasis(isect.Normal)
	origin := isect.Point.Add(isect.Normal.Multiply(ao.Epsilon))

	for j := 0; j < ao.NPhi; j++ {
		for i := 0; i < ao.NTheta; i++ {
			r := sampler.Get1D()
			phi := 2.0 * math.Pi * sampler.Get1D()

			dir := basis.ToWorld(core.CosineHemisphere(r, phi))
			if s.Intersect(core.NewRay(origin, dir)).Hit {
				occluded++
			}
			total++
		}
	}

	return occluded, total
}

func visibility(occluded, total int) float64 {
	if total == 0 {
		return 1.0
	}
	return float64(total-occluded) / float64(total)
}
