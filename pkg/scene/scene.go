package scene

import (
	"github.com/df07/go-aobench/pkg/core"
	"github.com/df07/go-aobench/pkg/geometry"
)

// Scene is the fixed benchmark world: three spheres resting on a ground plane.
// It is read-only once built and safe to share between workers.
type Scene struct {
	Spheres [3]geometry.Sphere
	Plane   geometry.Plane
}

// Intersect tests ray against every primitive on a fresh record and returns the nearest hit.
// Spheres are tested in order before the plane.
func (s *Scene) Intersect(ray core.Ray) geometry.Intersection {
	isect := geometry.NewIntersection()
	for _, sphere := range s.Spheres {
		isect = geometry.IntersectSphere(isect, ray, sphere)
	}
	return geometry.IntersectPlane(isect, ray, s.Plane)
}

// Shapes returns the primitives in intersection order
func (s *Scene) Shapes() []geometry.Shape {
	shapes := make([]geometry.Shape, 0, len(s.Spheres)+1)
	for _, sphere := range s.Spheres {
		shapes = append(shapes, sphere)
	}
	return append(shapes, s.Plane)
}
