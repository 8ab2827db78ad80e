package geometry

import "github.com/df07/go-aobench/pkg/core"

// FarDistance is the distance of an empty intersection record
const FarDistance = 1e17

// Intersection is a nearest-hit record. Distance, Point and Normal are only
// ever updated together, and Distance is the minimum over every shape tested
// against the record so far.
type Intersection struct {
	Distance float64
	Point    core.Vec3
	Normal   core.Vec3
	Hit      bool
}

// NewIntersection returns an empty record with the distance at FarDistance
func NewIntersection() Intersection {
	return Intersection{Distance: FarDistance}
}

// accept reports whether t improves on the current nearest hit
func (isect Intersection) accept(t float64) bool {
	return t > 0 && t < isect.Distance
}

// record returns a copy of isect holding the hit at t
func (isect Intersection) record(ray core.Ray, t float64, normal core.Vec3) Intersection {
	isect.Distance = t
	isect.Point = ray.At(t)
	isect.Normal = normal
	isect.Hit = true
	return isect
}
