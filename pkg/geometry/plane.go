package geometry

import (
	"math"

	"github.com/df07/go-aobench/pkg/core"
)

// parallelEpsilon is the |direction . normal| under which a ray counts as parallel to a plane
const parallelEpsilon = 1e-17

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3) Plane {
	return Plane{
		Point:  point,
		Normal: normal.Normalize(),
	}
}

// Intersect implements Shape
func (p Plane) Intersect(isect Intersection, ray core.Ray) Intersection {
	return IntersectPlane(isect, ray, p)
}

// IntersectPlane returns isect updated with the hit of ray against p if it is in
// front of the origin and closer than the current hit. Parallel rays never hit.
func IntersectPlane(isect Intersection, ray core.Ray, p Plane) Intersection {
	d := -p.Point.Dot(p.Normal)
	v := ray.Direction.Dot(p.Normal)

	if math.Abs(v) < parallelEpsilon {
		return isect
	}

	t := -(ray.Origin.Dot(p.Normal) + d) / v
	if !isect.accept(t) {
		return isect
	}

	return isect.record(ray, t, p.Normal)
}
