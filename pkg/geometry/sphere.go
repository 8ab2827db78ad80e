package geometry

import (
	"math"

	"github.com/df07/go-aobench/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) Sphere {
	return Sphere{
		Center: center,
		Radius: radius,
	}
}

// Intersect implements Shape
func (s Sphere) Intersect(isect Intersection, ray core.Ray) Intersection {
	return IntersectSphere(isect, ray, s)
}

// IntersectSphere returns isect updated with the near root of ray against s if it
// is in front of the origin and closer than the current hit. The ray direction is
// assumed to be unit length.
func IntersectSphere(isect Intersection, ray core.Ray, s Sphere) Intersection {
	// Vector from sphere center to ray origin
	rs := ray.Origin.Subtract(s.Center)

	b := rs.Dot(ray.Direction)
	c := rs.Dot(rs) - s.Radius*s.Radius
	d := b*b - c

	// Tangent rays and misses
	if d <= 0 {
		return isect
	}

	t := -b - math.Sqrt(d)
	if !isect.accept(t) {
		return isect
	}

	point := ray.At(t)
	return isect.record(ray, t, point.Subtract(s.Center).Normalize())
}
