package geometry

import "github.com/df07/go-aobench/pkg/core"

// Shape is anything that can fold a ray test into a nearest-hit record
type Shape interface {
	Intersect(isect Intersection, ray core.Ray) Intersection
}
