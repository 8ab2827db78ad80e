package scene

import (
	"github.com/df07/go-aobench/pkg/core"
	"github.com/df07/go-aobench/pkg/geometry"
)

// Benchmark scene parameters
const (
	sphereRadius = 0.5
	groundHeight = -0.5
)

// NewDefaultScene creates the ambient occlusion benchmark scene
func NewDefaultScene() *Scene {
	return &Scene{
		Spheres: [3]geometry.Sphere{
			geometry.NewSphere(core.NewVec3(-2.0, 0, -3.5), sphereRadius),
			geometry.NewSphere(core.NewVec3(-0.5, 0, -3.0), sphereRadius),
			geometry.NewSphere(core.NewVec3(1.0, 0, -2.2), sphereRadius),
		},
		Plane: geometry.NewPlane(core.NewVec3(0, groundHeight, 0), core.NewVec3(0, 1, 0)),
	}
}
