package scene

import (
	"math"
	"testing"

	"github.com/df07/go-aobench/pkg/core"
	"github.com/df07/go-aobench/pkg/geometry"
)

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene()

	centers := []core.Vec3{
		core.NewVec3(-2.0, 0, -3.5),
		core.NewVec3(-0.5, 0, -3.0),
		core.NewVec3(1.0, 0, -2.2),
	}
	for i, c := range centers {
		if s.Spheres[i].Center != c {
			t.Errorf("Sphere %d: expected center %v, got %v", i, c, s.Spheres[i].Center)
		}
		if s.Spheres[i].Radius != 0.5 {
			t.Errorf("Sphere %d: expected radius 0.5, got %f", i, s.Spheres[i].Radius)
		}
	}

	if s.Plane.Point != core.NewVec3(0, -0.5, 0) || s.Plane.Normal != core.NewVec3(0, 1, 0) {
		t.Errorf("Unexpected ground plane %+v", s.Plane)
	}

	if got := len(s.Shapes()); got != 4 {
		t.Errorf("Expected 4 shapes, got %d", got)
	}
}

func TestScene_Intersect(t *testing.T) {
	s := NewDefaultScene()

	tests := []struct {
		name      string
		ray       core.Ray
		expectHit bool
		expectN   core.Vec3
		expectD   float64
	}{
		{
			name:      "straight at middle sphere",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(-0.5, 0, -3.0).Normalize()),
			expectHit: true,
			expectD:   core.NewVec3(-0.5, 0, -3.0).Length() - 0.5,
		},
		{
			name:      "down at the ground",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, -1).Normalize()),
			expectHit: true,
			expectN:   core.NewVec3(0, 1, 0),
			expectD:   0.5 * math.Sqrt2,
		},
		{
			name:      "up into the sky",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, -1).Normalize()),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isect := s.Intersect(tt.ray)
			if isect.Hit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isect.Hit)
			}
			if !tt.expectHit {
				return
			}
			if math.Abs(isect.Distance-tt.expectD) > 1e-9 {
				t.Errorf("Expected distance %f, got %f", tt.expectD, isect.Distance)
			}
			if tt.expectN != (core.Vec3{}) && isect.Normal != tt.expectN {
				t.Errorf("Expected normal %v, got %v", tt.expectN, isect.Normal)
			}
		})
	}
}

func TestScene_IntersectMatchesShapes(t *testing.T) {
	s := NewDefaultScene()
	rng := core.NewXorShift()

	for i := 0; i < 500; i++ {
		dir := core.NewVec3(2*rng.Float64()-1, 2*rng.Float64()-1, -1).Normalize()
		ray := core.NewRay(core.NewVec3(0, 0, 0), dir)

		viaShapes := geometry.NewIntersection()
		for _, shape := range s.Shapes() {
			viaShapes = shape.Intersect(viaShapes, ray)
		}

		if got := s.Intersect(ray); got != viaShapes {
			t.Fatalf("Ray %v: Intersect %+v differs from shape fold %+v", dir, got, viaShapes)
		}
	}
}
