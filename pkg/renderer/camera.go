package renderer

import (
	"github.com/df07/go-aobench/pkg/core"
)

// Camera generates primary rays from the origin looking down -Z.
// The image plane spans [-1, 1] on both axes at z = -1.
type Camera struct {
	origin     core.Vec3
	width      float64
	height     float64
	subsamples float64
}

// NewCamera creates a camera for a width x height frame split into subsamples x subsamples cells per pixel
func NewCamera(width, height, subsamples int) *Camera {
	return &Camera{
		origin:     core.NewVec3(0, 0, 0),
		width:      float64(width),
		height:     float64(height),
		subsamples: float64(subsamples),
	}
}

// GetRay returns the ray through subsample (u, v) of pixel (x, y)
func (c *Camera) GetRay(x, y, u, v int) core.Ray {
	halfW := c.width / 2.0
	halfH := c.height / 2.0

	px := (float64(x) + float64(u)/c.subsamples - halfW) / halfW
	py := -(float64(y) + float64(v)/c.subsamples - halfH) / halfH

	return core.NewRay(c.origin, core.NewVec3(px, py, -1.0).Normalize())
}
