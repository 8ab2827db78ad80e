package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-aobench/pkg/core"
)

// FrameBuffer is a row-major RGB image with one byte per channel
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewFrameBuffer allocates a black width x height frame
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// Offset returns the index of the red byte of pixel (x, y)
func (fb *FrameBuffer) Offset(x, y int) int {
	return (y*fb.Width + x) * 3
}

// SetColor clamps c and stores it at (x, y)
func (fb *FrameBuffer) SetColor(x, y int, c core.Vec3) {
	i := fb.Offset(x, y)
	fb.Pix[i] = Clamp(c.X)
	fb.Pix[i+1] = Clamp(c.Y)
	fb.Pix[i+2] = Clamp(c.Z)
}

// RGB returns the stored bytes of pixel (x, y)
func (fb *FrameBuffer) RGB(x, y int) (r, g, b uint8) {
	i := fb.Offset(x, y)
	return fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2]
}

// Image converts the frame to an opaque RGBA image
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := fb.RGB(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// Clamp maps a [0, 1] intensity to a byte as round(f*255.5) saturated to [0, 255].
// NaN maps to 0.
func Clamp(f float64) uint8 {
	i := math.Round(f * 255.5)
	if !(i > 0) {
		return 0
	}
	if i > 255 {
		return 255
	}
	return uint8(i)
}
