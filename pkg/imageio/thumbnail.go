package imageio

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/nfnt/resize"

	"github.com/df07/go-aobench/pkg/renderer"
)

// Thumbnail scales fb so its longer edge is size pixels
func Thumbnail(fb *renderer.FrameBuffer, size uint) image.Image {
	var w, h uint
	if fb.Width >= fb.Height {
		w = size
	} else {
		h = size
	}
	// resize keeps the aspect ratio when one dimension is zero
	return resize.Resize(w, h, fb.Image(), resize.Bilinear)
}

// WriteThumbnail writes a PNG thumbnail of fb to path
func WriteThumbnail(path string, fb *renderer.FrameBuffer, size uint) error {
	if size == 0 {
		return fmt.Errorf("imageio: thumbnail size must be positive")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, Thumbnail(fb, size)); err != nil {
		return fmt.Errorf("imageio: encoding thumbnail: %w", err)
	}
	return writeAtomic(path, buf.Bytes())
}
