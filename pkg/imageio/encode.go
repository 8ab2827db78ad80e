package imageio

import (
	"bytes"
	"fmt"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-aobench/pkg/renderer"
)

// Encode writes fb to w in format f
func Encode(w io.Writer, fb *renderer.FrameBuffer, f Format) error {
	var err error
	switch f {
	case FormatPPM:
		err = writePPM(w, fb)
	case FormatPPMASCII:
		err = writePPMASCII(w, fb)
	case FormatPGM:
		err = writePGM(w, fb)
	case FormatPNG:
		err = png.Encode(w, fb.Image())
	case FormatBMP:
		err = bmp.Encode(w, fb.Image())
	case FormatTIFF:
		err = tiff.Encode(w, fb.Image(), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	if err != nil {
		return fmt.Errorf("imageio: encoding %s: %w", f, err)
	}
	return nil
}

// EncodeBytes encodes fb in memory
func EncodeBytes(fb *renderer.FrameBuffer, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, fb, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
