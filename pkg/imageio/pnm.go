package imageio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-aobench/pkg/renderer"
)

const pnmMaxValue = 255

// writePPM writes fb as a binary P6 pixmap
func writePPM(w io.Writer, fb *renderer.FrameBuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n%d\n", fb.Width, fb.Height, pnmMaxValue); err != nil {
		return err
	}
	if _, err := bw.Write(fb.Pix); err != nil {
		return err
	}
	return bw.Flush()
}

// writePPMASCII writes fb as a plain P3 pixmap, one pixel per line
func writePPMASCII(w io.Writer, fb *renderer.FrameBuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", fb.Width, fb.Height, pnmMaxValue); err != nil {
		return err
	}
	for i := 0; i < len(fb.Pix); i += 3 {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// writePGM writes the red channel of fb as a binary P5 graymap.
// Ambient occlusion frames are gray so no information is lost.
func writePGM(w io.Writer, fb *renderer.FrameBuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P5\n%d %d\n%d\n", fb.Width, fb.Height, pnmMaxValue); err != nil {
		return err
	}
	for i := 0; i < len(fb.Pix); i += 3 {
		if err := bw.WriteByte(fb.Pix[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
