package imageio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat is returned for unsupported output formats
var ErrUnknownFormat = errors.New("imageio: unknown image format")

// Format identifies an output encoding
type Format string

const (
	FormatPPM      Format = "ppm"       // Binary P6 pixmap
	FormatPPMASCII Format = "ppm-ascii" // Plain text P3 pixmap
	FormatPGM      Format = "pgm"       // Binary P5 graymap
	FormatPNG      Format = "png"
	FormatBMP      Format = "bmp"
	FormatTIFF     Format = "tiff"
)

// Formats lists every supported format
var Formats = []Format{FormatPPM, FormatPPMASCII, FormatPGM, FormatPNG, FormatBMP, FormatTIFF}

// ParseFormat resolves a format name
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	if f == "tif" {
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks a format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: no usable extension in %q", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Extension returns the file extension for f including the dot
func (f Format) Extension() string {
	switch f {
	case FormatPPMASCII:
		return ".ppm"
	case FormatTIFF:
		return ".tiff"
	default:
		return "." + string(f)
	}
}

// ContentType returns the MIME type for f
func (f Format) ContentType() string {
	switch f {
	case FormatPPM, FormatPPMASCII:
		return "image/x-portable-pixmap"
	case FormatPGM:
		return "image/x-portable-graymap"
	case FormatPNG:
		return "image/png"
	case FormatBMP:
		return "image/bmp"
	case FormatTIFF:
		return "image/tiff"
	default:
		return "application/octet-stream"
	}
}
