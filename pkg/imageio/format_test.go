package imageio

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"ppm", FormatPPM, false},
		{"PPM", FormatPPM, false},
		{" png ", FormatPNG, false},
		{"ppm-ascii", FormatPPMASCII, false},
		{"pgm", FormatPGM, false},
		{"bmp", FormatBMP, false},
		{"tif", FormatTIFF, false},
		{"tiff", FormatTIFF, false},
		{"jpeg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("ParseFormat(%q): expected ErrUnknownFormat, got %v", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.expected {
			t.Errorf("ParseFormat(%q) = %q, %v; expected %q", tt.input, got, err, tt.expected)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		wantErr  bool
	}{
		{"ao.ppm", FormatPPM, false},
		{"out/render.PNG", FormatPNG, false},
		{"frame.tif", FormatTIFF, false},
		{"gray.pgm", FormatPGM, false},
		{"noextension", "", true},
		{"picture.gif", "", true},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if tt.wantErr {
			if err == nil {
				t.Errorf("FormatFromPath(%q): expected error", tt.path)
			}
			continue
		}
		if err != nil || got != tt.expected {
			t.Errorf("FormatFromPath(%q) = %q, %v; expected %q", tt.path, got, err, tt.expected)
		}
	}
}

func TestFormat_ContentTypeAndExtension(t *testing.T) {
	for _, f := range Formats {
		if f.ContentType() == "application/octet-stream" {
			t.Errorf("Format %q has no content type", f)
		}
		if f.Extension() == "" || f.Extension()[0] != '.' {
			t.Errorf("Format %q has bad extension %q", f, f.Extension())
		}
	}
	if FormatPPMASCII.Extension() != ".ppm" {
		t.Errorf("Expected ASCII pixmaps to use .ppm, got %q", FormatPPMASCII.Extension())
	}
}
