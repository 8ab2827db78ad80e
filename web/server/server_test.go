package server

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandleHealth(t *testing.T) {
	srv := NewServer("localhost:0")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
}

func TestHandleRender_PNG(t *testing.T) {
	srv := NewServer("localhost:0")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/render?width=16&height=8&subsamples=1&aoSamples=2", nil)
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
		t.Errorf("Expected 16x8 image, got %v", img.Bounds())
	}
}

func TestHandleRender_PPM(t *testing.T) {
	srv := NewServer("localhost:0")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/render?width=4&height=3&subsamples=1&aoSamples=1&workers=1&format=ppm", nil)
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.Bytes()
	header := "P6\n4 3\n255\n"
	if !bytes.HasPrefix(body, []byte(header)) {
		t.Fatalf("Unexpected header %q", body[:len(header)])
	}
	if len(body) != len(header)+4*3*3 {
		t.Errorf("Expected %d bytes, got %d", len(header)+36, len(body))
	}
}

func TestHandleRender_InvalidParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"width not a number", "width=abc"},
		{"width too large", "width=5000"},
		{"zero height", "height=0"},
		{"negative workers", "workers=-1"},
		{"zero subsamples", "subsamples=0"},
		{"unknown format", "format=gif"},
	}

	srv := NewServer("localhost:0")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/render?"+tt.query, nil))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "Invalid request") {
				t.Errorf("Expected error body, got %q", rec.Body.String())
			}
		})
	}
}

func TestHandleRender_MethodNotAllowed(t *testing.T) {
	srv := NewServer("localhost:0")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/render", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
}

func TestParseRenderRequest_Defaults(t *testing.T) {
	srv := NewServer("localhost:0")
	req, err := srv.parseRenderRequest(httptest.NewRequest(http.MethodGet, "/api/render", nil))
	if err != nil {
		t.Fatal(err)
	}
	if req.Width != 256 || req.Height != 256 || req.Subsamples != 2 || req.AOSamples != 8 || req.Workers != 0 {
		t.Errorf("Unexpected defaults %+v", req)
	}
	if req.Format != "png" {
		t.Errorf("Expected png default, got %q", req.Format)
	}
}
