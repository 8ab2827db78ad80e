package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-aobench/pkg/imageio"
	"github.com/df07/go-aobench/pkg/log"
	"github.com/df07/go-aobench/pkg/renderer"
	"github.com/df07/go-aobench/pkg/scene"
)

var logger = log.New("server")

// Server handles web requests for the ambient occlusion renderer
type Server struct {
	addr string
	mux  *http.ServeMux
}

// NewServer creates a new web server listening on addr
func NewServer(addr string) *Server {
	s := &Server{addr: addr, mux: http.NewServeMux()}

	// API endpoints
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/health", s.handleHealth)

	return s
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Width      int            `json:"width"`      // Image width
	Height     int            `json:"height"`     // Image height
	Subsamples int            `json:"subsamples"` // Subsamples per pixel axis
	AOSamples  int            `json:"aoSamples"`  // Ambient occlusion samples per axis
	Workers    int            `json:"workers"`    // Render workers, 0 uses one per CPU
	Format     imageio.Format `json:"format"`     // Output encoding
}

// Handler returns the request router
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the web server
func (s *Server) Start() error {
	logger.Noticef("starting web server on http://%s", s.addr)
	return http.ListenAndServe(s.addr, s.mux)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders a frame synchronously and returns the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.sendError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	config := renderer.DefaultConfig()
	config.Width = req.Width
	config.Height = req.Height
	config.Subsamples = req.Subsamples
	config.AOSamples = req.AOSamples
	config.Workers = req.Workers

	raytracer, err := renderer.NewRaytracer(scene.NewDefaultScene(), config)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	startTime := time.Now()
	fb, stats, err := raytracer.Render()
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	data, err := imageio.EncodeBytes(fb, req.Format)
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, fmt.Sprintf("Encode error: %v", err))
		return
	}

	w.Header().Set("Content-Type", req.Format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(time.Since(startTime).Milliseconds(), 10))
	w.Header().Set("X-Occlusion-Rays", strconv.Itoa(stats.OcclusionRays))
	w.WriteHeader(http.StatusOK)
	w.Write(data)

	logger.Infof("served %dx%d %s frame (%d bytes) in %v", req.Width, req.Height, req.Format, len(data), stats.Duration)
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{}

	var err error
	if req.Width, err = parseIntParam(query, "width", 256, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 256, 1, 2000); err != nil {
		return nil, err
	}
	if req.Subsamples, err = parseIntParam(query, "subsamples", 2, 1, 16); err != nil {
		return nil, err
	}
	if req.AOSamples, err = parseIntParam(query, "aoSamples", 8, 1, 64); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 0, 256); err != nil {
		return nil, err
	}

	req.Format = imageio.FormatPNG
	if name := query.Get("format"); name != "" {
		if req.Format, err = imageio.ParseFormat(name); err != nil {
			return nil, err
		}
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.AOSamples > 16 {
		logger.Warningf("large image with many occlusion samples may render slowly")
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// sendError writes a JSON error body
func (s *Server) sendError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
