package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: invalid frame dimensions")
	ErrInvalidSamples    = errors.New("renderer: invalid sample count")
	ErrInvalidWorkers    = errors.New("renderer: invalid worker count")
	ErrInvalidTileSize   = errors.New("renderer: invalid tile size")
)
