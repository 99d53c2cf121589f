package koch

import "errors"

var (
	ErrNegativeGenerations = errors.New("generation count must be non-negative")
	ErrDegeneratePolyline  = errors.New("polyline needs at least 2 points to subdivide")
)
