package shapemesh

import (
	"errors"

	"github.com/gogpu/shapemesh/internal/geom"
)

// Sentinel errors. Errors returned by this package wrap one of these, so
// test them with errors.Is.
var (
	// ErrInvalidInput reports a caller bug: too few points, a zero
	// distance, mismatched lengths or an out-of-order hole marker.
	ErrInvalidInput = geom.ErrInvalidInput

	// ErrMultiplePolygons is returned when buffering splits a shape into
	// disjoint pieces. The caller decides what to do; no piece is picked.
	ErrMultiplePolygons = geom.ErrMultiplePolygons

	// ErrTriangulationFailed is returned when a triangulator cannot handle
	// degenerate input such as duplicate points or zero area.
	ErrTriangulationFailed = geom.ErrTriangulationFailed

	// ErrEmptyResult is returned when buffering collapses a shape entirely.
	ErrEmptyResult = geom.ErrEmptyResult
)

// recoverable reports whether err is a geometry failure that should leave
// the mesh unchanged rather than abort the caller.
func recoverable(err error) bool {
	return errors.Is(err, ErrTriangulationFailed) ||
		errors.Is(err, ErrMultiplePolygons) ||
		errors.Is(err, ErrEmptyResult)
}
