package geom

import "errors"

// Sentinel errors shared by the geometry engines. The root package exports
// the same values so errors.Is works across package boundaries.
var (
	// ErrInvalidInput is returned for too few points, a zero distance or
	// mismatched lengths.
	ErrInvalidInput = errors.New("shapemesh: invalid input")

	// ErrMultiplePolygons is returned when buffering yields disjoint pieces.
	ErrMultiplePolygons = errors.New("shapemesh: multiple polygons produced")

	// ErrTriangulationFailed is returned when a triangulator rejects
	// degenerate input.
	ErrTriangulationFailed = errors.New("shapemesh: triangulation failed")

	// ErrEmptyResult is returned when an operation collapses the shape.
	ErrEmptyResult = errors.New("shapemesh: empty result")
)
