package triangulate

import (
	"fmt"

	"github.com/gogpu/shapemesh/internal/geom"
)

// Errors returned by the triangulators.
var (
	ErrInvalidInput        = geom.ErrInvalidInput
	ErrTriangulationFailed = geom.ErrTriangulationFailed
)

// Result is a triangulation. For ear clipping Points is nil and Indices refer
// to the caller's outer ring. For constrained triangulation Points is the
// flattened outer ring followed by every hole, and HoleStarts holds the
// offset of each hole in Points.
type Result struct {
	Indices     []uint32
	Points      []geom.Point
	HoleStarts  []int
	Constrained bool
}

// TriangleCount returns the number of triangles.
func (r Result) TriangleCount() int {
	return len(r.Indices) / 3
}

// Triangulator picks a strategy per polygon and owns the ear clipper's
// scratch state. It is not safe for concurrent use.
type Triangulator struct {
	ear EarClipper
}

// Stalled reports whether the last ear clipping run gave up early.
func (t *Triangulator) Stalled() bool {
	return t.ear.Stalled()
}

// Triangulate fills outer minus holes. Constrained triangulation is used
// when holes are present or force is set; ear clipping otherwise.
func (t *Triangulator) Triangulate(outer []geom.Point, holes [][]geom.Point, force bool) (Result, error) {
	if len(holes) > 0 || force {
		res, err := Constrained(outer, holes)
		if err != nil {
			return Result{}, fmt.Errorf("constrained triangulation: %w", err)
		}
		return res, nil
	}
	indices, err := t.ear.Append(nil, outer)
	if err != nil {
		return Result{}, fmt.Errorf("ear clipping: %w", err)
	}
	return Result{Indices: indices}, nil
}
