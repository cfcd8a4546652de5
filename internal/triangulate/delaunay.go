package triangulate

import (
	"fmt"
	"math"

	poly2tri "github.com/ByteArena/poly2tri-go"

	"github.com/gogpu/shapemesh/internal/geom"
)

// snapGrid is the grid coordinates are rounded to before sweeping. The sweep
// breaks on float noise such as sin(pi) landing at 1e-16 instead of 0.
const snapGrid = 1e9

// Constrained triangulates outer with holes using constrained Delaunay
// triangulation. Points are snapped to a 1e-9 grid and consecutive duplicates
// are dropped from every ring, then the rings are flattened outer first and
// holes in order. The result's indices and HoleStarts refer to that
// flattened slice, returned as Points. Triangles take the winding of the
// outer ring.
//
// Rings with fewer than 3 points are ErrInvalidInput. Rings that collapse
// below 3 distinct points are ErrTriangulationFailed.
func Constrained(outer []geom.Point, holes [][]geom.Point) (Result, error) {
	if len(outer) < 3 {
		return Result{}, fmt.Errorf("%w: outer ring has %d points, need at least 3", ErrInvalidInput, len(outer))
	}
	for i, h := range holes {
		if len(h) < 3 {
			return Result{}, fmt.Errorf("%w: hole %d has %d points, need at least 3", ErrInvalidInput, i, len(h))
		}
	}

	flat := appendSnapped(nil, outer)
	if len(flat) < 3 {
		return Result{}, fmt.Errorf("%w: outer ring has %d distinct points", ErrTriangulationFailed, len(flat))
	}
	outerLen := len(flat)

	starts := make([]int, 0, len(holes))
	for i, h := range holes {
		start := len(flat)
		flat = appendSnapped(flat, h)
		if len(flat)-start < 3 {
			return Result{}, fmt.Errorf("%w: hole %d has %d distinct points", ErrTriangulationFailed, i, len(flat)-start)
		}
		starts = append(starts, start)
	}

	indices, err := sweep(flat, outerLen, starts)
	if err != nil {
		return Result{}, err
	}

	// Orient every triangle like the outer ring.
	sign := 1.0
	if geom.IsClockwise(flat[:outerLen]) {
		sign = -1
	}
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := flat[indices[i]], flat[indices[i+1]], flat[indices[i+2]]
		if geom.Orient(a, b, c)*sign < 0 {
			indices[i+1], indices[i+2] = indices[i+2], indices[i+1]
		}
	}

	return Result{
		Indices:     indices,
		Points:      flat,
		HoleStarts:  starts,
		Constrained: true,
	}, nil
}

// appendSnapped appends the closed ring pts to dst with every coordinate
// rounded to snapGrid and consecutive duplicates removed.
func appendSnapped(dst, pts []geom.Point) []geom.Point {
	start := len(dst)
	for _, p := range pts {
		dst = append(dst, geom.Point{X: snap(p.X), Y: snap(p.Y)})
	}
	// Compacting in place is safe: writes never pass reads.
	return geom.DedupRing(dst[:start], dst[start:], geom.Epsilon, true)
}

func snap(v float64) float64 {
	return math.Round(v*snapGrid) / snapGrid
}

// sweep runs poly2tri over the flattened rings. The library panics on
// degenerate input, so panics are turned into ErrTriangulationFailed.
func sweep(flat []geom.Point, outerLen int, starts []int) (indices []uint32, err error) {
	defer func() {
		if r := recover(); r != nil {
			indices = nil
			err = fmt.Errorf("%w: %v", ErrTriangulationFailed, r)
		}
	}()

	pts := make([]*poly2tri.Point, len(flat))
	index := make(map[*poly2tri.Point]uint32, len(flat))
	for i, p := range flat {
		pts[i] = poly2tri.NewPoint(p.X, p.Y)
		index[pts[i]] = uint32(i)
	}

	// Full slice expressions keep AddHole from appending into pts.
	sc := poly2tri.NewSweepContext(pts[:outerLen:outerLen], false)
	for i, start := range starts {
		end := len(pts)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		sc.AddHole(pts[start:end:end])
	}
	sc.Triangulate()

	tris := sc.GetTriangles()
	if len(tris) == 0 {
		return nil, fmt.Errorf("%w: no triangles produced", ErrTriangulationFailed)
	}
	indices = make([]uint32, 0, 3*len(tris))
	for _, t := range tris {
		for _, p := range t.Points {
			i, ok := index[p]
			if !ok {
				return nil, fmt.Errorf("%w: triangle references an unknown point", ErrTriangulationFailed)
			}
			indices = append(indices, i)
		}
	}
	return indices, nil
}
