package shapemesh

import (
	"github.com/gogpu/shapemesh/internal/triangulate"
)

// Triangulation is the output of the triangulators.
//
// For ear clipping Points is nil and Indices refer to the caller's outer
// ring. For constrained triangulation Points is the outer ring followed by
// every hole, with consecutive duplicates dropped, and HoleStarts holds the
// offset of each hole in Points.
type Triangulation struct {
	Indices     []uint32
	Points      []Point
	HoleStarts  []int
	Constrained bool
}

// TriangleCount returns the number of triangles.
func (t Triangulation) TriangleCount() int {
	return len(t.Indices) / 3
}

func fromInternal(r triangulate.Result) Triangulation {
	return Triangulation{
		Indices:     r.Indices,
		Points:      r.Points,
		HoleStarts:  r.HoleStarts,
		Constrained: r.Constrained,
	}
}

// Triangulate fills poly with triangles. Constrained Delaunay triangulation
// is used when poly has holes or forceConstrained is set, ear clipping
// otherwise. Degenerate input fails with ErrTriangulationFailed.
func Triangulate(poly PolygonWithHoles, forceConstrained bool) (Triangulation, error) {
	return NewBuilder().Triangulate(poly, forceConstrained)
}

// Triangulate is the Builder form of the package-level Triangulate.
func (b *Builder) Triangulate(poly PolygonWithHoles, forceConstrained bool) (Triangulation, error) {
	if err := poly.Validate(); err != nil {
		return Triangulation{}, err
	}
	res, err := b.tri.Triangulate(poly.Outer, poly.holes(), forceConstrained)
	if err != nil {
		return Triangulation{}, err
	}
	if b.tri.Stalled() && !res.Constrained {
		Logger().Debug("shapemesh: ear clipping stopped early",
			"points", len(poly.Outer), "triangles", res.TriangleCount())
	}
	return fromInternal(res), nil
}

// EarClip triangulates a simple polygon without holes. A valid polygon
// with n points yields n-2 triangles wound like the input. On
// self-intersecting input clipping stops at a bounded iteration count and
// returns the triangles found so far.
func EarClip(points []Point) ([]uint32, error) {
	return triangulate.EarClip(points)
}

// TriangulateConstrained runs constrained Delaunay triangulation of outer
// with holes. Triangles take the winding of outer.
func TriangulateConstrained(outer Ring, holes []Ring) (Triangulation, error) {
	res, err := triangulate.Constrained(outer, ringsOf(holes))
	if err != nil {
		return Triangulation{}, err
	}
	return fromInternal(res), nil
}

// TriangulateColumns triangulates a ribbon of n points, n even and at least
// 4. Points 0..n/2-1 are one edge and n/2..n-1 the other. With
// sameDirection point i pairs with i+n/2, otherwise with n-1-i. closed adds
// the column from the last pair back to the first.
func TriangulateColumns(n int, sameDirection, closed bool) ([]uint32, error) {
	return triangulate.Columns(nil, n, sameDirection, closed)
}
