// Package shapemesh turns 2D shapes into triangle meshes for a GPU renderer.
//
// # Overview
//
// Closed polygons with holes, open paths and simple primitives become an
// interleaved vertex buffer plus a triangle index buffer. An optional
// translucent fringe around every boundary gives anti-aliased edges without
// hardware MSAA.
//
// # Quick Start
//
//	import "github.com/gogpu/shapemesh"
//
//	m := shapemesh.NewMesh()
//	poly := shapemesh.PolygonWithHoles{
//		Outer: shapemesh.RectRing(0, 0, 100, 50),
//		Holes: []shapemesh.Ring{shapemesh.EllipseRing(50, 25, 10, 10, 32)},
//	}
//	ok, err := shapemesh.Fill(m, poly,
//		shapemesh.WithColor(shapemesh.Hex("#3366ff")),
//		shapemesh.WithAntiAliasing(1))
//
//	// Hand the buffers to the renderer.
//	vertices, indices := m.VertexBytes(), m.IndexBytes()
//
// # Architecture
//
// The package is organized into:
//   - Public API: Mesh, Ring, PolygonWithHoles, Path, Builder, Batch
//   - Path offset engine (internal/offset): parallel offsets with miter,
//     bevel and round joins, keeping a link from every offset point to its
//     source point
//   - Polygon buffer engine (internal/buffer): robust buffering through a
//     polygon clipper
//   - Triangulators (internal/triangulate): ear clipping, constrained
//     Delaunay and the column triangulator for ribbons
//
// # Mesh Layout
//
// A Mesh stores the main ring first, then every hole ring, then the
// anti-aliasing fringe. Hole and fringe boundaries are integer offsets into
// the flat buffers, so the fringe can be cleared with ClearAA and rebuilt
// without touching the fill.
//
// # Coordinate System
//
// Winding is measured in a y-up frame: positive signed area is
// counter-clockwise. In a y-down frame the names swap but every operation
// behaves the same.
//
// # Errors
//
// Invalid input (too few points, a zero distance) returns ErrInvalidInput.
// Geometry failures (ErrTriangulationFailed, ErrMultiplePolygons,
// ErrEmptyResult) are recoverable: the mesh builders log them through the
// logger set with SetLogger and leave the mesh unchanged.
//
// # Concurrency
//
// A Mesh has a single writer. Builders hold reusable scratch buffers and
// are not safe for concurrent use; BuilderPool and Batch give every
// goroutine its own.
package shapemesh
