// Package triangulate fills polygons with triangles.
//
// Three strategies are provided:
//
//   - Ear clipping for simple polygons without holes. Indices refer to the
//     caller's point slice and triangles keep the input winding.
//   - Constrained Delaunay triangulation through poly2tri for polygons with
//     holes. The outer ring and holes are flattened into one point slice,
//     which the returned indices refer to.
//   - A column triangulator that stitches two equal-length edges of a
//     ribbon (an outline or donut strip) together.
//
// Triangulator dispatches between the first two and owns the scratch state
// they need.
package triangulate
