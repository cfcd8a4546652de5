// Package offset computes parallel offsets of open and closed polylines.
//
// Every output point carries the index of the input point it was derived
// from, so callers can stitch the offset back onto the source geometry (the
// anti-aliasing fringe relies on this).
//
// # Corners
//
// Each segment is translated along its outward normal by the signed amount.
// At every corner the signed turn between the incoming and outgoing segment
// decides what is emitted:
//
//   - Near-zero turn: the outgoing segment's start point, no corner geometry.
//   - Inside turn: the intersection of the two offset segments. True segment
//     intersection is preferred; infinite-line intersection is only used when
//     it stays within the miter limit.
//   - Outside turn: a miter, bevel or round join. A miter whose tip lies
//     further than Amount*MiterLimit from the corner is replaced by two points
//     on the miter-limit circle.
//
// Reversals (180 degree turns) and other degenerate corners always take the
// miter-limit bevel. Nothing in this package fails on degenerate geometry.
//
// # Cleanup
//
// Options.Cleanup enables a pass that removes offset edges whose direction
// opposes their source edge, which is what a swallowed edge looks like after
// offsetting a concave ring inward. The pass is best-effort: it repairs
// single inverted edges and rarely untangles larger self-intersections.
package offset
