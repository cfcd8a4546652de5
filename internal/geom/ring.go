package geom

import "math"

// SignedArea returns the shoelace area of a closed ring. The result is
// positive for counter-clockwise rings in a y-up frame.
func SignedArea(pts []Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var sum float64
	prev := pts[n-1]
	for _, p := range pts {
		sum += prev.X*p.Y - p.X*prev.Y
		prev = p
	}
	return sum / 2
}

// IsClockwise reports whether the ring has negative signed area.
func IsClockwise(pts []Point) bool {
	return SignedArea(pts) < 0
}

// Orient returns the z component of (b-a) x (c-a). Positive means c lies to
// the left of the directed line a->b.
func Orient(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// InTriangle reports whether p lies inside or on the triangle abc. The
// triangle may have either winding.
func InTriangle(p, a, b, c Point) bool {
	d1 := Orient(a, b, p)
	d2 := Orient(b, c, p)
	d3 := Orient(c, a, p)
	hasNeg := d1 < -Epsilon || d2 < -Epsilon || d3 < -Epsilon
	hasPos := d1 > Epsilon || d2 > Epsilon || d3 > Epsilon
	return !(hasNeg && hasPos)
}

// LineIntersection intersects the infinite lines through (a0,a1) and
// (b0,b1). ok is false when the lines are parallel.
func LineIntersection(a0, a1, b0, b1 Point) (p Point, ok bool) {
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	den := da.Cross(db)
	if math.Abs(den) < Epsilon*math.Max(1, da.Length()*db.Length()) {
		return Point{}, false
	}
	t := b0.Sub(a0).Cross(db) / den
	return a0.Add(da.Mul(t)), true
}

// SegmentIntersection intersects the closed segments [a0,a1] and [b0,b1].
// ok is false when they are parallel or do not overlap.
func SegmentIntersection(a0, a1, b0, b1 Point) (p Point, ok bool) {
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	den := da.Cross(db)
	if math.Abs(den) < Epsilon*math.Max(1, da.Length()*db.Length()) {
		return Point{}, false
	}
	w := b0.Sub(a0)
	t := w.Cross(db) / den
	u := w.Cross(da) / den
	const slack = 1e-9
	if t < -slack || t > 1+slack || u < -slack || u > 1+slack {
		return Point{}, false
	}
	return a0.Add(da.Mul(t)), true
}

// Bounds returns the axis-aligned bounds of pts. ok is false for an empty
// slice.
func Bounds(pts []Point) (minPt, maxPt Point, ok bool) {
	if len(pts) == 0 {
		return Point{}, Point{}, false
	}
	minPt, maxPt = pts[0], pts[0]
	for _, p := range pts[1:] {
		minPt.X = math.Min(minPt.X, p.X)
		minPt.Y = math.Min(minPt.Y, p.Y)
		maxPt.X = math.Max(maxPt.X, p.X)
		maxPt.Y = math.Max(maxPt.Y, p.Y)
	}
	return minPt, maxPt, true
}

// Nearest returns the index of the point in pts closest to p, or -1 for an
// empty slice.
func Nearest(pts []Point, p Point) int {
	best := -1
	bestD := math.Inf(1)
	for i, q := range pts {
		if d := q.Sub(p).LengthSquared(); d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

// DedupRing removes consecutive points closer than eps, including the
// wrap-around pair of a closed ring. It appends to dst and returns it.
func DedupRing(dst, pts []Point, eps float64, closed bool) []Point {
	start := len(dst)
	for _, p := range pts {
		if len(dst) > start && dst[len(dst)-1].Near(p, eps) {
			continue
		}
		dst = append(dst, p)
	}
	if closed {
		for len(dst)-start > 1 && dst[len(dst)-1].Near(dst[start], eps) {
			dst = dst[:len(dst)-1]
		}
	}
	return dst
}
