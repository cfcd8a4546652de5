// Package path flattens move/line/curve path elements into point rings.
package path

import (
	"math"

	"github.com/gogpu/shapemesh/internal/geom"
)

// DefaultTolerance is the maximum distance between a curve and its
// flattened polyline when no tolerance is given.
const DefaultTolerance = 0.1

// maxDepth bounds curve subdivision.
const maxDepth = 16

// Element is one path command.
type Element interface {
	isElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ Point geom.Point }

func (MoveTo) isElement() {}

// LineTo draws a line.
type LineTo struct{ Point geom.Point }

func (LineTo) isElement() {}

// QuadTo draws a quadratic curve.
type QuadTo struct{ Control, Point geom.Point }

func (QuadTo) isElement() {}

// CubicTo draws a cubic curve.
type CubicTo struct{ Control1, Control2, Point geom.Point }

func (CubicTo) isElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isElement() {}

// Ring is one flattened subpath.
type Ring struct {
	Points []geom.Point
	Closed bool
}

// Flatten converts elements into rings, one per subpath. Curves are
// subdivided until every control point is within tolerance of the chord.
// Consecutive duplicate points and the closing point of a closed ring are
// dropped. Subpaths with fewer than two distinct points are skipped.
func Flatten(elements []Element, tolerance float64) []Ring {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	var (
		rings   []Ring
		current []geom.Point
		pen     geom.Point
	)
	flush := func(closed bool) {
		pts := geom.DedupRing(nil, current, geom.Epsilon, closed)
		if len(pts) >= 2 && (!closed || len(pts) >= 3) {
			rings = append(rings, Ring{Points: pts, Closed: closed})
		}
		current = current[:0]
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			if len(current) > 0 {
				flush(false)
			}
			pen = e.Point
			current = append(current, pen)

		case LineTo:
			if len(current) == 0 {
				current = append(current, pen)
			}
			pen = e.Point
			current = append(current, pen)

		case QuadTo:
			if len(current) == 0 {
				current = append(current, pen)
			}
			current = flattenQuad(current, pen, e.Control, e.Point, tolerance, 0)
			pen = e.Point

		case CubicTo:
			if len(current) == 0 {
				current = append(current, pen)
			}
			current = flattenCubic(current, pen, e.Control1, e.Control2, e.Point, tolerance, 0)
			pen = e.Point

		case Close:
			if len(current) > 0 {
				pen = current[0]
				flush(true)
			}
		}
	}
	if len(current) > 0 {
		flush(false)
	}
	return rings
}

// flattenQuad appends the subdivided curve after p0 to dst.
func flattenQuad(dst []geom.Point, p0, p1, p2 geom.Point, tolerance float64, depth int) []geom.Point {
	if depth >= maxDepth || distanceToSegment(p1, p0, p2) < tolerance {
		return append(dst, p2)
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	dst = flattenQuad(dst, p0, q0, q2, tolerance, depth+1)
	return flattenQuad(dst, q2, q1, p2, tolerance, depth+1)
}

// flattenCubic appends the subdivided curve after p0 to dst.
func flattenCubic(dst []geom.Point, p0, p1, p2, p3 geom.Point, tolerance float64, depth int) []geom.Point {
	dist := math.Max(distanceToSegment(p1, p0, p3), distanceToSegment(p2, p0, p3))
	if depth >= maxDepth || dist < tolerance {
		return append(dst, p3)
	}

	// de Casteljau split at t = 0.5.
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	dst = flattenCubic(dst, p0, q0, r0, s, tolerance, depth+1)
	return flattenCubic(dst, s, r1, q2, p3, tolerance, depth+1)
}

// distanceToSegment returns the distance from p to the segment ab.
func distanceToSegment(p, a, b geom.Point) float64 {
	ab := b.Sub(a)
	l2 := ab.LengthSquared()
	if l2 < 1e-20 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / l2
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
