package shapemesh

import (
	"math"

	"github.com/gogpu/shapemesh/internal/geom"
)

// kappa places cubic control points for a quarter circle: 4/3*(sqrt(2)-1).
const kappa = 0.5522847498307936

// RectRing returns the counter-clockwise rectangle with corner (x, y).
func RectRing(x, y, w, h float64) Ring {
	return Ring{Pt(x, y), Pt(x+w, y), Pt(x+w, y+h), Pt(x, y+h)}
}

// EllipseRing returns a counter-clockwise ellipse with the given number of
// segments, starting at angle 0. Fewer than 3 segments selects 3.
func EllipseRing(cx, cy, rx, ry float64, segments int) Ring {
	segments = max(segments, 3)
	r := make(Ring, segments)
	step := 2 * math.Pi / float64(segments)
	for i := range r {
		sin, cos := math.Sincos(float64(i) * step)
		r[i] = Pt(cx+rx*cos, cy+ry*sin)
	}
	return r
}

// RegularPolygonRing returns a counter-clockwise regular polygon with n
// sides, the first vertex at angle rotation. It returns nil for n < 3.
func RegularPolygonRing(n int, cx, cy, radius, rotation float64) Ring {
	if n < 3 {
		return nil
	}
	r := make(Ring, n)
	step := 2 * math.Pi / float64(n)
	for i := range r {
		sin, cos := math.Sincos(rotation + float64(i)*step)
		r[i] = Pt(cx+radius*cos, cy+radius*sin)
	}
	return r
}

// StarRing returns a counter-clockwise star with points tips alternating
// between the outer and inner radius, the first tip straight up in a y-up
// frame. It returns nil for fewer than 3 points.
func StarRing(cx, cy, outerRadius, innerRadius float64, points int) Ring {
	if points < 3 {
		return nil
	}
	r := make(Ring, 2*points)
	step := math.Pi / float64(points)
	for i := range r {
		radius := outerRadius
		if i%2 == 1 {
			radius = innerRadius
		}
		sin, cos := math.Sincos(math.Pi/2 + float64(i)*step)
		r[i] = Pt(cx+radius*cos, cy+radius*sin)
	}
	return r
}

// RoundedRectRing returns a counter-clockwise rectangle whose corners are
// quarter circles of radius radius, each split into segments steps. The
// radius is clamped to half the smaller side; a radius <= 0 gives a plain
// rectangle.
func RoundedRectRing(x, y, w, h, radius float64, segments int) Ring {
	radius = min(radius, min(w, h)/2)
	if radius <= 0 {
		return RectRing(x, y, w, h)
	}
	segments = max(segments, 1)
	centers := [4]Point{
		Pt(x+w-radius, y+radius),
		Pt(x+w-radius, y+h-radius),
		Pt(x+radius, y+h-radius),
		Pt(x+radius, y+radius),
	}
	r := make(Ring, 0, 4*(segments+1))
	for c, center := range centers {
		start := -math.Pi/2 + float64(c)*math.Pi/2
		for k := 0; k <= segments; k++ {
			sin, cos := math.Sincos(start + math.Pi/2*float64(k)/float64(segments))
			r = append(r, Pt(center.X+radius*cos, center.Y+radius*sin))
		}
	}
	// Neighbouring arcs share an end point when a side has zero length.
	return geom.DedupRing(r[:0:0], r, geom.Epsilon, true)
}
