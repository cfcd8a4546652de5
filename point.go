package shapemesh

import "github.com/gogpu/shapemesh/internal/geom"

// Point represents a 2D point or vector.
type Point = geom.Point

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle. An empty Rect has Min > Max.
type Rect struct {
	Min, Max Point
}

// emptyRect is the zero-area rectangle returned for empty regions.
var emptyRect = Rect{Min: Pt(1, 1), Max: Pt(0, 0)}

// Empty reports whether r contains no points.
func (r Rect) Empty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 {
	if r.Empty() {
		return 0
	}
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent of r.
func (r Rect) Height() float64 {
	if r.Empty() {
		return 0
	}
	return r.Max.Y - r.Min.Y
}

func boundsOf(pts []Point) Rect {
	lo, hi, ok := geom.Bounds(pts)
	if !ok {
		return emptyRect
	}
	return Rect{Min: lo, Max: hi}
}
