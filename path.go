package shapemesh

import (
	"fmt"

	"github.com/gogpu/shapemesh/internal/path"
)

// Path is a sequence of move, line, curve and close commands. Rings turns
// it into the point rings the mesh builders consume.
type Path struct {
	elements []path.Element
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]path.Element, 0, 16),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, path.MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, path.LineTo{Point: pt})
	p.current = pt
}

// QuadTo draws a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, path.QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, path.CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, path.Close{})
	p.current = p.start
}

// AddRing appends r as a closed subpath.
func (p *Path) AddRing(r Ring) {
	if len(r) == 0 {
		return
	}
	p.MoveTo(r[0].X, r[0].Y)
	for _, pt := range r[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Len returns the number of commands.
func (p *Path) Len() int {
	return len(p.elements)
}

// CurrentPoint returns the end point of the last command.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Transform returns a copy of the path with m applied to every point.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case path.MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case path.LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case path.QuadTo:
			c := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.QuadTo(c.X, c.Y, pt.X, pt.Y)
		case path.CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case path.Close:
			result.Close()
		}
	}
	return result
}

// SubpathRing is one flattened subpath.
type SubpathRing struct {
	Ring   Ring
	Closed bool
}

// Rings flattens the path. Curves are subdivided until they are within
// tolerance of their polyline; a tolerance <= 0 selects 0.1. Duplicate
// points are dropped and subpaths too short to form a ring are skipped.
func (p *Path) Rings(tolerance float64) []SubpathRing {
	flat := path.Flatten(p.elements, tolerance)
	out := make([]SubpathRing, len(flat))
	for i, r := range flat {
		out[i] = SubpathRing{Ring: r.Points, Closed: r.Closed}
	}
	return out
}

// Polygon flattens the path into a polygon: the first closed subpath is
// the outer ring and every later closed subpath is a hole. Open subpaths
// are ignored. A path without closed subpaths fails with ErrInvalidInput.
func (p *Path) Polygon(tolerance float64) (PolygonWithHoles, error) {
	var poly PolygonWithHoles
	for _, r := range p.Rings(tolerance) {
		switch {
		case !r.Closed:
		case poly.Outer == nil:
			poly.Outer = r.Ring
		default:
			poly.Holes = append(poly.Holes, r.Ring)
		}
	}
	if poly.Outer == nil {
		return PolygonWithHoles{}, fmt.Errorf("%w: path has no closed subpath", ErrInvalidInput)
	}
	return poly, nil
}
