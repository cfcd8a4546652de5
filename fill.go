package shapemesh

import (
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/shapemesh/internal/offset"
	"github.com/gogpu/shapemesh/internal/triangulate"
)

// Fill rebuilds m as the triangulated interior of poly. Vertices get planar
// UVs over the outer ring's bounds, the WithColor color and alpha 1. Holes
// are recorded with MarkHoleStart, and a fringe is added when
// WithAntiAliasing is given.
//
// Invalid input returns an error. A triangulation failure is logged and
// reported as false with m left untouched, so a failed rebuild keeps the
// previous geometry. A failed fringe leaves the fill in place without
// anti-aliasing.
func Fill(m *Mesh, poly PolygonWithHoles, opts ...Option) (bool, error) {
	return NewBuilder().Fill(m, poly, opts...)
}

// Fill is the Builder form of the package-level Fill.
func (b *Builder) Fill(m *Mesh, poly PolygonWithHoles, opts ...Option) (bool, error) {
	o := buildOptions(opts)
	if err := poly.Validate(); err != nil {
		return false, err
	}
	res, err := b.Triangulate(poly, o.constrained)
	if err != nil {
		return b.failed("fill", err)
	}

	pts, starts := res.Points, res.HoleStarts
	if !res.Constrained {
		pts = poly.Outer
	}
	writeMesh(m, pts, starts, res.Indices, boundsOf(poly.Outer), o.color.Pack())
	return true, b.finish(m, o)
}

// Ribbon rebuilds m as the strip between two closed rings of equal length,
// such as the two sides of an outline. When both rings wind the same way
// outer[i] pairs with inner[i]; otherwise outer[i] pairs with
// inner[len-1-i]. inner is recorded as a hole so a fringe covers both
// edges.
func Ribbon(m *Mesh, outer, inner Ring, opts ...Option) (bool, error) {
	return NewBuilder().Ribbon(m, outer, inner, opts...)
}

// Ribbon is the Builder form of the package-level Ribbon.
func (b *Builder) Ribbon(m *Mesh, outer, inner Ring, opts ...Option) (bool, error) {
	return b.ribbon(m, outer, inner, buildOptions(opts))
}

func (b *Builder) ribbon(m *Mesh, outer, inner Ring, o options) (bool, error) {
	if len(outer) != len(inner) {
		return false, fmt.Errorf("%w: ribbon rings have %d and %d points", ErrInvalidInput, len(outer), len(inner))
	}
	if len(outer) < 3 {
		return false, fmt.Errorf("%w: ribbon rings have %d points, need at least 3", ErrInvalidInput, len(outer))
	}
	n := 2 * len(outer)
	same := outer.IsClockwise() == inner.IsClockwise()

	var err error
	b.indices, err = triangulate.Columns(b.indices[:0], n, same, true)
	if err != nil {
		return false, err
	}
	b.ring = append(append(b.ring[:0], outer...), inner...)
	writeMesh(m, b.ring, []int{len(outer)}, b.indices, boundsOf(outer), o.color.Pack())
	return true, b.finish(m, o)
}

// Outline rebuilds m as a band of the given thickness centred on a closed
// ring. Both sides come from the path offset engine with the WithJoin and
// WithMiterLimit corners. When every corner gives the same number of points
// on both sides they are joined as a ribbon; otherwise the band is filled
// by constrained triangulation.
func Outline(m *Mesh, ring Ring, thickness float64, opts ...Option) (bool, error) {
	return NewBuilder().Outline(m, ring, thickness, opts...)
}

// Outline is the Builder form of the package-level Outline.
func (b *Builder) Outline(m *Mesh, ring Ring, thickness float64, opts ...Option) (bool, error) {
	o := buildOptions(opts)
	if thickness <= 0 || math.IsNaN(thickness) || math.IsInf(thickness, 0) {
		return false, fmt.Errorf("%w: outline thickness %v must be positive", ErrInvalidInput, thickness)
	}
	if len(ring) < 3 {
		return false, fmt.Errorf("%w: outline ring has %d points, need at least 3", ErrInvalidInput, len(ring))
	}

	side := func(amount float64) (Ring, []int, error) {
		res, err := b.offset(ring, offset.Options{
			Amount:        amount,
			MiterLimit:    o.miterLimit,
			Closed:        true,
			Clockwise:     ring.IsClockwise(),
			Join:          offsetJoin(o.join),
			RoundSegments: o.roundSegments,
			Cleanup:       o.cleanup,
		})
		if err != nil {
			return nil, nil, err
		}
		return res.Points(nil), res.Sources(nil), nil
	}
	outer, outerSrc, err := side(thickness / 2)
	if err != nil {
		return false, err
	}
	inner, innerSrc, err := side(-thickness / 2)
	if err != nil {
		return false, err
	}

	if slices.Equal(outerSrc, innerSrc) {
		return b.ribbon(m, outer, inner, o)
	}
	return b.fillBand(m, outer, inner, o)
}

// fillBand fills the area between outer and inner with constrained
// triangulation.
func (b *Builder) fillBand(m *Mesh, outer, inner Ring, o options) (bool, error) {
	res, err := triangulate.Constrained(outer, ringsOf([]Ring{inner}))
	if err != nil {
		return b.failed("outline", err)
	}
	writeMesh(m, res.Points, res.HoleStarts, res.Indices, boundsOf(outer), o.color.Pack())
	return true, b.finish(m, o)
}

// failed turns recoverable geometry errors into a logged "no change".
func (b *Builder) failed(op string, err error) (bool, error) {
	if recoverable(err) {
		Logger().Warn("shapemesh: triangulation failed, mesh unchanged", "op", op, "error", err)
		return false, nil
	}
	return false, err
}

// finish applies the requested fringe. Geometry failures were already
// logged by the anti-aliaser and leave the mesh without a fringe.
func (b *Builder) finish(m *Mesh, o options) error {
	if o.aaWidth <= 0 {
		return nil
	}
	if err := b.antialias(m, o.aaWidth, o); err != nil && !recoverable(err) {
		return err
	}
	return nil
}

// writeMesh replaces the contents of m. holeStarts index into pts. UVs map
// uv onto the unit square.
func writeMesh(m *Mesh, pts []Point, holeStarts []int, indices []uint32, uv Rect, color uint32) {
	m.Clear()
	if len(pts) >= 3 {
		// Cannot fail for n >= 3.
		_ = m.EnsureCapacity(len(pts))
	}
	w, h := uv.Width(), uv.Height()
	next := 0
	for i, p := range pts {
		if next < len(holeStarts) && holeStarts[next] == i {
			// Hole starts from the triangulators are strictly increasing
			// and positive.
			_ = m.MarkHoleStart()
			next++
		}
		var t Point
		if w > 0 {
			t.X = (p.X - uv.Min.X) / w
		}
		if h > 0 {
			t.Y = (p.Y - uv.Min.Y) / h
		}
		m.AddVertex(p, t, color, 1)
	}
	m.indices = append(m.indices, indices...)
	m.Modified()
	m.color, m.colorValid = color, true
	m.alpha, m.alphaValid = 1, true
}
