package shapemesh

import (
	"fmt"
	"math"

	"github.com/gogpu/shapemesh/internal/buffer"
	"github.com/gogpu/shapemesh/internal/geom"
	"github.com/gogpu/shapemesh/internal/offset"
	"github.com/gogpu/shapemesh/internal/triangulate"
)

// AddAntiAliasing appends a fringe of the given width around every ring of
// m. Fringe vertices carry alpha 0 and copy UV and color from a boundary
// vertex, so the renderer's interpolation fades the edge out. The main ring
// grows outward and every hole ring shrinks into the hole.
//
// Any existing fringe is cleared first, and the new one is appended after
// the holes so ClearAA removes exactly it. The fringe follows the strategy
// set by WithStrategy (StrategyFast by default), and its corners follow
// WithJoin, WithMiterLimit and WithRoundSegments.
//
// A zero or negative width and a mesh without rings fail with
// ErrInvalidInput. When the precise strategy cannot buffer or triangulate
// a ring, the whole fringe is dropped, the failure is logged and returned,
// and the mesh is left without anti-aliasing.
func AddAntiAliasing(m *Mesh, width float64, opts ...Option) error {
	return NewBuilder().AddAntiAliasing(m, width, opts...)
}

// AddAntiAliasing is the Builder form of the package-level AddAntiAliasing.
func (b *Builder) AddAntiAliasing(m *Mesh, width float64, opts ...Option) error {
	return b.antialias(m, width, buildOptions(opts))
}

func (b *Builder) antialias(m *Mesh, width float64, o options) error {
	if width <= 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		return fmt.Errorf("%w: anti-aliasing width %v must be positive", ErrInvalidInput, width)
	}
	m.ClearAA()
	ranges := m.RingRanges()
	if len(ranges) == 0 {
		return fmt.Errorf("%w: mesh has no rings", ErrInvalidInput)
	}

	m.BeginAA()
	defer m.Modified()
	for i, r := range ranges {
		if r[1]-r[0] < 3 {
			continue
		}
		var err error
		switch o.strategy {
		case StrategyPrecise:
			err = b.fringePrecise(m, r[0], r[1], i > 0, width, o)
		default:
			err = b.fringeFast(m, r[0], r[1], i > 0, width, o)
		}
		if err != nil {
			m.ClearAA()
			Logger().Warn("shapemesh: anti-aliasing aborted",
				"strategy", o.strategy, "ring", i, "error", err)
			return fmt.Errorf("anti-aliasing ring %d: %w", i, err)
		}
	}
	return nil
}

// fringeFast offsets the ring in [start, end) and stitches every offset
// point to the boundary vertex it came from. A run of offset points sharing
// one source (a bevel or arc) becomes a fan of single triangles around that
// vertex; every other step becomes a quad.
func (b *Builder) fringeFast(m *Mesh, start, end int, hole bool, width float64, o options) error {
	ring := b.ringOf(m, start, end)
	amount := width
	if hole {
		amount = -width
	}
	res, err := b.offset(ring, offset.Options{
		Amount:        amount,
		MiterLimit:    o.miterLimit,
		Closed:        true,
		Clockwise:     geom.IsClockwise(ring),
		Join:          offsetJoin(o.join),
		RoundSegments: o.roundSegments,
		Cleanup:       o.cleanup,
	})
	if err != nil {
		return err
	}

	base := m.VertexCount()
	for _, v := range res {
		m.addFringeVertex(v.P, start+v.Source)
	}
	n := len(res)
	for k := range n {
		k1 := (k + 1) % n
		a, c := start+res[k].Source, start+res[k1].Source
		fk, fk1 := base+k, base+k1
		if a == c {
			m.AddTriangle(a, fk, fk1)
			continue
		}
		m.AddTriangle(a, c, fk1)
		m.AddTriangle(a, fk1, fk)
	}
	return nil
}

// fringePrecise buffers the ring in [start, end) and triangulates the band
// between it and its buffer. Vertices on the new boundary copy their
// attributes from the nearest boundary vertex.
func (b *Builder) fringePrecise(m *Mesh, start, end int, hole bool, width float64, o options) error {
	ring := b.ringOf(m, start, end)
	distance := width
	if hole {
		distance = -width
	}
	grown, err := buffer.Ring(ring, nil, buffer.Options{
		Distance:      distance,
		Join:          BufferOptions{Join: o.join}.internal().Join,
		RoundSegments: o.roundSegments,
		MiterLimit:    o.miterLimit,
		SingleSided:   true,
	})
	if err != nil {
		return err
	}

	// The band's outer boundary is whichever ring lies outside the other.
	outer, inner := grown.Outer, ring
	if hole {
		outer, inner = ring, grown.Outer
	}
	res, err := triangulate.Constrained(outer, [][]geom.Point{inner})
	if err != nil {
		return err
	}

	orig := [2]int{res.HoleStarts[0], len(res.Points)}
	if hole {
		orig = [2]int{0, res.HoleStarts[0]}
	}
	ids := make([]int, len(res.Points))
	for i, p := range res.Points {
		nearest := start + geom.Nearest(ring, p)
		if i >= orig[0] && i < orig[1] && m.Position(nearest).Near(p, geom.Epsilon) {
			ids[i] = nearest
			continue
		}
		ids[i] = m.addFringeVertex(p, nearest)
	}
	for _, idx := range res.Indices {
		m.indices = append(m.indices, uint32(ids[idx]))
	}
	return nil
}

// addFringeVertex appends a transparent vertex at p with the UV and color
// of vertex src.
func (m *Mesh) addFringeVertex(p Point, src int) int {
	v := m.vertices[src]
	return m.AddVertex(p, v.UV(), v.Color, 0)
}
