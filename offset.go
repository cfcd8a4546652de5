package shapemesh

import (
	"github.com/gogpu/shapemesh/internal/offset"
)

// DefaultMiterLimit is used when OffsetOptions.MiterLimit <= 0.
const DefaultMiterLimit = offset.DefaultMiterLimit

// OffsetOptions configures Offset.
type OffsetOptions struct {
	// Amount is the signed offset distance. Positive grows the ring away
	// from the interior implied by Clockwise, negative shrinks it.
	Amount float64

	// MiterLimit is the maximum corner-to-miter distance as a multiple of
	// |Amount|. Beyond it a miter corner becomes a two-point bevel on the
	// circle of that radius.
	MiterLimit float64

	Closed bool

	// Clockwise declares the ring's winding in a y-up frame. It is not
	// derived from the points so open paths can choose their outward side.
	Clockwise bool

	// Cleanup enables a best-effort pass that removes edges inverted by a
	// large inset. It handles a short edge being swallowed, not general
	// self-intersections.
	Cleanup bool

	Join          Join
	RoundSegments int
}

// OffsetPoint is one offset point and the index of the input point it was
// derived from.
type OffsetPoint struct {
	Point
	Source int
}

// OffsetResult is an offset polyline. Every corner contributes one point,
// or two or more for bevels and arcs, all sharing the corner's Source.
type OffsetResult []OffsetPoint

// Points returns the offset positions.
func (r OffsetResult) Points() []Point {
	pts := make([]Point, len(r))
	for i, p := range r {
		pts[i] = p.Point
	}
	return pts
}

// Sources returns the source index of every offset point.
func (r OffsetResult) Sources() []int {
	src := make([]int, len(r))
	for i, p := range r {
		src[i] = p.Source
	}
	return src
}

// Offset computes the parallel offset of ring. It fails with
// ErrInvalidInput when Amount is zero or the ring is too short (3 points
// closed, 2 open). Degenerate corners never fail: parallel segments bevel
// and zero-length segments borrow a neighbour's direction.
func Offset(ring Ring, opts OffsetOptions) (OffsetResult, error) {
	return NewBuilder().Offset(ring, opts)
}

// Offset is the Builder form of the package-level Offset.
func (b *Builder) Offset(ring Ring, opts OffsetOptions) (OffsetResult, error) {
	res, err := b.offset(ring, opts.internal())
	if err != nil {
		return nil, err
	}
	out := make(OffsetResult, len(res))
	for i, v := range res {
		out[i] = OffsetPoint{Point: v.P, Source: v.Source}
	}
	return out, nil
}

// offset runs the engine into the fringe scratch buffer.
func (b *Builder) offset(pts []Point, opts offset.Options) (offset.Result, error) {
	var err error
	b.fringe, err = b.off.Append(b.fringe[:0], pts, opts)
	if err != nil {
		return nil, err
	}
	if n := b.off.Removed(); n > 0 {
		Logger().Debug("shapemesh: offset cleanup removed inverted points",
			"removed", n, "points", len(pts))
	}
	return b.fringe, nil
}

func (o OffsetOptions) internal() offset.Options {
	return offset.Options{
		Amount:        o.Amount,
		MiterLimit:    o.MiterLimit,
		Closed:        o.Closed,
		Clockwise:     o.Clockwise,
		Join:          offsetJoin(o.Join),
		RoundSegments: o.RoundSegments,
		Cleanup:       o.Cleanup,
	}
}

func offsetJoin(j Join) offset.Join {
	switch j {
	case JoinBevel:
		return offset.JoinBevel
	case JoinRound:
		return offset.JoinRound
	default:
		return offset.JoinMiter
	}
}
