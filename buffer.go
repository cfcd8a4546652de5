package shapemesh

import (
	"github.com/gogpu/shapemesh/internal/buffer"
	"github.com/gogpu/shapemesh/internal/geom"
)

// BufferOptions configures BufferRing.
type BufferOptions struct {
	// Distance is the buffer distance. One-sided buffers grow the polygon
	// for positive values and shrink it for negative ones. Two-sided buffers
	// use |Distance| on both sides of every ring.
	Distance float64

	Join Join
	Cap  Cap

	// RoundSegments is the arc steps per half turn of round joins and caps.
	// Values <= 0 select 8.
	RoundSegments int

	// MiterLimit is the maximum miter length as a multiple of Distance.
	// The buffering library clamps it to at least 2.
	MiterLimit float64

	SingleSided bool

	// Open treats outer as an open polyline capped with Cap. Open paths
	// can only be buffered on both sides.
	Open bool
}

// BufferRing buffers outer and its holes with a robust polygon clipper.
// Unlike Offset the result is topologically valid: self-intersections are
// resolved, holes may appear or vanish, and collapsed parts are removed.
//
// It fails with ErrInvalidInput for a zero distance, too few points or a
// one-sided open buffer, with ErrMultiplePolygons when the result is not a
// single polygon, and with ErrEmptyResult when nothing is left. The outer
// ring of the result is counter-clockwise and holes are clockwise.
func BufferRing(outer Ring, holes []Ring, opts BufferOptions) (PolygonWithHoles, error) {
	poly, err := buffer.Ring(outer, ringsOf(holes), opts.internal())
	if err != nil {
		return PolygonWithHoles{}, err
	}
	out := PolygonWithHoles{Outer: poly.Outer}
	for _, h := range poly.Holes {
		out.Holes = append(out.Holes, h)
	}
	return out, nil
}

func (o BufferOptions) internal() buffer.Options {
	opts := buffer.Options{
		Distance:      o.Distance,
		RoundSegments: o.RoundSegments,
		MiterLimit:    o.MiterLimit,
		SingleSided:   o.SingleSided,
		Open:          o.Open,
	}
	switch o.Join {
	case JoinBevel:
		opts.Join = buffer.JoinBevel
	case JoinRound:
		opts.Join = buffer.JoinRound
	default:
		opts.Join = buffer.JoinMiter
	}
	switch o.Cap {
	case CapRound:
		opts.Cap = buffer.CapRound
	case CapSquare:
		opts.Cap = buffer.CapSquare
	default:
		opts.Cap = buffer.CapNone
	}
	return opts
}

func ringsOf(rings []Ring) [][]geom.Point {
	if len(rings) == 0 {
		return nil
	}
	out := make([][]geom.Point, len(rings))
	for i, r := range rings {
		out[i] = r
	}
	return out
}
