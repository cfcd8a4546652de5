package shapemesh

import (
	"fmt"

	"github.com/gogpu/shapemesh/internal/geom"
)

// Ring is an ordered sequence of points forming a boundary. A closed ring
// needs at least 3 points and an open one at least 2. The closing edge of a
// closed ring is implicit.
type Ring []Point

// SignedArea returns the ring's area, positive for counter-clockwise
// winding in a y-up frame.
func (r Ring) SignedArea() float64 {
	return geom.SignedArea(r)
}

// IsClockwise reports whether the ring has negative signed area.
func (r Ring) IsClockwise() bool {
	return geom.IsClockwise(r)
}

// Reversed returns a copy of r with the opposite winding.
func (r Ring) Reversed() Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}

// Bounds returns the bounding rectangle of r.
func (r Ring) Bounds() Rect {
	return boundsOf(r)
}

// Transform returns a copy of r with m applied to every point.
func (r Ring) Transform(m Matrix) Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[i] = m.TransformPoint(p)
	}
	return out
}

// PolygonWithHoles is one outer ring and zero or more holes. Holes must not
// overlap each other or cross the outer boundary.
type PolygonWithHoles struct {
	Outer Ring
	Holes []Ring
}

// Validate checks the point counts of every ring.
func (p PolygonWithHoles) Validate() error {
	if len(p.Outer) < 3 {
		return fmt.Errorf("%w: outer ring has %d points, need at least 3", ErrInvalidInput, len(p.Outer))
	}
	for i, h := range p.Holes {
		if len(h) < 3 {
			return fmt.Errorf("%w: hole %d has %d points, need at least 3", ErrInvalidInput, i, len(h))
		}
	}
	return nil
}

func (p PolygonWithHoles) holes() [][]geom.Point {
	return ringsOf(p.Holes)
}

// Join specifies the geometry where two offset segments meet.
type Join int

const (
	// JoinMiter extends both segments to their intersection, falling back to
	// a bevel beyond the miter limit.
	JoinMiter Join = iota
	// JoinBevel cuts the corner with a straight edge.
	JoinBevel
	// JoinRound rounds the corner with an arc.
	JoinRound
)

// String returns a string representation of the join.
func (j Join) String() string {
	switch j {
	case JoinMiter:
		return "Miter"
	case JoinBevel:
		return "Bevel"
	case JoinRound:
		return "Round"
	default:
		return fmt.Sprintf("Join(%d)", int(j))
	}
}

// Cap specifies the geometry at the ends of open paths.
type Cap int

const (
	// CapNone ends the path flush with its last point.
	CapNone Cap = iota
	// CapRound adds a half circle.
	CapRound
	// CapSquare extends the path by the buffer distance.
	CapSquare
)

// String returns a string representation of the cap.
func (c Cap) String() string {
	switch c {
	case CapNone:
		return "None"
	case CapRound:
		return "Round"
	case CapSquare:
		return "Square"
	default:
		return fmt.Sprintf("Cap(%d)", int(c))
	}
}

// Strategy selects the anti-aliasing algorithm.
type Strategy int

const (
	// StrategyFast offsets every ring with the path offset engine and
	// stitches the fringe directly to the boundary.
	StrategyFast Strategy = iota
	// StrategyPrecise buffers every ring and triangulates the band between
	// the old and new boundary.
	StrategyPrecise
)

// String returns a string representation of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyFast:
		return "Fast"
	case StrategyPrecise:
		return "Precise"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}
