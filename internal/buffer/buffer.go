// Package buffer grows or shrinks polygons with holes through the Clipper
// offsetting engine. Unlike the offset package it produces topologically
// correct output: self-intersections are resolved and collapsed parts vanish.
package buffer

import (
	"fmt"
	"math"

	clipper "github.com/ctessum/go.clipper"

	"github.com/gogpu/shapemesh/internal/geom"
)

// Errors returned by Ring.
var (
	// ErrInvalidInput is returned for a zero distance, too few points, or a
	// one-sided buffer of an open path.
	ErrInvalidInput = geom.ErrInvalidInput

	// ErrMultiplePolygons is returned when the result is disconnected.
	ErrMultiplePolygons = geom.ErrMultiplePolygons

	// ErrEmptyResult is returned when the shape collapses entirely.
	ErrEmptyResult = geom.ErrEmptyResult
)

// Scale converts float coordinates to Clipper's integer grid.
const Scale = 1e4

// DefaultRoundSegments is the arc steps per half turn when
// Options.RoundSegments <= 0.
const DefaultRoundSegments = 8

// Join selects the corner geometry.
type Join int

const (
	JoinMiter Join = iota
	JoinBevel
	JoinRound
)

// Cap selects the end geometry of open paths.
type Cap int

const (
	CapNone Cap = iota
	CapRound
	CapSquare
)

// Options configures a buffer operation.
type Options struct {
	// Distance is the signed buffer distance. Only single-sided closed
	// buffers honour the sign; double-sided buffers use |Distance|.
	Distance float64

	Join Join
	Cap  Cap

	// RoundSegments is the arc steps per half turn for round joins and caps.
	RoundSegments int

	// MiterLimit is the maximum miter length as a multiple of Distance.
	// Clipper never goes below 2.
	MiterLimit float64

	// SingleSided grows (or shrinks) the filled polygon. When false, every
	// ring is treated as a line and thickened on both sides.
	SingleSided bool

	// Open treats the outer ring as an open polyline with caps.
	Open bool
}

// Polygon is one outer ring with its holes. Outer rings are counter-clockwise
// and holes clockwise in a y-up frame.
type Polygon struct {
	Outer []geom.Point
	Holes [][]geom.Point
}

// Ring buffers outer and holes by opts.Distance and returns the single
// resulting polygon.
func Ring(outer []geom.Point, holes [][]geom.Point, opts Options) (Polygon, error) {
	if opts.Distance == 0 || math.IsNaN(opts.Distance) {
		return Polygon{}, fmt.Errorf("%w: buffer distance must be non-zero", ErrInvalidInput)
	}
	if opts.Open {
		if opts.SingleSided {
			return Polygon{}, fmt.Errorf("%w: open paths can only be buffered on both sides", ErrInvalidInput)
		}
		if len(outer) < 2 {
			return Polygon{}, fmt.Errorf("%w: open path has %d points, need at least 2", ErrInvalidInput, len(outer))
		}
	} else if len(outer) < 3 {
		return Polygon{}, fmt.Errorf("%w: ring has %d points, need at least 3", ErrInvalidInput, len(outer))
	}
	for i, h := range holes {
		if len(h) < 3 {
			return Polygon{}, fmt.Errorf("%w: hole %d has %d points, need at least 3", ErrInvalidInput, i, len(h))
		}
	}

	delta := opts.Distance
	if !opts.SingleSided {
		delta = math.Abs(delta)
	}

	co := clipper.NewClipperOffset()
	if opts.MiterLimit > 0 {
		co.MiterLimit = opts.MiterLimit
	}
	co.ArcTolerance = arcTolerance(delta*Scale, opts.RoundSegments)

	jt := joinType(opts.Join)
	switch {
	case opts.Open:
		co.AddPath(toPath(outer, false), jt, endType(opts.Cap))
	case opts.SingleSided:
		co.AddPath(toPath(outer, false), jt, clipper.EtClosedPolygon)
		for _, h := range holes {
			co.AddPath(toPath(h, true), jt, clipper.EtClosedPolygon)
		}
	default:
		co.AddPath(toPath(outer, false), jt, clipper.EtClosedLine)
		for _, h := range holes {
			co.AddPath(toPath(h, true), jt, clipper.EtClosedLine)
		}
	}

	tree := co.Execute2(delta * Scale)
	return fromTree(tree)
}

func fromTree(tree *clipper.PolyTree) (Polygon, error) {
	top := tree.Childs()
	switch {
	case len(top) == 0:
		return Polygon{}, ErrEmptyResult
	case len(top) > 1:
		return Polygon{}, fmt.Errorf("%w: %d outer rings", ErrMultiplePolygons, len(top))
	}

	node := top[0]
	poly := Polygon{Outer: fromPath(node.Contour(), false)}
	for _, h := range node.Childs() {
		if len(h.Childs()) > 0 {
			return Polygon{}, fmt.Errorf("%w: island inside hole", ErrMultiplePolygons)
		}
		poly.Holes = append(poly.Holes, fromPath(h.Contour(), true))
	}
	if len(poly.Outer) < 3 {
		return Polygon{}, ErrEmptyResult
	}
	return poly, nil
}

// arcTolerance returns the chord error that yields segments steps per half
// turn at radius delta.
func arcTolerance(delta float64, segments int) float64 {
	if segments <= 0 {
		segments = DefaultRoundSegments
	}
	return math.Abs(delta) * (1 - math.Cos(math.Pi/float64(2*segments)))
}

func joinType(j Join) clipper.JoinType {
	switch j {
	case JoinRound:
		return clipper.JtRound
	case JoinBevel:
		return clipper.JtSquare
	default:
		return clipper.JtMiter
	}
}

func endType(c Cap) clipper.EndType {
	switch c {
	case CapRound:
		return clipper.EtOpenRound
	case CapSquare:
		return clipper.EtOpenSquare
	default:
		return clipper.EtOpenButt
	}
}

// toPath scales pts onto the integer grid. Closed rings are oriented so that
// Clipper sees the outer ring positive and holes negative.
func toPath(pts []geom.Point, hole bool) clipper.Path {
	path := make(clipper.Path, len(pts))
	for i, p := range pts {
		path[i] = &clipper.IntPoint{X: toCInt(p.X), Y: toCInt(p.Y)}
	}
	if len(path) >= 3 && clipper.Orientation(path) == hole {
		reversePath(path)
	}
	return path
}

func fromPath(path clipper.Path, hole bool) []geom.Point {
	pts := make([]geom.Point, len(path))
	for i, ip := range path {
		pts[i] = geom.Point{X: float64(ip.X) / Scale, Y: float64(ip.Y) / Scale}
	}
	if geom.IsClockwise(pts) != hole {
		reversePoints(pts)
	}
	return pts
}

func toCInt(v float64) clipper.CInt {
	return clipper.CInt(math.Round(v * Scale))
}

func reversePath(p clipper.Path) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

func reversePoints(p []geom.Point) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
