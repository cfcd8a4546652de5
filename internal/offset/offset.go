package offset

import (
	"fmt"
	"math"

	"github.com/gogpu/shapemesh/internal/geom"
)

// ErrInvalidInput is returned for a zero amount or too few points.
var ErrInvalidInput = geom.ErrInvalidInput

// DefaultMiterLimit is used when Options.MiterLimit <= 0.
const DefaultMiterLimit = 4.0

// DefaultRoundSegments is the number of arc steps per half turn for round
// joins when Options.RoundSegments <= 0.
const DefaultRoundSegments = 8

// turnEpsilon is the |sin| below which a corner counts as straight.
const turnEpsilon = 1e-6

// Join specifies the geometry emitted at an outside corner.
type Join int

const (
	// JoinMiter extends both offset segments to their intersection.
	JoinMiter Join = iota
	// JoinBevel connects the two segment normals with a straight edge.
	JoinBevel
	// JoinRound connects the two segment normals with an arc.
	JoinRound
)

// String returns the join name.
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

// Options configures one offset operation.
type Options struct {
	// Amount is the signed offset distance. Positive grows the ring away
	// from its interior as implied by Clockwise; negative shrinks it.
	Amount float64

	// MiterLimit is the maximum corner-to-miter distance as a multiple of
	// |Amount|. Values <= 0 select DefaultMiterLimit.
	MiterLimit float64

	// Closed treats the last point as connected back to the first.
	Closed bool

	// Clockwise declares the winding of the input in a y-up frame. For open
	// paths it selects which side is "outward".
	Clockwise bool

	// Join selects the outside-corner geometry.
	Join Join

	// RoundSegments is the number of arc steps per half turn for JoinRound.
	RoundSegments int

	// Cleanup enables the best-effort inverted-edge removal pass.
	Cleanup bool
}

// Vertex is one offset point and the index of the input point it came from.
type Vertex struct {
	P      geom.Point
	Source int
}

// Result is an offset polyline. Point and source index travel together, so
// both views always have the same length.
type Result []Vertex

// Points appends the offset positions to dst.
func (r Result) Points(dst []geom.Point) []geom.Point {
	for _, v := range r {
		dst = append(dst, v.P)
	}
	return dst
}

// Sources appends the source indices to dst.
func (r Result) Sources(dst []int) []int {
	for _, v := range r {
		dst = append(dst, v.Source)
	}
	return dst
}

// Offsetter computes offsets and owns the scratch buffers they need.
// An Offsetter is not safe for concurrent use; give each goroutine its own.
type Offsetter struct {
	opts  Options
	pts   []geom.Point
	dirs  []geom.Point
	side  float64
	sign  float64
	dist  float64
	limit float64
	steps int

	removed int
}

// NewOffsetter returns an Offsetter with empty scratch buffers.
func NewOffsetter() *Offsetter {
	return &Offsetter{}
}

// Removed returns how many points the last cleanup pass dropped.
func (o *Offsetter) Removed() int {
	return o.removed
}

// Offset is a convenience wrapper that allocates a fresh Offsetter.
func Offset(pts []geom.Point, opts Options) (Result, error) {
	return NewOffsetter().Append(nil, pts, opts)
}

// Append offsets pts and appends the result to dst.
func (o *Offsetter) Append(dst Result, pts []geom.Point, opts Options) (Result, error) {
	minPts := 2
	if opts.Closed {
		minPts = 3
	}
	if len(pts) < minPts {
		return dst, fmt.Errorf("%w: %d points, need at least %d", ErrInvalidInput, len(pts), minPts)
	}
	if opts.Amount == 0 || math.IsNaN(opts.Amount) {
		return dst, fmt.Errorf("%w: offset amount must be non-zero", ErrInvalidInput)
	}

	o.reset(pts, opts)
	if !o.computeDirections() {
		// Every segment has zero length: nothing to offset against.
		for i, p := range pts {
			dst = append(dst, Vertex{P: p, Source: i})
		}
		return dst, nil
	}

	start := len(dst)
	n := len(pts)
	for i := 0; i < n; i++ {
		if !opts.Closed && (i == 0 || i == n-1) {
			dst = o.appendEndpoint(dst, i)
			continue
		}
		dst = o.appendCorner(dst, i)
	}

	if opts.Closed && opts.Cleanup {
		var tail Result
		tail, o.removed = o.cleanup(dst[start:])
		dst = dst[:start+len(tail)]
	}
	return dst, nil
}

func (o *Offsetter) reset(pts []geom.Point, opts Options) {
	o.opts = opts
	o.pts = pts
	o.removed = 0

	o.side = 1
	if opts.Clockwise {
		o.side = -1
	}
	o.sign = 1
	if opts.Amount < 0 {
		o.sign = -1
	}
	o.dist = math.Abs(opts.Amount)

	o.limit = opts.MiterLimit
	if o.limit <= 0 {
		o.limit = DefaultMiterLimit
	}
	o.steps = opts.RoundSegments
	if o.steps <= 0 {
		o.steps = DefaultRoundSegments
	}
}

// computeDirections fills o.dirs with unit segment directions. Zero-length
// segments borrow the direction of the nearest preceding non-zero segment.
// Reports false when all segments are degenerate.
func (o *Offsetter) computeDirections() bool {
	n := len(o.pts)
	segs := n - 1
	if o.opts.Closed {
		segs = n
	}
	if cap(o.dirs) < segs {
		o.dirs = make([]geom.Point, segs)
	}
	o.dirs = o.dirs[:segs]

	last := -1
	for i := 0; i < segs; i++ {
		d := o.pts[(i+1)%n].Sub(o.pts[i]).Normalize()
		o.dirs[i] = d
		if d != (geom.Point{}) {
			last = i
		}
	}
	if last < 0 {
		return false
	}

	// Forward fill from the last valid direction, wrapping once so leading
	// zero segments pick up a neighbour too.
	prev := o.dirs[last]
	for k := 0; k < segs; k++ {
		i := (last + 1 + k) % segs
		if o.dirs[i] == (geom.Point{}) {
			o.dirs[i] = prev
		} else {
			prev = o.dirs[i]
		}
	}
	return true
}

// normal returns the unit outward normal for direction d.
func (o *Offsetter) normal(d geom.Point) geom.Point {
	// Right-hand perpendicular is outward for a counter-clockwise ring.
	return geom.Point{X: d.Y, Y: -d.X}.Mul(o.side)
}

// shift returns p moved along the outward normal n by the signed amount.
func (o *Offsetter) shift(p, n geom.Point) geom.Point {
	return p.Add(n.Mul(o.opts.Amount))
}

func (o *Offsetter) appendEndpoint(dst Result, i int) Result {
	seg := 0
	if i > 0 {
		seg = len(o.dirs) - 1
	}
	n := o.normal(o.dirs[seg])
	return append(dst, Vertex{P: o.shift(o.pts[i], n), Source: i})
}

func (o *Offsetter) prevIndex(i int) int {
	return (i - 1 + len(o.pts)) % len(o.pts)
}

func (o *Offsetter) nextIndex(i int) int {
	return (i + 1) % len(o.pts)
}

func (o *Offsetter) appendCorner(dst Result, i int) Result {
	din := o.dirs[(i-1+len(o.dirs))%len(o.dirs)]
	dout := o.dirs[i%len(o.dirs)]
	nin := o.normal(din)
	nout := o.normal(dout)
	c := o.pts[i]

	cross := din.Cross(dout)
	dot := din.Dot(dout)

	if math.Abs(cross) < turnEpsilon {
		if dot > 0 {
			return append(dst, Vertex{P: o.shift(c, nout), Source: i})
		}
		// Reversal: the offset lines are parallel, so no miter exists.
		return o.appendLimitBevel(dst, i, din, dout, nin, nout)
	}

	turn := cross * o.side * o.sign
	if turn < 0 {
		return o.appendInside(dst, i, din, dout, nin, nout)
	}

	switch o.opts.Join {
	case JoinBevel:
		return append(dst,
			Vertex{P: o.shift(c, nin), Source: i},
			Vertex{P: o.shift(c, nout), Source: i})
	case JoinRound:
		return o.appendRound(dst, i, nin, nout)
	default:
		return o.appendMiter(dst, i, din, dout, nin, nout)
	}
}

// appendInside emits the intersection of the two offset segments meeting at
// a concave corner.
func (o *Offsetter) appendInside(dst Result, i int, din, dout, nin, nout geom.Point) Result {
	c := o.pts[i]
	prev := o.pts[o.prevIndex(i)]
	next := o.pts[o.nextIndex(i)]

	a0, a1 := o.shift(prev, nin), o.shift(c, nin)
	b0, b1 := o.shift(c, nout), o.shift(next, nout)

	if p, ok := geom.SegmentIntersection(a0, a1, b0, b1); ok {
		return append(dst, Vertex{P: p, Source: i})
	}
	if p, ok := geom.LineIntersection(a0, a1, b0, b1); ok && p.Distance(c) <= o.dist*o.limit {
		return append(dst, Vertex{P: p, Source: i})
	}
	// Nearly parallel segments would spike; keep both offset ends instead.
	return append(dst,
		Vertex{P: a1, Source: i},
		Vertex{P: b0, Source: i})
}

func (o *Offsetter) appendMiter(dst Result, i int, din, dout, nin, nout geom.Point) Result {
	c := o.pts[i]
	a1 := o.shift(c, nin)
	b0 := o.shift(c, nout)
	m, ok := geom.LineIntersection(a1, a1.Add(din), b0, b0.Add(dout))
	if !ok || m.Distance(c) > o.dist*o.limit {
		return o.appendLimitBevel(dst, i, din, dout, nin, nout)
	}
	return append(dst, Vertex{P: m, Source: i})
}

// appendLimitBevel emits two points on the circle of radius Amount*MiterLimit
// around the corner, one on each side of the miter direction. When the circle
// reaches the offset lines the points lie on them, between the segment
// normals and the miter tip; otherwise they lie on the normals themselves.
func (o *Offsetter) appendLimitBevel(dst Result, i int, din, dout, nin, nout geom.Point) Result {
	c := o.pts[i]
	r := o.dist * o.limit
	var p0, p1 geom.Point
	if r <= o.dist {
		p0 = c.Add(nin.Mul(o.sign * r))
		p1 = c.Add(nout.Mul(o.sign * r))
	} else {
		t := math.Sqrt(r*r - o.dist*o.dist)
		p0 = o.shift(c, nin).Add(din.Mul(t))
		p1 = o.shift(c, nout).Sub(dout.Mul(t))
	}
	return append(dst,
		Vertex{P: p0, Source: i},
		Vertex{P: p1, Source: i})
}

func (o *Offsetter) appendRound(dst Result, i int, nin, nout geom.Point) Result {
	c := o.pts[i]
	v0 := nin.Mul(o.opts.Amount)
	v1 := nout.Mul(o.opts.Amount)
	angle := math.Atan2(v0.Cross(v1), v0.Dot(v1))

	steps := int(math.Ceil(math.Abs(angle) / (math.Pi / float64(o.steps))))
	if steps < 1 {
		steps = 1
	}
	for k := 0; k <= steps; k++ {
		a := angle * float64(k) / float64(steps)
		sin, cos := math.Sincos(a)
		v := geom.Point{X: v0.X*cos - v0.Y*sin, Y: v0.X*sin + v0.Y*cos}
		dst = append(dst, Vertex{P: c.Add(v), Source: i})
	}
	return dst
}
