package shapemesh

// Option configures a mesh build (Fill, Ribbon, Outline, AddAntiAliasing).
// Use functional options to customize the build.
//
// Example:
//
//	// Plain fill
//	ok, err := shapemesh.Fill(m, poly)
//
//	// Fill with a one-unit fringe built from the exact buffered boundary
//	ok, err := shapemesh.Fill(m, poly,
//		shapemesh.WithAntiAliasing(1),
//		shapemesh.WithStrategy(shapemesh.StrategyPrecise))
type Option func(*options)

// options holds the configuration of one build call.
type options struct {
	strategy      Strategy
	aaWidth       float64
	color         RGBA
	miterLimit    float64
	join          Join
	roundSegments int
	cleanup       bool
	constrained   bool
}

// defaultOptions returns the default build options.
func defaultOptions() options {
	return options{
		strategy:      StrategyFast,
		color:         White,
		miterLimit:    4,
		join:          JoinMiter,
		roundSegments: 8,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithStrategy selects the anti-aliasing algorithm. The default is
// StrategyFast.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithAntiAliasing adds a fringe of the given width after filling.
// A width <= 0 disables it.
func WithAntiAliasing(width float64) Option {
	return func(o *options) {
		o.aaWidth = width
	}
}

// WithColor sets the vertex color. The default is White.
func WithColor(c RGBA) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithMiterLimit sets the miter limit as a multiple of the offset distance.
// Values <= 0 keep the default of 4.
func WithMiterLimit(limit float64) Option {
	return func(o *options) {
		if limit > 0 {
			o.miterLimit = limit
		}
	}
}

// WithJoin sets the corner geometry for outlines and fringes.
func WithJoin(j Join) Option {
	return func(o *options) {
		o.join = j
	}
}

// WithRoundSegments sets the arc steps per half turn for round joins and
// caps. Values <= 0 keep the default of 8.
func WithRoundSegments(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.roundSegments = n
		}
	}
}

// WithCleanup enables the best-effort removal of inverted offset edges.
// It only fixes simple cases such as a short edge swallowed by an inset.
func WithCleanup(enabled bool) Option {
	return func(o *options) {
		o.cleanup = enabled
	}
}

// WithForceConstrained uses constrained Delaunay triangulation even for
// polygons without holes.
func WithForceConstrained(enabled bool) Option {
	return func(o *options) {
		o.constrained = enabled
	}
}
