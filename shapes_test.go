package shapemesh

import (
	"math"
	"testing"
)

func TestRingPrimitives(t *testing.T) {
	tests := []struct {
		name     string
		ring     Ring
		wantLen  int
		wantArea float64
		tol      float64
	}{
		{"rect", RectRing(1, 2, 3, 4), 4, 12, 1e-12},
		{"ellipse", EllipseRing(0, 0, 2, 1, 256), 256, 2 * math.Pi, 1e-3},
		{"hexagon", RegularPolygonRing(6, 0, 0, 1, 0), 6, 3 * math.Sqrt(3) / 2, 1e-12},
		{"star", StarRing(0, 0, 2, 1, 5), 10, 10 * 0.5 * 2 * 1 * math.Sin(math.Pi/5), 1e-9},
		{"rounded rect", RoundedRectRing(0, 0, 4, 2, 0.5, 64), 4 * 65, 8 - (4-math.Pi)*0.25, 1e-3},
		{"rounded rect zero radius", RoundedRectRing(0, 0, 4, 2, 0, 8), 4, 8, 1e-12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.ring) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(tt.ring), tt.wantLen)
			}
			if got := tt.ring.SignedArea(); math.Abs(got-tt.wantArea) > tt.tol {
				t.Errorf("SignedArea() = %v, want %v", got, tt.wantArea)
			}
		})
	}
}

func TestRoundedRectRingClamp(t *testing.T) {
	// Radius 5 clamps to 1 and the arcs meet: no duplicate points remain.
	r := RoundedRectRing(0, 0, 2, 2, 5, 4)
	if len(r) != 16 {
		t.Errorf("len = %d, want 16", len(r))
	}
	for i, p := range r {
		if d := p.Distance(Pt(1, 1)); math.Abs(d-1) > 1e-9 {
			t.Errorf("point %d at %v from centre, want 1", i, d)
		}
	}
}

func TestRingPrimitivesDegenerate(t *testing.T) {
	if r := RegularPolygonRing(2, 0, 0, 1, 0); r != nil {
		t.Errorf("RegularPolygonRing(2) = %v, want nil", r)
	}
	if r := StarRing(0, 0, 2, 1, 2); r != nil {
		t.Errorf("StarRing(2) = %v, want nil", r)
	}
	if r := EllipseRing(0, 0, 1, 1, 1); len(r) != 3 {
		t.Errorf("len(EllipseRing(1 segment)) = %d, want 3", len(r))
	}
}

func TestRingHelpers(t *testing.T) {
	r := RectRing(0, 0, 2, 1)
	if r.IsClockwise() || !r.Reversed().IsClockwise() {
		t.Error("winding of RectRing or its reverse is wrong")
	}
	if got, want := r.Bounds(), (Rect{Min: Pt(0, 0), Max: Pt(2, 1)}); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	moved := r.Transform(Translate(1, 1))
	if moved[2] != Pt(3, 2) {
		t.Errorf("Transform()[2] = %v, want (3,2)", moved[2])
	}
	if got := (Ring{}).Bounds(); !got.Empty() {
		t.Errorf("empty ring Bounds() = %v, want empty", got)
	}
}

func TestStringers(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{JoinMiter.String(), "Miter"},
		{JoinRound.String(), "Round"},
		{Join(7).String(), "Join(7)"},
		{CapSquare.String(), "Square"},
		{Cap(7).String(), "Cap(7)"},
		{StrategyFast.String(), "Fast"},
		{StrategyPrecise.String(), "Precise"},
		{Strategy(7).String(), "Strategy(7)"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
