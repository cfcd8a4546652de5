package triangulate

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/shapemesh/internal/geom"
)

func TestEarClipUnitSquare(t *testing.T) {
	sq := rect(0, 0, 1, 1)
	got, err := EarClip(sq)
	if err != nil {
		t.Fatalf("EarClip() error = %v", err)
	}
	diff(t, []uint32{3, 0, 1, 1, 2, 3}, got)
	if a := checkTriangles(t, sq, got, 1); math.Abs(a-1) > 1e-12 {
		t.Errorf("area = %v, want 1", a)
	}

	cw := reversed(sq)
	got, err = EarClip(cw)
	if err != nil {
		t.Fatalf("EarClip(cw) error = %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("len(indices) = %d, want 6", len(got))
	}
	checkTriangles(t, cw, got, -1)
}

func TestEarClipConvex(t *testing.T) {
	for n := 3; n <= 24; n++ {
		pts := regular(n, 2)
		got, err := EarClip(pts)
		if err != nil {
			t.Fatalf("n=%d: EarClip() error = %v", n, err)
		}
		if tris := len(got) / 3; tris != n-2 {
			t.Errorf("n=%d: triangles = %d, want %d", n, tris, n-2)
		}
		want := geom.SignedArea(pts)
		if a := checkTriangles(t, pts, got, 1); math.Abs(a-want) > 1e-9 {
			t.Errorf("n=%d: area = %v, want %v", n, a, want)
		}
	}
}

func TestEarClipConcave(t *testing.T) {
	tests := []struct {
		name string
		pts  []geom.Point
		area float64
	}{
		{"L shape", []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2}}, 3},
		{"arrow", []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 4, Y: 0}, {X: 2, Y: 4}}, 6},
		{"comb", []geom.Point{
			{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 3}, {X: 4, Y: 3}, {X: 4, Y: 1},
			{X: 3, Y: 1}, {X: 3, Y: 3}, {X: 2, Y: 3}, {X: 2, Y: 1}, {X: 1, Y: 1},
			{X: 1, Y: 3}, {X: 0, Y: 3},
		}, 5 + 3*2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e EarClipper
			got, err := e.Append(nil, tt.pts)
			if err != nil {
				t.Fatalf("Append() error = %v", err)
			}
			if e.Stalled() {
				t.Error("Stalled() = true on a simple polygon")
			}
			if tris := len(got) / 3; tris != len(tt.pts)-2 {
				t.Errorf("triangles = %d, want %d", tris, len(tt.pts)-2)
			}
			if a := checkTriangles(t, tt.pts, got, 1); math.Abs(a-tt.area) > 1e-9 {
				t.Errorf("area = %v, want %v", a, tt.area)
			}
		})
	}
}

func TestEarClipFlatVertex(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	got, err := EarClip(pts)
	if err != nil {
		t.Fatalf("EarClip() error = %v", err)
	}
	if a := checkTriangles(t, pts, got, 1); math.Abs(a-4) > 1e-12 {
		t.Errorf("area = %v, want 4", a)
	}
}

func TestEarClipErrors(t *testing.T) {
	if _, err := EarClip(rect(0, 0, 1, 1)[:2]); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("two points: error = %v, want ErrInvalidInput", err)
	}
	line := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	if _, err := EarClip(line); !errors.Is(err, ErrTriangulationFailed) {
		t.Errorf("collinear: error = %v, want ErrTriangulationFailed", err)
	}
}

func TestEarClipperReuse(t *testing.T) {
	var e EarClipper
	dst, err := e.Append(nil, regular(6, 1))
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	dst, err = e.Append(dst, rect(0, 0, 1, 1))
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if len(dst) != 3*(4+2) {
		t.Errorf("len(dst) = %d, want %d", len(dst), 3*(4+2))
	}
}

func TestConstrainedWithHole(t *testing.T) {
	outer := rect(0, 0, 4, 4)
	hole := reversed(rect(1, 1, 3, 3))

	res, err := Constrained(outer, [][]geom.Point{hole})
	if err != nil {
		t.Fatalf("Constrained() error = %v", err)
	}
	if !res.Constrained {
		t.Error("Constrained = false")
	}
	diff(t, []int{4}, res.HoleStarts)
	diff(t, append(append([]geom.Point{}, outer...), hole...), res.Points)

	// n + 2h - 2 triangles for n points and h holes.
	if got := res.TriangleCount(); got != 8 {
		t.Errorf("TriangleCount() = %d, want 8", got)
	}
	if a := checkTriangles(t, res.Points, res.Indices, 1); math.Abs(a-12) > 1e-9 {
		t.Errorf("area = %v, want 12", a)
	}
}

func TestConstrainedClockwiseOuter(t *testing.T) {
	outer := reversed(regular(8, 3))
	res, err := Constrained(outer, [][]geom.Point{regular(4, 1)})
	if err != nil {
		t.Fatalf("Constrained() error = %v", err)
	}
	checkTriangles(t, res.Points, res.Indices, -1)
}

func TestConstrainedDropsDuplicates(t *testing.T) {
	outer := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 0}}
	res, err := Constrained(outer, nil)
	if err != nil {
		t.Fatalf("Constrained() error = %v", err)
	}
	if len(res.Points) != 4 {
		t.Errorf("len(Points) = %d, want 4", len(res.Points))
	}
	if a := checkTriangles(t, res.Points, res.Indices, 1); math.Abs(a-4) > 1e-9 {
		t.Errorf("area = %v, want 4", a)
	}
}

func TestConstrainedInvalidInput(t *testing.T) {
	if _, err := Constrained(rect(0, 0, 1, 1)[:2], nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("short outer: error = %v, want ErrInvalidInput", err)
	}
	short := [][]geom.Point{{{X: 1, Y: 1}, {X: 2, Y: 2}}}
	if _, err := Constrained(rect(0, 0, 4, 4), short); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("short hole: error = %v, want ErrInvalidInput", err)
	}
}

func TestConstrainedCollapsedRing(t *testing.T) {
	collapsed := []geom.Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1 + 1e-12}}
	if _, err := Constrained(collapsed, nil); !errors.Is(err, ErrTriangulationFailed) {
		t.Errorf("collapsed outer: error = %v, want ErrTriangulationFailed", err)
	}
	if _, err := Constrained(rect(0, 0, 4, 4), [][]geom.Point{collapsed}); !errors.Is(err, ErrTriangulationFailed) {
		t.Errorf("collapsed hole: error = %v, want ErrTriangulationFailed", err)
	}
}

func TestConstrainedFloatNoise(t *testing.T) {
	// regular(6, 1) puts point 3 at y = sin(pi), about 1.2e-16.
	hex := regular(6, 1)
	hexArea := 3 * math.Sqrt(3) / 2

	t.Run("outer", func(t *testing.T) {
		res, err := Constrained(hex, nil)
		if err != nil {
			t.Fatalf("Constrained() error = %v", err)
		}
		if got := res.TriangleCount(); got != 4 {
			t.Errorf("TriangleCount() = %d, want 4", got)
		}
		if a := checkTriangles(t, res.Points, res.Indices, 1); math.Abs(a-hexArea) > 1e-9 {
			t.Errorf("area = %v, want %v", a, hexArea)
		}
		if res.Points[3].Y != 0 {
			t.Errorf("Points[3].Y = %v, want 0", res.Points[3].Y)
		}
	})

	t.Run("hole", func(t *testing.T) {
		res, err := Constrained(rect(-2, -2, 2, 2), [][]geom.Point{reversed(hex)})
		if err != nil {
			t.Fatalf("Constrained() error = %v", err)
		}
		if got := res.TriangleCount(); got != 10 {
			t.Errorf("TriangleCount() = %d, want 10", got)
		}
		if a := checkTriangles(t, res.Points, res.Indices, 1); math.Abs(a-(16-hexArea)) > 1e-9 {
			t.Errorf("area = %v, want %v", a, 16-hexArea)
		}
	})
}

func TestColumns(t *testing.T) {
	tests := []struct {
		name          string
		n             int
		sameDirection bool
		closed        bool
		want          []uint32
	}{
		{"same open", 6, true, false, []uint32{0, 1, 3, 1, 4, 3, 1, 2, 4, 2, 5, 4}},
		{"mirrored open", 6, false, false, []uint32{0, 1, 5, 1, 4, 5, 1, 2, 4, 2, 3, 4}},
		{"same closed", 6, true, true, []uint32{0, 1, 3, 1, 4, 3, 1, 2, 4, 2, 5, 4, 2, 0, 5, 0, 3, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Columns(nil, tt.n, tt.sameDirection, tt.closed)
			if err != nil {
				t.Fatalf("Columns() error = %v", err)
			}
			diff(t, tt.want, got)
		})
	}
}

func TestColumnsRibbonArea(t *testing.T) {
	// Outer and inner squares, both counter-clockwise.
	pts := append(rect(0, 0, 4, 4), rect(1, 1, 3, 3)...)
	got, err := Columns(nil, len(pts), true, true)
	if err != nil {
		t.Fatalf("Columns() error = %v", err)
	}
	if a := checkTriangles(t, pts, got, 1); math.Abs(a-12) > 1e-9 {
		t.Errorf("area = %v, want 12", a)
	}
}

func TestColumnsInvalid(t *testing.T) {
	for _, n := range []int{0, 2, 5} {
		if _, err := Columns(nil, n, true, false); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Columns(%d) error = %v, want ErrInvalidInput", n, err)
		}
	}
}

func TestTriangulatorDispatch(t *testing.T) {
	var tr Triangulator
	outer := rect(0, 0, 4, 4)

	res, err := tr.Triangulate(outer, nil, false)
	if err != nil {
		t.Fatalf("Triangulate() error = %v", err)
	}
	if res.Constrained || res.Points != nil {
		t.Errorf("ear clipping result = %+v, want indices only", res)
	}

	res, err = tr.Triangulate(outer, nil, true)
	if err != nil {
		t.Fatalf("Triangulate(force) error = %v", err)
	}
	if !res.Constrained {
		t.Error("forced triangulation not constrained")
	}

	res, err = tr.Triangulate(outer, [][]geom.Point{rect(1, 1, 2, 2)}, false)
	if err != nil {
		t.Fatalf("Triangulate(holes) error = %v", err)
	}
	if !res.Constrained || len(res.HoleStarts) != 1 {
		t.Errorf("holes result = %+v, want constrained with one hole start", res)
	}

	if _, err := tr.Triangulate(outer[:2], nil, false); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("short ring error = %v, want ErrInvalidInput", err)
	}
}
