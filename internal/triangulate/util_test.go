package triangulate

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/shapemesh/internal/geom"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func rect(x0, y0, x1, y1 float64) []geom.Point {
	return []geom.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func regular(n int, r float64) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = geom.Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return pts
}

func reversed(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// checkTriangles verifies every triangle has the wanted orientation sign and
// returns the summed absolute area.
func checkTriangles(t *testing.T, pts []geom.Point, indices []uint32, sign float64) float64 {
	t.Helper()
	if len(indices)%3 != 0 {
		t.Fatalf("len(indices) = %d, not a multiple of 3", len(indices))
	}
	total := 0.0
	for i := 0; i < len(indices); i += 3 {
		for _, k := range indices[i : i+3] {
			if int(k) >= len(pts) {
				t.Fatalf("index %d out of range [0,%d)", k, len(pts))
			}
		}
		o := geom.Orient(pts[indices[i]], pts[indices[i+1]], pts[indices[i+2]])
		if o*sign <= 0 {
			t.Errorf("triangle %d orientation = %v, want sign %v", i/3, o, sign)
		}
		total += math.Abs(o) / 2
	}
	return total
}
