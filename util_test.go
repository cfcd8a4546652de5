package shapemesh

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

// triangleArea sums |area| over the triangles in indices[from:to].
func triangleArea(m *Mesh, from, to int) float64 {
	idx := m.Indices()
	var sum float64
	for i := from; i+2 < to; i += 3 {
		a, b, c := m.Position(int(idx[i])), m.Position(int(idx[i+1])), m.Position(int(idx[i+2]))
		sum += math.Abs(b.Sub(a).Cross(c.Sub(a))) / 2
	}
	return sum
}

// checkAA verifies the fringe invariants after an anti-aliasing call.
func checkAA(t *testing.T, m *Mesh, vertices, indices int) {
	t.Helper()
	if !m.HasAA() {
		t.Fatal("HasAA() = false, want true")
	}
	if m.AAVertexStart() != vertices || m.AAIndexStart() != indices {
		t.Errorf("AA markers = %d/%d, want %d/%d", m.AAVertexStart(), m.AAIndexStart(), vertices, indices)
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	for i := m.AAVertexStart(); i < m.VertexCount(); i++ {
		if m.Alpha(i) != 0 {
			t.Errorf("fringe vertex %d alpha = %v, want 0", i, m.Alpha(i))
		}
	}
	m.ClearAA()
	if m.VertexCount() != vertices || m.IndexCount() != indices {
		t.Errorf("after ClearAA counts = %d/%d, want %d/%d", m.VertexCount(), m.IndexCount(), vertices, indices)
	}
}
