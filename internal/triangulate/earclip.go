package triangulate

import (
	"fmt"
	"math"

	"github.com/gogpu/shapemesh/internal/geom"
)

// convexEpsilon is the minimum |cross| for a corner to count as an ear tip.
const convexEpsilon = 1e-12

// EarClipper triangulates simple polygons. It keeps its index list between
// calls, so reuse one per goroutine.
type EarClipper struct {
	remaining []int
	stalled   bool
}

// Stalled reports whether the last call stopped before the polygon was fully
// clipped. This happens on self-intersecting or otherwise degenerate input.
func (e *EarClipper) Stalled() bool {
	return e.stalled
}

// EarClip triangulates pts with a fresh EarClipper.
func EarClip(pts []geom.Point) ([]uint32, error) {
	var e EarClipper
	return e.Append(nil, pts)
}

// Append clips pts into triangles and appends their indices to dst.
// A valid simple polygon with n points yields exactly n-2 triangles.
func (e *EarClipper) Append(dst []uint32, pts []geom.Point) ([]uint32, error) {
	n := len(pts)
	if n < 3 {
		return dst, fmt.Errorf("%w: polygon has %d points, need at least 3", ErrInvalidInput, n)
	}
	area := geom.SignedArea(pts)
	if math.Abs(area) < geom.Epsilon || math.IsNaN(area) {
		return dst, fmt.Errorf("%w: polygon has zero area", ErrTriangulationFailed)
	}
	sign := 1.0
	if area < 0 {
		sign = -1
	}

	e.stalled = false
	if cap(e.remaining) < n {
		e.remaining = make([]int, n)
	}
	e.remaining = e.remaining[:n]
	for i := range e.remaining {
		e.remaining[i] = i
	}

	cursor := 0
	for guard := n * n; len(e.remaining) > 3; guard-- {
		if guard == 0 {
			e.stalled = true
			break
		}
		m := len(e.remaining)
		ear := -1
		for k := 0; k < m; k++ {
			if j := (cursor + k) % m; e.isEar(pts, j, sign) {
				ear = j
				break
			}
		}
		if ear < 0 {
			// No ear: drop a flat vertex if there is one, else give up.
			if ear = e.flatVertex(pts); ear < 0 {
				e.stalled = true
				break
			}
		} else {
			a, b, c := e.corner(ear)
			dst = append(dst, uint32(a), uint32(b), uint32(c))
		}
		e.remaining = append(e.remaining[:ear], e.remaining[ear+1:]...)
		cursor = ear % len(e.remaining)
	}

	if len(e.remaining) == 3 {
		a, b, c := e.remaining[0], e.remaining[1], e.remaining[2]
		if math.Abs(geom.Orient(pts[a], pts[b], pts[c])) > convexEpsilon {
			dst = append(dst, uint32(a), uint32(b), uint32(c))
		}
	}
	return dst, nil
}

// corner returns the point indices of the vertex at position j of the
// remaining list and its two neighbours.
func (e *EarClipper) corner(j int) (prev, cur, next int) {
	m := len(e.remaining)
	return e.remaining[(j-1+m)%m], e.remaining[j], e.remaining[(j+1)%m]
}

func (e *EarClipper) isEar(pts []geom.Point, j int, sign float64) bool {
	ia, ib, ic := e.corner(j)
	a, b, c := pts[ia], pts[ib], pts[ic]
	if geom.Orient(a, b, c)*sign <= convexEpsilon {
		return false
	}
	for _, k := range e.remaining {
		if k == ia || k == ib || k == ic {
			continue
		}
		p := pts[k]
		if p == a || p == b || p == c {
			continue
		}
		if geom.InTriangle(p, a, b, c) {
			return false
		}
	}
	return true
}

func (e *EarClipper) flatVertex(pts []geom.Point) int {
	for j := range e.remaining {
		ia, ib, ic := e.corner(j)
		if math.Abs(geom.Orient(pts[ia], pts[ib], pts[ic])) <= convexEpsilon {
			return j
		}
	}
	return -1
}
