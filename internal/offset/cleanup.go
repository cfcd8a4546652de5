package offset

import "github.com/gogpu/shapemesh/internal/geom"

// cleanup removes inverted edges from a closed offset ring in place. An edge
// is inverted when it runs against the source edge it was offset from. Each
// fix moves the edge's first point to where its neighbours' lines meet and
// drops the second point. At most one fix per source point is attempted.
func (o *Offsetter) cleanup(r Result) (Result, int) {
	removed := 0
	for pass := 0; pass < len(o.pts) && len(r) > 3; pass++ {
		k := o.findInverted(r)
		if k < 0 {
			break
		}
		n := len(r)
		km := (k - 1 + n) % n
		k1 := (k + 1) % n
		k2 := (k + 2) % n
		if p, ok := geom.LineIntersection(r[km].P, r[k].P, r[k1].P, r[k2].P); ok {
			r[k].P = p
		}
		r = append(r[:k1], r[k1+1:]...)
		removed++
	}
	return r, removed
}

func (o *Offsetter) findInverted(r Result) int {
	n := len(r)
	for k := 0; k < n; k++ {
		a, b := r[k], r[(k+1)%n]
		if a.Source == b.Source {
			continue
		}
		src := o.pts[b.Source].Sub(o.pts[a.Source])
		if b.P.Sub(a.P).Dot(src) < 0 {
			return k
		}
	}
	return -1
}
