package triangulate

import "fmt"

// Columns triangulates a ribbon of n points. Points 0..n/2-1 form one edge
// and n/2..n-1 the other. Each point i is joined to its partner on the other
// edge: i+n/2 when both edges run the same way, n-1-i when they are
// mirrored. Every column between neighbouring pairs becomes two triangles;
// closed adds the column from the last pair back to the first.
func Columns(dst []uint32, n int, sameDirection, closed bool) ([]uint32, error) {
	if n < 4 || n%2 != 0 {
		return dst, fmt.Errorf("%w: ribbon needs an even point count of at least 4, got %d", ErrInvalidInput, n)
	}
	half := n / 2
	pair := func(i int) uint32 {
		if sameDirection {
			return uint32(i + half)
		}
		return uint32(n - 1 - i)
	}

	columns := half - 1
	if closed {
		columns = half
	}
	for i := 0; i < columns; i++ {
		j := (i + 1) % half
		a, b := uint32(i), uint32(j)
		c, d := pair(i), pair(j)
		dst = append(dst, a, b, c, b, d, c)
	}
	return dst, nil
}
