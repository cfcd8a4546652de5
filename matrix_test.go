package shapemesh

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

func TestMatrixTransformPoint(t *testing.T) {
	const eps = 1e-12
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(1, -2), Pt(3, 4), Pt(4, 2)},
		{"scale", Scale(2, 3), Pt(3, 4), Pt(6, 12)},
		{"rotate 90", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"translate after scale", Translate(1, 1).Multiply(Scale(2, 2)), Pt(1, 1), Pt(3, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.p); !got.Near(tt.want, eps) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(5, -3).Multiply(Rotate(0.7)).Multiply(Scale(2, 0.5))
	p := Pt(1.5, -2.25)
	if got := m.Invert().TransformPoint(m.TransformPoint(p)); !got.Near(p, 1e-9) {
		t.Errorf("Invert round trip = %v, want %v", got, p)
	}
	if got := Scale(0, 1).Invert(); !got.IsIdentity() {
		t.Errorf("singular Invert() = %+v, want identity", got)
	}
}

func TestMatrixAff3(t *testing.T) {
	m := Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	want := f64.Aff3{1, 2, 3, 4, 5, 6}
	if got := m.Aff3(); got != want {
		t.Errorf("Aff3() = %v, want %v", got, want)
	}
	if got := MatrixFromAff3(want); got != m {
		t.Errorf("MatrixFromAff3() = %+v, want %+v", got, m)
	}
}

func TestMatrixFlipsWinding(t *testing.T) {
	tests := []struct {
		m    Matrix
		want bool
	}{
		{Identity(), false},
		{Rotate(2), false},
		{Scale(-1, 1), true},
		{Scale(1, -1), true},
		{Scale(-1, -1), false},
	}
	for _, tt := range tests {
		if got := tt.m.FlipsWinding(); got != tt.want {
			t.Errorf("Matrix%+v.FlipsWinding() = %v, want %v", tt.m, got, tt.want)
		}
	}

	r := Ring{Pt(0, 0), Pt(1, 0), Pt(0, 1)}
	if r.Transform(Scale(1, -1)).IsClockwise() != true {
		t.Error("mirrored ring should be clockwise")
	}
}
