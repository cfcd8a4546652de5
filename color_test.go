package shapemesh

import (
	"image/color"
	"testing"
)

func TestRGBAPack(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want uint32
	}{
		{"black", Black, 0xff000000},
		{"white", White, 0xffffffff},
		{"red", Red, 0xff0000ff},
		{"green", Green, 0xff00ff00},
		{"blue", Blue, 0xffff0000},
		{"transparent", Transparent, 0},
		{"half alpha", RGBA{R: 1, A: 0.5}, 0x800000ff},
		{"clamped", RGBA{R: 2, G: -1, B: 0.5, A: 1}, 0xff8000ff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Pack(); got != tt.want {
				t.Errorf("Pack() = %#08x, want %#08x", got, tt.want)
			}
		})
	}
}

func TestUnpackColorRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 0xffffffff, 0x80402010, 0x12345678} {
		if got := UnpackColor(v).Pack(); got != v {
			t.Errorf("UnpackColor(%#08x).Pack() = %#08x", v, got)
		}
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		hex  string
		want uint32
	}{
		{"#f00", 0xff0000ff},
		{"0f08", 0x8800ff00},
		{"#0000ff", 0xffff0000},
		{"ffffff80", 0x80ffffff},
		{"bogus", 0xff000000},
	}
	for _, tt := range tests {
		if got := Hex(tt.hex).Pack(); got != tt.want {
			t.Errorf("Hex(%q).Pack() = %#08x, want %#08x", tt.hex, got, tt.want)
		}
	}
}

func TestColorConversion(t *testing.T) {
	c := RGBA{R: 1, G: 0.5, B: 0, A: 1}
	n, ok := c.Color().(color.NRGBA)
	if !ok {
		t.Fatalf("Color() returned %T, want color.NRGBA", c.Color())
	}
	if n != (color.NRGBA{R: 255, G: 128, B: 0, A: 255}) {
		t.Errorf("Color() = %v, want {255 128 0 255}", n)
	}
	if got := FromColor(n).Pack(); got != c.Pack() {
		t.Errorf("FromColor(Color()).Pack() = %#08x, want %#08x", got, c.Pack())
	}
}

func TestRGBALerp(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	want := RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
	if got != want {
		t.Errorf("Lerp() = %v, want %v", got, want)
	}
}
