package shapemesh

import (
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Pack returns the color as a vertex attribute: four unorm bytes in R, G, B,
// A memory order, read as a little-endian uint32 (0xAABBGGRR).
func (c RGBA) Pack() uint32 {
	return uint32(to8(c.R)) |
		uint32(to8(c.G))<<8 |
		uint32(to8(c.B))<<16 |
		uint32(to8(c.A))<<24
}

// UnpackColor is the inverse of RGBA.Pack.
func UnpackColor(v uint32) RGBA {
	return RGBA{
		R: float64(v&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v>>16&0xff) / 255,
		A: float64(v>>24&0xff) / 255,
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	a := uint32(255)

	switch len(hex) {
	case 3, 4:
		r, g, b = parseHex(hex[0:1])*17, parseHex(hex[1:2])*17, parseHex(hex[2:3])*17
		if len(hex) == 4 {
			a = parseHex(hex[3:4]) * 17
		}
	case 6, 8:
		r, g, b = parseHex(hex[0:2]), parseHex(hex[2:4]), parseHex(hex[4:6])
		if len(hex) == 8 {
			a = parseHex(hex[6:8])
		}
	default:
		return Black
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// parseHex parses hex digits, stopping at the first invalid one.
func parseHex(s string) uint32 {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
			v = v*16 + uint32(c-'0')
		case 'a' <= c && c <= 'f':
			v = v*16 + uint32(c-'a'+10)
		case 'A' <= c && c <= 'F':
			v = v*16 + uint32(c-'A'+10)
		default:
			return v
		}
	}
	return v
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// to8 converts a [0, 1] component to a rounded byte, clamping out-of-range
// values.
func to8(x float64) uint8 {
	switch {
	case math.IsNaN(x) || x <= 0:
		return 0
	case x >= 1:
		return 255
	}
	return uint8(math.Round(x * 255))
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)
