package lobster

import (
	"fmt"
	"image/color"
	"math"
)

// RGB is an opaque colour with 8-bit channels.
//
// All palette arithmetic works on rounded integer channels so that every
// intermediate colour matches the canonical renderer exactly.
type RGB struct {
	R, G, B uint8
}

// Common colors
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// Hex creates a color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with or without a leading '#'.
// Any other length yields Black.
func Hex(hex string) RGB {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	default:
		return Black
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// Mix linearly interpolates from c toward o by t and rounds each channel.
// t is not clamped; results outside [0, 255] saturate.
func (c RGB) Mix(o RGB, t float64) RGB {
	return RGB{
		R: mixChannel(c.R, o.R, t),
		G: mixChannel(c.G, o.G, t),
		B: mixChannel(c.B, o.B, t),
	}
}

// Darken mixes c toward black by t.
func (c RGB) Darken(t float64) RGB { return c.Mix(Black, t) }

// Lighten mixes c toward white by t.
func (c RGB) Lighten(t float64) RGB { return c.Mix(White, t) }

// Color converts c to an opaque color.NRGBA.
func (c RGB) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Hex returns the "#rrggbb" form of c.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string { return c.Hex() }

// The explicit float64 conversions below (and throughout the compositor)
// force each product to be rounded on its own. Without them the compiler
// may fuse a*b+c into a single FMA on arm64/ppc64/s390x and drift from
// the reference by one ulp, which is enough to flip a rounded channel.
func mixChannel(a, b uint8, t float64) uint8 {
	v := float64(float64(a)*(1-t)) + float64(float64(b)*t)
	return uint8(clampByte(Round(v)))
}

// Round rounds half toward positive infinity, the rounding used by the
// canonical renderer (unlike math.Round, which rounds half away from zero).
func Round(x float64) int {
	f := math.Floor(x)
	if x-f >= 0.5 {
		f++
	}
	return int(f)
}

// clampByte restricts a value to [0, 255] range.
func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
