package heatmap

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGBA represents a color with explicit 8-bit red, green, blue, and
// alpha channels. Channels are stored individually rather than packed
// into a uint32 so that interpolation and comparison never depend on
// platform byte order.
type RGBA struct {
	R, G, B, A uint8
}

// ToColor converts an RGBA to the standard library's color.RGBA.
func (c RGBA) ToColor() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBAFromColor converts any color.Color to an RGBA.
func RGBAFromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

// lerp linearly interpolates between two colors per channel. The
// fraction f is the weight of b; f=0 returns a exactly and f=1 returns
// b exactly. Intermediate channel values truncate toward zero, so an
// even blend of 255 and 0 yields 127.
func lerp(a, b RGBA, f float64) RGBA {
	return RGBA{
		R: uint8((1-f)*float64(a.R) + f*float64(b.R)),
		G: uint8((1-f)*float64(a.G) + f*float64(b.G)),
		B: uint8((1-f)*float64(a.B) + f*float64(b.B)),
		A: uint8((1-f)*float64(a.A) + f*float64(b.A)),
	}
}

// ParseHexColor parses a hex color string such as "#ff8800",
// "ff8800", or "#ff8800cc" into an RGBA. Three-byte colors get an
// alpha of 255.
func ParseHexColor(s string) (RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return RGBA{}, fmt.Errorf("invalid hex color %q: want 6 or 8 digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	if len(hex) == 6 {
		return RGBA{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
			A: 255,
		}, nil
	}
	return RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
