package heatmap

import (
	"math"

	"github.com/wbrown/heatmap/imageutil"
)

// MapColors maps every value of a scalar grid through a color lookup
// table, producing an RGBA pixel buffer of the same dimensions. Each
// value is normalized against [domainMin, domainMax], quantized to the
// nearest table index, and replaced by that entry's color. Values
// below domainMin or above domainMax saturate to the table's first or
// last entry; that is display clamping, not an error. NaN values map
// to a fully transparent pixel.
//
// Element i of the grid becomes pixel i of the output, so spatial
// correspondence is preserved exactly. The grid and table are only
// read; a fresh buffer is allocated per call.
func MapColors(g *Grid, lut ColorLUT, domainMin, domainMax float64) (*imageutil.RGBAImage, error) {
	if g == nil {
		return nil, configErrorf("color map input", "is nil")
	}
	if len(lut) < 2 {
		return nil, configErrorf("LUT resolution",
			"must be at least 2, got %d", len(lut))
	}
	if domainMin >= domainMax {
		return nil, configErrorf("domain",
			"min must be less than max, got [%v, %v]", domainMin, domainMax)
	}

	out := imageutil.NewRGBAImage(g.Width, g.Height)
	scale := float64(len(lut)-1) / (domainMax - domainMin)
	for i, v := range g.Values {
		if v != v { // NaN has no position in the domain
			continue
		}
		x := i % g.Width
		y := i / g.Width
		// Clamp in the float domain: converting an out-of-range
		// float to int is implementation-defined, so huge values
		// (or infinities) must be saturated before the conversion.
		t := (v - domainMin) * scale
		if t < 0 {
			t = 0
		}
		if t > float64(len(lut)-1) {
			t = float64(len(lut) - 1)
		}
		out.SetRGBA(x, y, lut[int(math.Round(t))].ToColor())
	}
	return out, nil
}
