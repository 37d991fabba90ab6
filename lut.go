// Package heatmap renders 2-D scalar fields as color raster images.
// The pipeline has three stages: a color lookup table built once from
// a 1-row gradient image, separable bilinear resampling of the scalar
// grid to the output resolution, and per-pixel mapping of resampled
// values through the table. Each stage is a pure function over its
// inputs; Renderer ties them together behind a validated
// configuration.
package heatmap

import (
	"math"

	"github.com/wbrown/heatmap/imageutil"
)

// ColorLUT is a discretized color lookup table: a fixed-length table
// of RGBA entries indexed by a quantized scalar position. It is built
// once per renderer and read-only afterwards, so any number of
// concurrent renders may share it.
type ColorLUT []RGBA

// BuildLUT discretizes a 1-row gradient image into a lookup table with
// the given resolution. Entry i is sampled at fractional source
// position i/(resolution-1)*(srcWidth-1) by linear interpolation
// between the two adjacent source pixels; the first and last entries
// therefore reproduce the source row's endpoint pixels exactly.
//
// The source image must be exactly one row tall and at least two
// pixels wide, and resolution must be at least 2; violations return a
// ConfigurationError.
func BuildLUT(src *imageutil.RGBAImage, resolution int) (ColorLUT, error) {
	if src == nil {
		return nil, configErrorf("LUT source image", "is nil")
	}
	if h := src.Height(); h != 1 {
		return nil, configErrorf("LUT source image",
			"must be exactly 1 row tall, got height %d", h)
	}
	if w := src.Width(); w < 2 {
		return nil, configErrorf("LUT source image",
			"must be at least 2 pixels wide, got width %d", w)
	}
	if resolution < 2 {
		return nil, configErrorf("LUT resolution",
			"must be at least 2, got %d", resolution)
	}

	srcWidth := src.Width()
	lut := make(ColorLUT, resolution)
	for i := range lut {
		pos := float64(i) / float64(resolution-1) * float64(srcWidth-1)
		lower := int(math.Floor(pos))
		upper := int(math.Ceil(pos))
		f := pos - float64(lower)

		a := RGBAFromColor(src.RGBAAt(lower, 0))
		b := RGBAFromColor(src.RGBAAt(upper, 0))
		lut[i] = lerp(a, b, f)
	}
	return lut, nil
}

// Resolution returns the number of entries in the table.
func (lut ColorLUT) Resolution() int {
	return len(lut)
}
