package heatmap

import (
	"image"
	"image/draw"
	"math"
	"os"
	"strconv"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/wbrown/heatmap/imageutil"
)

const (
	legendFontSize = 12.0
	legendPadding  = 2
)

// RenderLegend draws a color lookup table as a horizontal colorbar
// with the domain's minimum and maximum labeled beneath the left and
// right edges. The labels are rasterized from the TrueType font at
// fontPath. The colorbar spans the full width; the bottom of the image
// is reserved for the text band.
//
// The output is a plain pixel buffer like every other artifact of this
// package; encoding it to a file is the caller's concern.
func RenderLegend(lut ColorLUT, domainMin, domainMax float64, width, height int, fontPath string) (*imageutil.RGBAImage, error) {
	if len(lut) < 2 {
		return nil, configErrorf("LUT resolution",
			"must be at least 2, got %d", len(lut))
	}
	if domainMin >= domainMax {
		return nil, configErrorf("domain",
			"min must be less than max, got [%v, %v]", domainMin, domainMax)
	}
	textBand := int(legendFontSize) + 2*legendPadding
	if width < 2 || height <= textBand {
		return nil, configErrorf("legend dimensions",
			"must be at least 2x%d, got %dx%d", textBand+1, width, height)
	}

	ttf, err := loadLegendFont(fontPath)
	if err != nil {
		return nil, err
	}

	img := imageutil.NewRGBAImage(width, height)
	draw.Draw(img.RGBA, img.Bounds(), image.White, image.Point{}, draw.Src)

	// Colorbar: one LUT sample per column, same round-to-nearest
	// index selection as the color mapper.
	barH := height - textBand
	for x := 0; x < width; x++ {
		t := float64(x) / float64(width-1)
		idx := int(math.Round(t * float64(len(lut)-1)))
		c := lut[idx].ToColor()
		for y := 0; y < barH; y++ {
			img.SetRGBA(x, y, c)
		}
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(legendFontSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img.RGBA)
	ctx.SetSrc(image.Black)
	ctx.SetHinting(font.HintingFull)

	baseline := barH + legendPadding + int(legendFontSize)
	minLabel := formatDomainValue(domainMin)
	maxLabel := formatDomainValue(domainMax)

	if _, err := ctx.DrawString(minLabel, freetype.Pt(legendPadding, baseline)); err != nil {
		return nil, configErrorf("legend font", "drawing %q: %v", minLabel, err)
	}

	// Right-align the max label using face metrics.
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    legendFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	advance := font.MeasureString(face, maxLabel)
	maxX := width - legendPadding - advance.Ceil()
	if maxX < 0 {
		maxX = 0
	}
	if _, err := ctx.DrawString(maxLabel, freetype.Pt(maxX, baseline)); err != nil {
		return nil, configErrorf("legend font", "drawing %q: %v", maxLabel, err)
	}

	return img, nil
}

// loadLegendFont loads and parses a TrueType font from file.
func loadLegendFont(path string) (*truetype.Font, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, configErrorf("legend font", "reading %q: %v", path, err)
	}
	ttf, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, configErrorf("legend font", "parsing %q: %v", path, err)
	}
	return ttf, nil
}

// formatDomainValue renders a domain bound compactly for a label.
func formatDomainValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
