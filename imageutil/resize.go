package imageutil

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

func scalerFor(interp Interpolation) draw.Scaler {
	switch interp {
	case InterpolationArea:
		return draw.CatmullRom
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	dstRect := image.Rect(0, 0, width, height)

	scalerFor(interp).Scale(dst.RGBA, dstRect, img.RGBA, img.Bounds(), draw.Over, nil)
	return dst
}

// GradientRow collapses an arbitrary decoded gradient image into a
// 1-row strip of the given width, sampling with bilinear filtering.
// Gradient artwork often ships as a multi-row banner; the LUT builder
// requires a single row, and this is the adapter between the two.
func GradientRow(img *RGBAImage, width int) (*RGBAImage, error) {
	if width < 2 {
		return nil, fmt.Errorf("gradient row width must be at least 2, got %d", width)
	}
	if img.Width() < 1 || img.Height() < 1 {
		return nil, fmt.Errorf("gradient source image is empty")
	}
	if img.Height() == 1 && img.Width() == width {
		return img, nil
	}
	return Resize(img, width, 1, InterpolationLinear), nil
}
