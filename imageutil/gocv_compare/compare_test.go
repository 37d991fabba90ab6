// Package gocv_compare contains tests that compare the pure Go
// separable resampler against gocv (OpenCV). These tests require
// OpenCV to be installed.
//
// Run with: cd imageutil/gocv_compare && go test -v
package gocv_compare

import (
	"image"
	"math"
	"testing"

	"github.com/wbrown/heatmap"
	"github.com/wbrown/heatmap/imageutil"
	"gocv.io/x/gocv"
)

// gridToGray quantizes a scalar grid with values in [0, 255] to an
// 8-bit gray image.
func gridToGray(g *heatmap.Grid) *imageutil.GrayImage {
	img := imageutil.NewGrayImage(g.Width, g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			v := math.Round(g.At(x, y))
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			img.SetGrayValue(x, y, uint8(v))
		}
	}
	return img
}

// grayToGocv converts a GrayImage to a gocv.Mat (grayscale).
func grayToGocv(img *imageutil.GrayImage) gocv.Mat {
	mat := gocv.NewMatWithSize(img.Height(), img.Width(), gocv.MatTypeCV8U)

	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			mat.SetUCharAt(y, x, img.GetGray(x, y))
		}
	}
	return mat
}

// gocvGrayToGray converts a gocv.Mat (grayscale) to a GrayImage.
func gocvGrayToGray(mat gocv.Mat) *imageutil.GrayImage {
	height, width := mat.Rows(), mat.Cols()
	img := imageutil.NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGrayValue(x, y, mat.GetUCharAt(y, x))
		}
	}
	return img
}

// rampGrid builds a smooth 2-D ramp scaled into [0, 255].
func rampGrid(width, height int) *heatmap.Grid {
	values := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			values[x+y*width] = 255 *
				(float64(x)/float64(width-1) + float64(y)/float64(height-1)) / 2
		}
	}
	g, err := heatmap.NewGrid(values, width, height)
	if err != nil {
		panic(err)
	}
	return g
}

func TestCompareResampleBilinear(t *testing.T) {
	testCases := []struct {
		name      string
		srcWidth  int
		srcHeight int
		dstWidth  int
		dstHeight int
	}{
		{"upscale 2x", 32, 32, 64, 64},
		{"downscale 2x", 64, 64, 32, 32},
		{"non-uniform", 40, 20, 100, 60},
		{"wide to tall", 128, 16, 16, 128},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			grid := rampGrid(tc.srcWidth, tc.srcHeight)

			// Resample with gocv (INTER_LINEAR).
			srcMat := grayToGocv(gridToGray(grid))
			defer srcMat.Close()
			dstMat := gocv.NewMat()
			defer dstMat.Close()
			gocv.Resize(srcMat, &dstMat,
				image.Pt(tc.dstWidth, tc.dstHeight), 0, 0,
				gocv.InterpolationLinear)
			gocvResult := gocvGrayToGray(dstMat)

			// Resample with the pure Go separable pipeline.
			resampled, err := heatmap.Resample(grid, tc.dstWidth, tc.dstHeight)
			if err != nil {
				t.Fatalf("Resample failed: %v", err)
			}
			pureGoResult := gridToGray(resampled)

			// Both use pixel-center bilinear sampling; differences
			// come from OpenCV's fixed-point arithmetic and our
			// 8-bit quantization of the source.
			mse := imageutil.CalculateMSEGray(gocvResult, pureGoResult)
			t.Logf("%s MSE: %f", tc.name, mse)
			if mse > 4.0 {
				t.Errorf("Resample MSE too high: %f (threshold: 4.0)", mse)
			}
		})
	}
}

func TestCompareResampleIdentity(t *testing.T) {
	grid := rampGrid(48, 48)

	srcMat := grayToGocv(gridToGray(grid))
	defer srcMat.Close()
	dstMat := gocv.NewMat()
	defer dstMat.Close()
	gocv.Resize(srcMat, &dstMat, image.Pt(48, 48), 0, 0,
		gocv.InterpolationLinear)

	resampled, err := heatmap.Resample(grid, 48, 48)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}

	mse := imageutil.CalculateMSEGray(gocvGrayToGray(dstMat), gridToGray(resampled))
	if mse > 0.01 {
		t.Errorf("identity resample should match exactly, MSE: %f", mse)
	}
}
