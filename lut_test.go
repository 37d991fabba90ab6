package heatmap

import (
	"errors"
	"image/color"
	"testing"

	"github.com/wbrown/heatmap/imageutil"
)

func TestBuildLUTEndpoints(t *testing.T) {
	t.Parallel()

	widths := []int{2, 3, 7, 256}
	resolutions := []int{2, 3, 16, 512}

	for _, w := range widths {
		src := imageutil.CreateGradientRow(w)
		first := RGBAFromColor(src.RGBAAt(0, 0))
		last := RGBAFromColor(src.RGBAAt(w-1, 0))

		for _, res := range resolutions {
			lut, err := BuildLUT(src, res)
			if err != nil {
				t.Fatalf("BuildLUT(width=%d, res=%d) failed: %v", w, res, err)
			}
			if len(lut) != res {
				t.Fatalf("LUT has %d entries, want %d", len(lut), res)
			}
			if lut[0] != first {
				t.Errorf("width=%d res=%d: LUT[0] = %v, want source left pixel %v",
					w, res, lut[0], first)
			}
			if lut[res-1] != last {
				t.Errorf("width=%d res=%d: LUT[%d] = %v, want source right pixel %v",
					w, res, res-1, lut[res-1], last)
			}
		}
	}
}

func TestBuildLUTMonotonic(t *testing.T) {
	t.Parallel()

	// A monotonic source row must produce a monotonic LUT: linear
	// interpolation between adjacent pixels cannot overshoot.
	src := imageutil.CreateColorRow([]color.RGBA{
		{R: 0, G: 250, B: 10, A: 255},
		{R: 30, G: 200, B: 90, A: 255},
		{R: 90, G: 120, B: 150, A: 255},
		{R: 200, G: 40, B: 220, A: 255},
		{R: 255, G: 0, B: 255, A: 255},
	})

	lut, err := BuildLUT(src, 64)
	if err != nil {
		t.Fatalf("BuildLUT failed: %v", err)
	}

	for i := 1; i < len(lut); i++ {
		if lut[i].R < lut[i-1].R {
			t.Errorf("R channel not monotonic at %d: %d < %d", i, lut[i].R, lut[i-1].R)
		}
		if lut[i].G > lut[i-1].G {
			t.Errorf("G channel not monotonic at %d: %d > %d", i, lut[i].G, lut[i-1].G)
		}
		if lut[i].B < lut[i-1].B {
			t.Errorf("B channel not monotonic at %d: %d < %d", i, lut[i].B, lut[i-1].B)
		}
	}
}

func TestBuildLUTRedBlueBlend(t *testing.T) {
	t.Parallel()

	src := imageutil.CreateColorRow([]color.RGBA{
		{R: 255, G: 0, B: 0, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
	})

	lut, err := BuildLUT(src, 3)
	if err != nil {
		t.Fatalf("BuildLUT failed: %v", err)
	}

	want := ColorLUT{
		{R: 255, G: 0, B: 0, A: 255},
		{R: 127, G: 0, B: 127, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
	}
	for i := range want {
		if lut[i] != want[i] {
			t.Errorf("LUT[%d] = %v, want %v", i, lut[i], want[i])
		}
	}
}

func TestBuildLUTRejectsBadInput(t *testing.T) {
	t.Parallel()

	tall := imageutil.NewRGBAImage(4, 2)
	row := imageutil.CreateGradientRow(4)
	narrow := imageutil.NewRGBAImage(1, 1)

	cases := []struct {
		name string
		src  *imageutil.RGBAImage
		res  int
	}{
		{"nil source", nil, 8},
		{"two-row source", tall, 8},
		{"one-pixel source", narrow, 8},
		{"resolution below 2", row, 1},
		{"zero resolution", row, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildLUT(tc.src, tc.res)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("error is %T, want *ConfigurationError", err)
			}
		})
	}
}

func TestBuildLUTDeterministic(t *testing.T) {
	t.Parallel()

	src := imageutil.CreateGradientRow(17)
	a, err := BuildLUT(src, 100)
	if err != nil {
		t.Fatalf("BuildLUT failed: %v", err)
	}
	b, err := BuildLUT(src, 100)
	if err != nil {
		t.Fatalf("BuildLUT failed: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("LUT not deterministic at %d: %v vs %v", i, a[i], b[i])
		}
	}
}
