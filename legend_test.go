package heatmap

import (
	"errors"
	"testing"
)

func TestRenderLegendRejectsBadConfig(t *testing.T) {
	t.Parallel()

	lut := grayLUT(t, 16)
	cases := []struct {
		name     string
		lut      ColorLUT
		min, max float64
		w, h     int
	}{
		{"short LUT", ColorLUT{{R: 1}}, 0, 1, 100, 40},
		{"degenerate domain", lut, 2, 2, 100, 40},
		{"inverted domain", lut, 5, 1, 100, 40},
		{"too narrow", lut, 0, 1, 1, 40},
		{"too short for text band", lut, 0, 1, 100, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RenderLegend(tc.lut, tc.min, tc.max, tc.w, tc.h, "")
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

func TestRenderLegendMissingFont(t *testing.T) {
	t.Parallel()

	lut := grayLUT(t, 16)
	_, err := RenderLegend(lut, 0, 1, 200, 48, "no-such-font.ttf")
	if err == nil {
		t.Fatal("expected error for missing font file, got nil")
	}
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error is %T, want *ConfigurationError", err)
	}
}

func TestFormatDomainValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1.5, "1.5"},
		{-273.15, "-273.1"},
		{1e6, "1e+06"},
	}
	for _, tc := range cases {
		if got := formatDomainValue(tc.in); got != tc.want {
			t.Errorf("formatDomainValue(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
