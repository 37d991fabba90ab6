// Command heatmap renders a CSV scalar grid as a color heatmap PNG.
//
// The input is a CSV file where each record is one row of the scalar
// field. The value domain defaults to the data's min/max; pass -min
// and -max to fix it, e.g. for comparable frames of a sequence.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/wbrown/heatmap"
	"github.com/wbrown/heatmap/imageutil"
)

func main() {
	inputFile := flag.String("input", "",
		"Path to the input CSV file of scalar rows (required)")
	outputFile := flag.String("output", "heatmap.png",
		"Path to save the rendered heatmap")
	gradientName := flag.String("gradient", "jet",
		"Gradient to use (embedded: grayscale, jet, turbo; "+
			"or path to a JSON stop list or gradient image)")
	outWidth := flag.Int("width", 512,
		"Output width in pixels")
	outHeight := flag.Int("height", 512,
		"Output height in pixels")
	lutResolution := flag.Int("lut", 256,
		"Number of discretized gradient colors")
	domainMin := flag.Float64("min", math.NaN(),
		"Lower bound of the value domain (default: data minimum)")
	domainMax := flag.Float64("max", math.NaN(),
		"Upper bound of the value domain (default: data maximum)")
	parallel := flag.Int("parallel", 0,
		"Resampling goroutines per pass (0 = one per CPU)")
	legendFile := flag.String("legend", "",
		"Optional path to save a labeled colorbar legend PNG")
	fontFile := flag.String("font", "",
		"TTF font for legend labels (required with -legend)")
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "error: -input is required")
		flag.Usage()
		os.Exit(1)
	}

	grid, err := readGridCSV(*inputFile)
	if err != nil {
		fatalf("reading %s: %v", *inputFile, err)
	}

	min, max := *domainMin, *domainMax
	if math.IsNaN(min) || math.IsNaN(max) {
		dataMin, dataMax, ok := grid.MinMax()
		if !ok {
			fatalf("input contains no finite values")
		}
		if math.IsNaN(min) {
			min = dataMin
		}
		if math.IsNaN(max) {
			max = dataMax
		}
		if min >= max {
			// Flat data still renders; give it a token range.
			max = min + 1
		}
	}

	opts := []heatmap.RendererOption{
		heatmap.WithOutputSize(*outWidth, *outHeight),
		heatmap.WithLUTResolution(*lutResolution),
		heatmap.WithDomain(min, max),
		heatmap.WithParallelism(*parallel),
	}
	if img, err := imageutil.LoadImage(*gradientName); err == nil {
		// Gradient given as an image file; collapse to a 1-row strip.
		row, rowErr := imageutil.GradientRow(img, img.Width())
		if rowErr != nil {
			fatalf("gradient image %s: %v", *gradientName, rowErr)
		}
		opts = append(opts, heatmap.WithGradientImage(row))
	} else {
		opts = append(opts, heatmap.WithGradient(*gradientName))
	}

	renderer, err := heatmap.NewRenderer(opts...)
	if err != nil {
		fatalf("%v", err)
	}

	img, err := renderer.Render(grid)
	if err != nil {
		fatalf("rendering: %v", err)
	}
	if err := imageutil.SavePNG(img.RGBA, *outputFile); err != nil {
		fatalf("saving %s: %v", *outputFile, err)
	}
	fmt.Printf("Wrote %dx%d heatmap to %s (domain [%g, %g])\n",
		*outWidth, *outHeight, *outputFile, min, max)

	if *legendFile != "" {
		if *fontFile == "" {
			fatalf("-legend requires -font")
		}
		legend, err := heatmap.RenderLegend(
			renderer.LUT(), min, max, *outWidth, 48, *fontFile)
		if err != nil {
			fatalf("legend: %v", err)
		}
		if err := imageutil.SavePNG(legend.RGBA, *legendFile); err != nil {
			fatalf("saving %s: %v", *legendFile, err)
		}
		fmt.Printf("Wrote legend to %s\n", *legendFile)
	}
}

// readGridCSV parses a CSV of scalar rows into a Grid. Every record
// must have the same number of fields; empty fields parse as NaN.
func readGridCSV(path string) (*heatmap.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no rows")
	}

	width := len(records[0])
	values := make([]float64, 0, width*len(records))
	for i, record := range records {
		if len(record) != width {
			return nil, fmt.Errorf(
				"row %d has %d fields, want %d", i+1, len(record), width)
		}
		for j, field := range record {
			if field == "" {
				values = append(values, math.NaN())
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d field %d: %v", i+1, j+1, err)
			}
			values = append(values, v)
		}
	}
	return heatmap.NewGrid(values, width, len(records))
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
