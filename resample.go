package heatmap

import (
	"math"
	"runtime"
	"sync"
)

// axisSample holds the precomputed neighbor indices and blend fraction
// for one output position along a single axis.
type axisSample struct {
	lower, upper int
	frac         float64
}

// axisSamples computes the 1-D sampling plan for resampling an axis of
// inN cells to outN cells. Output position i maps to source coordinate
// (i+0.5)/outN*inN - 0.5, aligning pixel centers rather than pixel
// edges so the mapping carries no half-pixel bias. Neighbor indices
// are clamped to [0, inN-1]; positions beyond the input bounds
// replicate the boundary cell.
func axisSamples(outN, inN int) []axisSample {
	samples := make([]axisSample, outN)
	for i := range samples {
		val := (float64(i)+0.5)/float64(outN)*float64(inN) - 0.5
		lower := int(math.Floor(val))
		if lower < 0 {
			lower = 0
		}
		upper := int(math.Ceil(val))
		if upper > inN-1 {
			upper = inN - 1
		}
		samples[i] = axisSample{
			lower: lower,
			upper: upper,
			frac:  val - float64(lower),
		}
	}
	return samples
}

// Resample scales a scalar grid to the given output dimensions using
// separable bilinear interpolation: one horizontal pass producing an
// outW x inH intermediate grid, then one vertical pass producing the
// final outW x outH grid. 2-D bilinear interpolation decomposes
// exactly into these two 1-D passes, so the result matches a direct
// 4-neighbor implementation while reusing each blended row.
//
// Sampling positions outside the input are clamped, never wrapped or
// extrapolated; a 1-wide or 1-tall input broadcasts along that axis.
// The input grid is not modified. Work is split across CPUs for large
// grids; the output is identical to the serial computation.
func Resample(g *Grid, outW, outH int) (*Grid, error) {
	return resample(g, outW, outH, runtime.NumCPU())
}

func resample(g *Grid, outW, outH int, workers int) (*Grid, error) {
	if g == nil {
		return nil, configErrorf("resample input", "is nil")
	}
	if outW < 1 || outH < 1 {
		return nil, configErrorf("output dimensions",
			"must be positive, got %dx%d", outW, outH)
	}
	if workers < 1 {
		workers = 1
	}

	// Horizontal pass: outW x inH.
	hSamples := axisSamples(outW, g.Width)
	intermediate := newGrid(outW, g.Height)
	forEachRow(g.Height, workers, func(start, end int) {
		for y := start; y < end; y++ {
			inRow := g.Values[y*g.Width : (y+1)*g.Width]
			outRow := intermediate.Values[y*outW : (y+1)*outW]
			for x, s := range hSamples {
				lo := inRow[s.lower]
				outRow[x] = lo + s.frac*(inRow[s.upper]-lo)
			}
		}
	})

	// Vertical pass: outW x outH.
	vSamples := axisSamples(outH, g.Height)
	out := newGrid(outW, outH)
	forEachRow(outH, workers, func(start, end int) {
		for y := start; y < end; y++ {
			s := vSamples[y]
			loRow := intermediate.Values[s.lower*outW : (s.lower+1)*outW]
			hiRow := intermediate.Values[s.upper*outW : (s.upper+1)*outW]
			outRow := out.Values[y*outW : (y+1)*outW]
			for x := range outRow {
				outRow[x] = loRow[x] + s.frac*(hiRow[x]-loRow[x])
			}
		}
	})

	return out, nil
}

// parallelRowThreshold is the row count below which a pass runs on the
// calling goroutine; goroutine overhead dominates for small grids.
const parallelRowThreshold = 64

// forEachRow invokes fn over [0, rows) split into contiguous chunks,
// one per worker. Each row is visited by exactly one chunk, so fn may
// write disjoint output rows without synchronization.
func forEachRow(rows, workers int, fn func(start, end int)) {
	if workers <= 1 || rows < parallelRowThreshold {
		fn(0, rows)
		return
	}
	if workers > rows {
		workers = rows
	}

	chunk := (rows + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < rows; start += chunk {
		end := start + chunk
		if end > rows {
			end = rows
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}
