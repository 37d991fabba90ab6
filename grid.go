package heatmap

// Grid is a 2-D scalar field stored in row-major order: the value at
// column x, row y lives at Values[x+y*Width]. A Grid is treated as
// immutable once produced; every stage of the render pipeline
// allocates a fresh Grid rather than mutating its input.
type Grid struct {
	Width  int
	Height int
	Values []float64
}

// NewGrid wraps a row-major scalar slice as a Grid. The slice is used
// directly, not copied. Dimensions must be positive and len(values)
// must equal width*height; a ConfigurationError is returned otherwise.
func NewGrid(values []float64, width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, configErrorf("grid dimensions",
			"must be positive, got %dx%d", width, height)
	}
	if len(values) != width*height {
		return nil, configErrorf("grid values",
			"have %d elements, want %d for %dx%d",
			len(values), width*height, width, height)
	}
	return &Grid{Width: width, Height: height, Values: values}, nil
}

// newGrid allocates a zeroed Grid with the given dimensions. Internal
// callers pass dimensions that have already been validated.
func newGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Values: make([]float64, width*height),
	}
}

// At returns the value at column x, row y. Indices are not bounds
// checked beyond the slice access itself.
func (g *Grid) At(x, y int) float64 {
	return g.Values[x+y*g.Width]
}

// MinMax scans the grid and returns its smallest and largest values.
// Useful for callers that want the value domain derived from the data
// rather than fixed up front. NaN values are skipped; a grid of only
// NaNs returns (0, 0, false).
func (g *Grid) MinMax() (min, max float64, ok bool) {
	for _, v := range g.Values {
		if v != v { // NaN
			continue
		}
		if !ok {
			min, max, ok = v, v, true
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, ok
}
