package heatmap

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/wbrown/heatmap/imageutil"
)

//go:embed gradientdata/grayscale.json
//go:embed gradientdata/jet.json
//go:embed gradientdata/turbo.json
var gradientFS embed.FS

// LoadGradient loads a named gradient as a 1-row source image suitable
// for BuildLUT. The name is first resolved against the embedded
// gradient set (grayscale, jet, turbo); if that fails it is treated as
// a filesystem path to a JSON gradient definition. A gradient
// definition is an ordered JSON array of hex color stops, e.g.
// ["#000000", "#ff0000", "#ffff00"]; the stops become the pixels of
// the source row, evenly spaced.
func LoadGradient(name string) (*imageutil.RGBAImage, error) {
	data, vfsErr := gradientFS.ReadFile(fmt.Sprintf("gradientdata/%s.json", name))
	if vfsErr != nil {
		var fsErr error
		data, fsErr = os.ReadFile(name)
		if fsErr != nil {
			return nil, configErrorf("gradient",
				"%q is not an embedded gradient (%s) and not a readable file: %v",
				name, strings.Join(EmbeddedGradients(), ", "), fsErr)
		}
	}

	var stopStrings []string
	if err := json.Unmarshal(data, &stopStrings); err != nil {
		return nil, configErrorf("gradient",
			"%q: error unmarshalling stops: %v", name, err)
	}

	stops := make([]RGBA, len(stopStrings))
	for i, s := range stopStrings {
		c, err := ParseHexColor(s)
		if err != nil {
			return nil, configErrorf("gradient",
				"%q stop %d: %v", name, i, err)
		}
		stops[i] = c
	}
	return GradientRowFromStops(stops)
}

// GradientRowFromStops builds a 1-row source image with one pixel per
// stop. BuildLUT's interpolation then blends linearly between adjacent
// stops, so the stop list fully determines the gradient.
func GradientRowFromStops(stops []RGBA) (*imageutil.RGBAImage, error) {
	if len(stops) < 2 {
		return nil, configErrorf("gradient stops",
			"need at least 2, got %d", len(stops))
	}
	row := imageutil.NewRGBAImage(len(stops), 1)
	for x, c := range stops {
		row.SetRGBA(x, 0, c.ToColor())
	}
	return row, nil
}

// EmbeddedGradients returns the names of the gradients shipped with
// the package, sorted.
func EmbeddedGradients() []string {
	entries, err := gradientFS.ReadDir("gradientdata")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}
