package heatmap

import (
	"sync"
	"time"

	"github.com/wbrown/heatmap/imageutil"
)

// Renderer encapsulates all state for heatmap rendering: the output
// resolution, the value domain, and the color lookup table built once
// at construction. A Renderer is immutable after NewRenderer returns,
// so a single instance may serve any number of concurrent Render
// calls; each call allocates its own intermediate and output buffers.
type Renderer struct {
	// Configuration, fixed at construction.
	OutputWidth   int
	OutputHeight  int
	LUTResolution int
	DomainMin     float64
	DomainMax     float64
	Parallelism   int

	// LUT state (private, read-only after construction)
	lut ColorLUT

	// Stats (private)
	statsMu    sync.Mutex
	renders    int
	renderTime time.Duration
}

// rendererConfig collects option inputs before validation. Gradient
// sources are mutually exclusive; the last option applied wins.
type rendererConfig struct {
	outW, outH    int
	lutResolution int
	domainMin     float64
	domainMax     float64
	parallelism   int

	gradientName  string
	gradientImage *imageutil.RGBAImage
	gradientStops []RGBA
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*rendererConfig)

// WithOutputSize sets the output raster dimensions in pixels.
func WithOutputSize(width, height int) RendererOption {
	return func(c *rendererConfig) {
		c.outW = width
		c.outH = height
	}
}

// WithLUTResolution sets the number of discretized color entries.
func WithLUTResolution(resolution int) RendererOption {
	return func(c *rendererConfig) {
		c.lutResolution = resolution
	}
}

// WithDomain sets the scalar value range mapped across the gradient.
// Values outside the range saturate to the gradient's endpoints.
func WithDomain(min, max float64) RendererOption {
	return func(c *rendererConfig) {
		c.domainMin = min
		c.domainMax = max
	}
}

// WithGradient selects a named gradient: an embedded one (grayscale,
// jet, turbo) or a path to a JSON gradient definition.
func WithGradient(name string) RendererOption {
	return func(c *rendererConfig) {
		c.gradientName = name
		c.gradientImage = nil
		c.gradientStops = nil
	}
}

// WithGradientImage supplies an already-decoded 1-row gradient image.
func WithGradientImage(img *imageutil.RGBAImage) RendererOption {
	return func(c *rendererConfig) {
		c.gradientImage = img
		c.gradientName = ""
		c.gradientStops = nil
	}
}

// WithGradientStops supplies the gradient as an ordered list of color
// stops, evenly spaced.
func WithGradientStops(stops []RGBA) RendererOption {
	return func(c *rendererConfig) {
		c.gradientStops = stops
		c.gradientName = ""
		c.gradientImage = nil
	}
}

// WithParallelism caps the number of goroutines used per resampling
// pass. Zero means one per CPU; one forces serial execution.
func WithParallelism(n int) RendererOption {
	return func(c *rendererConfig) {
		c.parallelism = n
	}
}

// NewRenderer creates a Renderer with the given options and builds its
// color lookup table. Defaults: 256x256 output, LUT resolution 256,
// domain [0, 1], grayscale gradient, one worker per CPU.
//
// All configuration invariants are checked here and violations return
// a ConfigurationError: output dimensions and LUT resolution must be
// valid, the domain must satisfy min < max, and the gradient source
// must be a usable 1-row image. A Renderer is never returned partially
// constructed.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	cfg := rendererConfig{
		outW:          256,
		outH:          256,
		lutResolution: 256,
		domainMin:     0,
		domainMax:     1,
		gradientName:  "grayscale",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.outW < 1 || cfg.outH < 1 {
		return nil, configErrorf("output dimensions",
			"must be positive, got %dx%d", cfg.outW, cfg.outH)
	}
	if cfg.domainMin >= cfg.domainMax {
		return nil, configErrorf("domain",
			"min must be less than max, got [%v, %v]",
			cfg.domainMin, cfg.domainMax)
	}

	src := cfg.gradientImage
	var err error
	switch {
	case src != nil:
	case cfg.gradientStops != nil:
		src, err = GradientRowFromStops(cfg.gradientStops)
	default:
		src, err = LoadGradient(cfg.gradientName)
	}
	if err != nil {
		return nil, err
	}

	lut, err := BuildLUT(src, cfg.lutResolution)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		OutputWidth:   cfg.outW,
		OutputHeight:  cfg.outH,
		LUTResolution: cfg.lutResolution,
		DomainMin:     cfg.domainMin,
		DomainMax:     cfg.domainMax,
		Parallelism:   cfg.parallelism,
		lut:           lut,
	}, nil
}

// Render resamples a scalar grid to the configured output resolution
// and maps it through the color lookup table, returning a fresh RGBA
// pixel buffer. Safe to call concurrently; nothing is shared between
// calls except the read-only LUT and configuration.
func (r *Renderer) Render(g *Grid) (*imageutil.RGBAImage, error) {
	begin := time.Now()

	resampled, err := r.resampleToOutput(g)
	if err != nil {
		return nil, err
	}
	img, err := MapColors(resampled, r.lut, r.DomainMin, r.DomainMax)
	if err != nil {
		return nil, err
	}

	r.statsMu.Lock()
	r.renders++
	r.renderTime += time.Since(begin)
	r.statsMu.Unlock()
	return img, nil
}

// resampleToOutput runs the separable resampling passes with the
// renderer's worker configuration.
func (r *Renderer) resampleToOutput(g *Grid) (*Grid, error) {
	workers := r.Parallelism
	if workers < 1 {
		return Resample(g, r.OutputWidth, r.OutputHeight)
	}
	return resample(g, r.OutputWidth, r.OutputHeight, workers)
}

// LUT returns the renderer's color lookup table. The table is shared
// and must be treated as read-only.
func (r *Renderer) LUT() ColorLUT {
	return r.lut
}

// RenderStats returns the number of completed Render calls and the
// cumulative time spent in them.
func (r *Renderer) RenderStats() (renders int, total time.Duration) {
	r.statsMu.Lock()
	defer r.statsMu.Unlock()
	return r.renders, r.renderTime
}

// ResetStats resets the render counters.
func (r *Renderer) ResetStats() {
	r.statsMu.Lock()
	defer r.statsMu.Unlock()
	r.renders = 0
	r.renderTime = 0
}
