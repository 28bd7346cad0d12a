package sampling

import "math"

// Curve defaults.
const (
	// DefaultSamples is the number of segments along a curve.
	DefaultSamples = 1000

	// DefaultZoom scales layout units to drawing units.
	DefaultZoom = 1.0

	// DefaultWrap draws the polar picture.
	DefaultWrap = 0.0

	// DefaultAngleMultiplier evaluates f at the plotted angle.
	DefaultAngleMultiplier = 1.0

	// DefaultGridSize is the number of rings and spokes of a polar grid.
	DefaultGridSize = 10

	// DefaultGridSubdivisions is the number of points per grid cell.
	DefaultGridSubdivisions = 15
)

const (
	panicSamplesInvalid = "sampling: WithSamples: n must be >= 1"
	panicWrapInvalid    = "sampling: WithWrap: wrap must be in [0, 1]"
	panicZoomInvalid    = "sampling: WithZoom: zoom must be finite"
	panicMultInvalid    = "sampling: WithAngleMultiplier: multiplier must be finite"
	panicGridInvalid    = "sampling: WithGrid: size and subdivisions must be >= 1 with at least 2 points per line"
)

// Option configures curve and grid sampling.
type Option func(*options)

type options struct {
	samples         int
	zoom            float64
	wrap            float64
	angleMultiplier float64
	gridSize        int
	gridSubdivs     int
}

// WithSamples sets the number of curve segments (n+1 points are produced).
func WithSamples(n int) Option {
	if n < 1 {
		panic(panicSamplesInvalid)
	}

	return func(o *options) { o.samples = n }
}

// WithWrap sets the polar↔cartesian blend factor in [0, 1].
func WithWrap(wrap float64) Option {
	if math.IsNaN(wrap) || wrap < 0 || wrap > 1 {
		panic(panicWrapInvalid)
	}

	return func(o *options) { o.wrap = wrap }
}

// WithZoom scales the produced points.
func WithZoom(zoom float64) Option {
	if math.IsNaN(zoom) || math.IsInf(zoom, 0) {
		panic(panicZoomInvalid)
	}

	return func(o *options) { o.zoom = zoom }
}

// WithAngleMultiplier evaluates f at angle·m while plotting at angle,
// stretching band n over 1/m of the circle.
func WithAngleMultiplier(m float64) Option {
	if math.IsNaN(m) || math.IsInf(m, 0) {
		panic(panicMultInvalid)
	}

	return func(o *options) { o.angleMultiplier = m }
}

// WithGrid sets the ring/spoke count and points per cell of Grid.
func WithGrid(size, subdivisions int) Option {
	if size < 1 || subdivisions < 1 || size*subdivisions < 2 {
		panic(panicGridInvalid)
	}

	return func(o *options) {
		o.gridSize = size
		o.gridSubdivs = subdivisions
	}
}

func gatherOptions(opts ...Option) options {
	o := options{
		samples:         DefaultSamples,
		zoom:            DefaultZoom,
		wrap:            DefaultWrap,
		angleMultiplier: DefaultAngleMultiplier,
		gridSize:        DefaultGridSize,
		gridSubdivs:     DefaultGridSubdivisions,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
