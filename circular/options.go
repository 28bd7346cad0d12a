package circular

// Defaults for numeric projection.
const (
	// DefaultQuadraturePoints is the Gauss–Legendre order used by Project.
	// It integrates band products exactly well past 32 bands for smooth f.
	DefaultQuadraturePoints = 256

	// DefaultConcurrency evaluates f serially.
	DefaultConcurrency = 0
)

const (
	panicQuadraturePointsInvalid = "circular: WithQuadraturePoints: n must be >= 1"
	panicConcurrencyInvalid      = "circular: WithConcurrency: n must be >= 0"
)

// ProjectOption configures Project.
type ProjectOption func(*projectOptions)

type projectOptions struct {
	points     int
	concurrent int
}

// WithQuadraturePoints sets the number of Gauss–Legendre nodes per
// interval. Panics if n < 1.
func WithQuadraturePoints(n int) ProjectOption {
	if n < 1 {
		panic(panicQuadraturePointsInvalid)
	}

	return func(o *projectOptions) { o.points = n }
}

// WithConcurrency allows f to be evaluated by up to n goroutines at once.
// f must then be safe for concurrent use. Panics if n < 0.
func WithConcurrency(n int) ProjectOption {
	if n < 0 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *projectOptions) { o.concurrent = n }
}

func gatherProjectOptions(opts ...ProjectOption) projectOptions {
	o := projectOptions{
		points:     DefaultQuadraturePoints,
		concurrent: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
