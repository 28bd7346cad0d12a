package spherical

// Projection defaults. 16 Gauss–Legendre nodes in cos θ and 32 uniform
// azimuth steps integrate products of two band-4 terms exactly.
const (
	DefaultPolarPoints   = 16
	DefaultAzimuthPoints = 32
)

const (
	panicPolarPointsInvalid   = "spherical: WithPolarPoints: n must be >= 1"
	panicAzimuthPointsInvalid = "spherical: WithAzimuthPoints: n must be >= 1"
)

// ProjectOption configures Project.
type ProjectOption func(*projectOptions)

type projectOptions struct {
	polar   int
	azimuth int
}

// WithPolarPoints sets the number of Gauss–Legendre nodes over cos θ.
// Panics if n < 1.
func WithPolarPoints(n int) ProjectOption {
	if n < 1 {
		panic(panicPolarPointsInvalid)
	}

	return func(o *projectOptions) { o.polar = n }
}

// WithAzimuthPoints sets the number of uniform steps over φ.
// Panics if n < 1.
func WithAzimuthPoints(n int) ProjectOption {
	if n < 1 {
		panic(panicAzimuthPointsInvalid)
	}

	return func(o *projectOptions) { o.azimuth = n }
}

func gatherProjectOptions(opts ...ProjectOption) projectOptions {
	o := projectOptions{polar: DefaultPolarPoints, azimuth: DefaultAzimuthPoints}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
