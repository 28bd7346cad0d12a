package spherical

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/spatial/r3"
)

// Project computes the SH coefficients of f for bands 0..levels:
//
//	terms[i] = ∫ f(ω)·Y_i(ω) dω
//
// using a product rule: Gauss–Legendre over u = cos θ and a uniform
// (trapezoid) rule over φ. f is evaluated once per node. The returned
// coefficients are the raw projection; Evaluate on the result applies the
// irradiance weights on top.
//
// Errors:
//   - ErrUnsupportedLevel if levels is outside [0, 4].
//   - ErrNilFunc if f is nil.
func Project(levels int, f func(direction r3.Vec) float64, opts ...ProjectOption) (*Harmonics, error) {
	if f == nil {
		return nil, sphericalErrorf("Project", ErrNilFunc)
	}
	h, err := New(levels)
	if err != nil {
		return nil, sphericalErrorf("Project", err)
	}
	o := gatherProjectOptions(opts...)

	us := make([]float64, o.polar)
	uw := make([]float64, o.polar)
	quad.Legendre{}.FixedLocations(us, uw, -1, 1)
	step := 2 * math.Pi / float64(o.azimuth)

	basis := make([]float64, len(h.terms))
	for k, u := range us {
		r := math.Sqrt(math.Max(0, 1-u*u))
		for j := 0; j < o.azimuth; j++ {
			s, c := math.Sincos(float64(j) * step)
			dir := r3.Vec{X: r * c, Y: r * s, Z: u}
			fillBasis(basis, levels, dir)
			floats.AddScaled(h.terms, f(dir)*uw[k]*step, basis)
		}
	}

	return h, nil
}
