package circular

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/integrate/quad"
)

// Project computes the coefficients of f over bandCount bands by numeric
// integration on [-π, π]:
//
//	c[i] = ∫ f(θ)·BasisValue(i, θ) dθ
//
// Each coefficient uses a fixed Gauss–Legendre rule (see
// WithQuadraturePoints). Discontinuous f converge slowly; prefer the
// analytic constructors (FromImpulse, FromPulse) when they apply.
//
// Errors:
//   - ErrBandCount if bandCount < 1.
//   - ErrNilFunc if f is nil.
func Project(bandCount int, f func(angle float64) float64, opts ...ProjectOption) (*Harmonics, error) {
	if f == nil {
		return nil, circularErrorf("Project", ErrNilFunc)
	}
	h, err := New(bandCount)
	if err != nil {
		return nil, circularErrorf("Project", err)
	}
	o := gatherProjectOptions(opts...)

	for i := range h.coeffs {
		term := i
		integrand := func(angle float64) float64 {
			return f(angle) * BasisValue(term, angle)
		}
		h.coeffs[i] = quad.Fixed(integrand, -math.Pi, math.Pi, o.points, quad.Legendre{}, o.concurrent)
	}

	return h, nil
}

// FromSamples projects N uniformly spaced samples, samples[j] = f(2πj/N),
// onto bandCount bands using a real FFT. The rectangle rule it implies is
// exact for band-limited f with fewer than N/2 bands.
//
// Errors:
//   - ErrBandCount if bandCount < 1.
//   - ErrTooFewSamples if len(samples) < 2·bandCount.
func FromSamples(bandCount int, samples []float64) (*Harmonics, error) {
	h, err := New(bandCount)
	if err != nil {
		return nil, circularErrorf("FromSamples", err)
	}
	n := len(samples)
	if n < 2*bandCount {
		return nil, circularErrorf("FromSamples", ErrTooFewSamples)
	}

	// Rfftf: Re(X_k) = Σ x_j cos(2πjk/N), Im(X_k) = -Σ x_j sin(2πjk/N).
	spectrum := fourier.NewFFT(n).Coefficients(nil, samples)
	step := 2 * math.Pi / float64(n)

	h.coeffs[0] = real(spectrum[0]) * step / sqrtTwoPi
	for band := 1; band < bandCount; band++ {
		ci, si := BandTerms(band)
		h.coeffs[ci] = real(spectrum[band]) * step / sqrtPi
		h.coeffs[si] = -imag(spectrum[band]) * step / sqrtPi
	}

	return h, nil
}
