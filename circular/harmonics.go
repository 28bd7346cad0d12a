package circular

// New returns a Harmonics with bandCount bands and all coefficients zero.
//
// Errors:
//   - ErrBandCount if bandCount < 1.
func New(bandCount int) (*Harmonics, error) {
	if bandCount < 1 {
		return nil, circularErrorf("New", ErrBandCount)
	}

	return &Harmonics{coeffs: make([]float64, coeffCountFor(bandCount))}, nil
}

// FromCoefficients builds a Harmonics from a raw coefficient slice laid out
// as described in the package doc. The slice is copied.
//
// A single coefficient is a valid band-0-only expansion.
//
// Errors:
//   - ErrCoefficientCount if len(coeffs) is zero or even.
func FromCoefficients(coeffs []float64) (*Harmonics, error) {
	if len(coeffs) == 0 || len(coeffs)%2 == 0 {
		return nil, circularErrorf("FromCoefficients", ErrCoefficientCount)
	}
	c := make([]float64, len(coeffs))
	copy(c, coeffs)

	return &Harmonics{coeffs: c}, nil
}

// FromImpulse projects a Dirac-like impulse at angle onto bandCount bands.
// Coefficient i is strength·BasisValue(i, angle); strength scales the
// amplitude directly and is not energy-normalised.
//
// Errors:
//   - ErrBandCount if bandCount < 1.
func FromImpulse(bandCount int, angle, strength float64) (*Harmonics, error) {
	h, err := New(bandCount)
	if err != nil {
		return nil, circularErrorf("FromImpulse", err)
	}
	for i := range h.coeffs {
		h.coeffs[i] = strength * BasisValue(i, angle)
	}

	return h, nil
}

// FromPulse projects a unit-height box of angular width pulseWidth centred
// on angle 0 onto bandCount bands, scaled by strength:
//
//	c[i] = strength · (∫ basis_i over [-w/2, w/2])
//
// The projection is exact; only the truncation to bandCount bands loses
// detail (visible as Gibbs ringing at the edges).
//
// Errors:
//   - ErrBandCount if bandCount < 1.
func FromPulse(bandCount int, pulseWidth, strength float64) (*Harmonics, error) {
	h, err := New(bandCount)
	if err != nil {
		return nil, circularErrorf("FromPulse", err)
	}
	half := pulseWidth * 0.5
	for i := range h.coeffs {
		h.coeffs[i] = strength * (BasisIntegral(i, half) - BasisIntegral(i, -half))
	}

	return h, nil
}

// CoeffCount returns the number of stored coefficients (2·BandCount()-1).
func (h *Harmonics) CoeffCount() int {
	return len(h.terms())
}

// BandCount returns the number of bands, including band 0.
func (h *Harmonics) BandCount() int {
	return (len(h.terms()) + 1) / 2
}

// Coefficients returns a copy of the coefficient vector.
func (h *Harmonics) Coefficients() []float64 {
	out := make([]float64, len(h.terms()))
	copy(out, h.terms())

	return out
}

// Evaluate returns Σ c[i]·BasisValue(i, angle).
// Complexity: O(BandCount()).
func (h *Harmonics) Evaluate(angle float64) float64 {
	var accum float64
	for i, v := range h.terms() {
		accum += v * BasisValue(i, angle)
	}

	return accum
}

// Band returns the (cosine, sine) coefficient pair of band n.
//
// Errors:
//   - ErrBandZero if n == 0.
//   - ErrBandOutOfRange if n < 0 or n >= BandCount().
func (h *Harmonics) Band(n int) (a, b float64, err error) {
	if err = h.checkBand(n); err != nil {
		return 0, 0, circularErrorf("Band", err)
	}
	ci, si := BandTerms(n)

	return h.coeffs[ci], h.coeffs[si], nil
}

// SetBand overwrites the (cosine, sine) pair of band n.
// Same index rules as Band.
func (h *Harmonics) SetBand(n int, a, b float64) error {
	if err := h.checkBand(n); err != nil {
		return circularErrorf("SetBand", err)
	}
	ci, si := BandTerms(n)
	h.coeffs[ci], h.coeffs[si] = a, b

	return nil
}

// Band0 returns the DC coefficient, 0 for the empty expansion.
func (h *Harmonics) Band0() float64 {
	if len(h.terms()) == 0 {
		return 0
	}

	return h.coeffs[0]
}

// SetBand0 overwrites the DC coefficient. On a zero-value Harmonics it
// allocates band 0. h must not be nil.
func (h *Harmonics) SetBand0(v float64) {
	if len(h.coeffs) == 0 {
		h.coeffs = make([]float64, 1)
	}
	h.coeffs[0] = v
}

// checkBand keeps the "band 0 is special" rule in one place.
func (h *Harmonics) checkBand(n int) error {
	if n == 0 {
		return ErrBandZero
	}
	if n < 0 || n >= h.BandCount() {
		return ErrBandOutOfRange
	}

	return nil
}
