package circular

// Harmonics is a truncated circular-harmonic expansion.
//
// Fields:
//   - coeffs: 2·BandCount()-1 coefficients; index 0 is band 0, band n ≥ 1
//     lives at (2n-1, 2n). The slice is owned by the value and never
//     shared with callers.
//
// Build one with New, FromCoefficients, FromImpulse, FromPulse, Project
// or FromSamples. A nil or zero-value Harmonics is the empty expansion: it
// has no bands, evaluates to 0 everywhere and acts as zero in Rotate, Add
// and Sub.
type Harmonics struct {
	coeffs []float64
}

// terms returns the coefficient slice, nil for a nil receiver.
func (h *Harmonics) terms() []float64 {
	if h == nil {
		return nil
	}

	return h.coeffs
}
