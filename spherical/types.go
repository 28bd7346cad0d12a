package spherical

// Harmonics is a set of real SH coefficients for bands 0..Levels().
//
// terms may be longer than TermCount(levels); the extra entries are kept
// but never read by Evaluate.
//
// A nil or zero-value Harmonics holds no terms and evaluates to 0.
type Harmonics struct {
	levels int
	terms  []float64
}

// empty reports whether h holds fewer terms than its levels need, which
// only happens for nil and zero values.
func (h *Harmonics) empty() bool {
	return h == nil || len(h.terms) < TermCount(h.levels)
}
