package spherical

import "gonum.org/v1/gonum/spatial/r3"

// New returns a zeroed Harmonics holding TermCount(levels) terms.
//
// Errors:
//   - ErrUnsupportedLevel if levels is outside [0, 4].
func New(levels int) (*Harmonics, error) {
	if !validLevels(levels) {
		return nil, sphericalErrorf("New", ErrUnsupportedLevel)
	}

	return &Harmonics{levels: levels, terms: make([]float64, TermCount(levels))}, nil
}

// FromTerms builds a Harmonics over a copy of terms.
//
// Errors:
//   - ErrUnsupportedLevel if levels is outside [0, 4].
//   - ErrTermCount if len(terms) < TermCount(levels).
func FromTerms(levels int, terms []float64) (*Harmonics, error) {
	if !validLevels(levels) {
		return nil, sphericalErrorf("FromTerms", ErrUnsupportedLevel)
	}
	if len(terms) < TermCount(levels) {
		return nil, sphericalErrorf("FromTerms", ErrTermCount)
	}
	t := make([]float64, len(terms))
	copy(t, terms)

	return &Harmonics{levels: levels, terms: t}, nil
}

// Levels returns the highest band in use.
func (h *Harmonics) Levels() int {
	if h == nil {
		return 0
	}

	return h.levels
}

// Len returns the number of stored terms.
func (h *Harmonics) Len() int {
	if h == nil {
		return 0
	}

	return len(h.terms)
}

// Terms returns a copy of the stored terms.
func (h *Harmonics) Terms() []float64 {
	if h == nil {
		return []float64{}
	}
	out := make([]float64, len(h.terms))
	copy(out, h.terms)

	return out
}

// Term returns term i.
func (h *Harmonics) Term(i int) (float64, error) {
	if i < 0 || i >= h.Len() {
		return 0, sphericalErrorf("Term", ErrTermIndex)
	}

	return h.terms[i], nil
}

// SetTerm overwrites term i.
func (h *Harmonics) SetTerm(i int, v float64) error {
	if i < 0 || i >= h.Len() {
		return sphericalErrorf("SetTerm", ErrTermIndex)
	}
	h.terms[i] = v

	return nil
}

// Evaluate reconstructs the band-weighted value at direction:
//
//	Σ terms[i] · Basis(levels, direction)[i] · KernelWeight(BandOf(i))
//
// Only the first TermCount(Levels()) terms are read.
// Complexity: O(TermCount(Levels())).
func (h *Harmonics) Evaluate(direction r3.Vec) float64 {
	if h.empty() {
		return 0
	}
	var basis [TermCountMax]float64
	fillBasis(basis[:], h.levels, direction)

	var result float64
	for band := 0; band <= h.levels; band++ {
		w := KernelWeight(band)
		for i := TermCount(band - 1); i < TermCount(band); i++ {
			result += h.terms[i] * basis[i] * w
		}
	}

	return result
}
