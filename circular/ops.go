package circular

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Rotate returns the expansion of f(θ - angle), i.e. f turned
// counter-clockwise by angle.
//
// Band 0 is copied unchanged. Each band n ≥ 1 is a 2D representation of the
// rotation group at frequency n, so its (x, y) pair is rotated by n·angle:
//
//	x' = x·cos(nθ) - y·sin(nθ)
//	y' = y·cos(nθ) + x·sin(nθ)
//
// Complexity: O(BandCount()).
func (h *Harmonics) Rotate(angle float64) *Harmonics {
	in := h.terms()
	out := &Harmonics{coeffs: make([]float64, len(in))}
	if len(in) == 0 {
		return out
	}
	out.coeffs[0] = in[0]
	for band := 1; band < h.BandCount(); band++ {
		s, c := math.Sincos(angle * float64(band))
		ci, si := BandTerms(band)
		x, y := in[ci], in[si]
		out.coeffs[ci] = x*c - y*s
		out.coeffs[si] = y*c + x*s
	}

	return out
}

// Add returns h + other, coefficient-wise. The shorter operand is treated
// as zero-padded, so the result has max(h.BandCount(), other.BandCount())
// bands. Neither operand is modified.
func (h *Harmonics) Add(other *Harmonics) *Harmonics {
	return combine(h, other, 1)
}

// Sub returns h - other with the same padding rule as Add.
func (h *Harmonics) Sub(other *Harmonics) *Harmonics {
	return combine(h, other, -1)
}

// combine computes a + sign·b over the zero-padded union of both vectors.
func combine(a, b *Harmonics, sign float64) *Harmonics {
	ac, bc := a.terms(), b.terms()
	out := make([]float64, max(len(ac), len(bc)))
	copy(out, ac)
	floats.AddScaled(out[:len(bc)], sign, bc)

	return &Harmonics{coeffs: out}
}
