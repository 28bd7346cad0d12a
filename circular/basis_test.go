package circular_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/harmonics/circular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTermToBand checks the flat-index → band mapping for the first bands.
func TestTermToBand(t *testing.T) {
	want := []int{0, 1, 1, 2, 2, 3, 3, 4, 4}
	for term, band := range want {
		assert.Equal(t, band, circular.TermToBand(term), "term %d", term)
	}
}

// TestBandTerms verifies BandTerms is the inverse of TermToBand for n ≥ 1.
func TestBandTerms(t *testing.T) {
	for n := 1; n < 10; n++ {
		c, s := circular.BandTerms(n)
		assert.Equal(t, n, circular.TermToBand(c))
		assert.Equal(t, n, circular.TermToBand(s))
		assert.Equal(t, c+1, s)
	}
}

// TestBasisValue_Terms checks each term family at a few angles.
func TestBasisValue_Terms(t *testing.T) {
	for _, angle := range []float64{0, 0.3, 1, math.Pi, -2.5} {
		assert.InDelta(t, 1/math.Sqrt(2*math.Pi), circular.BasisValue(0, angle), 1e-15)
		assert.InDelta(t, math.Cos(angle)/math.Sqrt(math.Pi), circular.BasisValue(1, angle), 1e-15)
		assert.InDelta(t, math.Sin(angle)/math.Sqrt(math.Pi), circular.BasisValue(2, angle), 1e-15)
		assert.InDelta(t, math.Cos(3*angle)/math.Sqrt(math.Pi), circular.BasisValue(5, angle), 1e-15)
		assert.InDelta(t, math.Sin(3*angle)/math.Sqrt(math.Pi), circular.BasisValue(6, angle), 1e-15)
	}
}

// TestBasisIntegral_IsAntiderivative compares a central difference of
// BasisIntegral with BasisValue.
func TestBasisIntegral_IsAntiderivative(t *testing.T) {
	const h = 1e-5
	for term := 0; term < 11; term++ {
		for _, angle := range []float64{-3, -1.2, 0, 0.4, 2.2} {
			d := (circular.BasisIntegral(term, angle+h) - circular.BasisIntegral(term, angle-h)) / (2 * h)
			assert.InDelta(t, circular.BasisValue(term, angle), d, 1e-8, "term %d angle %v", term, angle)
		}
	}
}

// TestBasis_Orthonormal integrates products of basis terms over a full turn
// with a midpoint rule (exact for trigonometric polynomials of low degree).
func TestBasis_Orthonormal(t *testing.T) {
	const n = 512
	const terms = 9
	step := 2 * math.Pi / n
	for i := 0; i < terms; i++ {
		for j := 0; j < terms; j++ {
			var sum float64
			for k := 0; k < n; k++ {
				a := (float64(k) + 0.5) * step
				sum += circular.BasisValue(i, a) * circular.BasisValue(j, a) * step
			}
			want := 0.0
			if i == j {
				want = 1
			}
			require.InDelta(t, want, sum, 1e-12, "<%d,%d>", i, j)
		}
	}
}

// TestBasis_NegativeTermPanics documents the programmer-error contract.
func TestBasis_NegativeTermPanics(t *testing.T) {
	assert.Panics(t, func() { circular.BasisValue(-1, 0) })
	assert.Panics(t, func() { circular.BasisIntegral(-1, 0) })
}
