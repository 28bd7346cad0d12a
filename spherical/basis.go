package spherical

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// MaxLevel is the highest supported band.
	MaxLevel = 4

	// TermCountMax is the term count at MaxLevel.
	TermCountMax = (MaxLevel + 1) * (MaxLevel + 1)
)

// TermCount returns (levels+1)², the number of terms bands 0..levels hold.
func TermCount(levels int) int {
	return (levels + 1) * (levels + 1)
}

// BandOf returns the band a flat term index belongs to.
// Panics on a negative term.
func BandOf(term int) int {
	if term < 0 {
		panic("spherical: negative term index")
	}
	band := 0
	for TermCount(band) <= term {
		band++
	}

	return band
}

func validLevels(levels int) bool {
	return levels >= 0 && levels <= MaxLevel
}

// Basis evaluates the real SH basis for bands 0..levels at direction p and
// returns TermCount(levels) values.
//
// x and y are negated before evaluation; z is used as is. p is assumed to
// be unit length.
//
// Errors:
//   - ErrUnsupportedLevel if levels is outside [0, 4].
func Basis(levels int, p r3.Vec) ([]float64, error) {
	if !validLevels(levels) {
		return nil, sphericalErrorf("Basis", ErrUnsupportedLevel)
	}
	out := make([]float64, TermCount(levels))
	fillBasis(out, levels, p)

	return out, nil
}

// fillBasis writes TermCount(levels) values into dst. Table from Probulator
// (kayru/Probulator, SphericalHarmonics.h).
func fillBasis(dst []float64, levels int, p r3.Vec) {
	x, y, z := -p.X, -p.Y, p.Z

	x2, y2, z2 := x*x, y*y, z*z
	z3 := z2 * z
	x4, y4, z4 := x2*x2, y2*y2, z2*z2

	pi := math.Pi
	sqrtPi := math.Sqrt(pi)
	sqrt := math.Sqrt

	dst[0] = 1 / (2 * sqrtPi)

	if levels >= 1 {
		dst[1] = -sqrt(3/(4*pi)) * y
		dst[2] = sqrt(3/(4*pi)) * z
		dst[3] = -sqrt(3/(4*pi)) * x
	}

	if levels >= 2 {
		dst[4] = sqrt(15/(4*pi)) * y * x
		dst[5] = -sqrt(15/(4*pi)) * y * z
		dst[6] = sqrt(5/(16*pi)) * (3*z2 - 1)
		dst[7] = -sqrt(15/(4*pi)) * x * z
		dst[8] = sqrt(15/(16*pi)) * (x2 - y2)
	}

	if levels >= 3 {
		dst[9] = -sqrt(70/(64*pi)) * y * (3*x2 - y2)
		dst[10] = sqrt(105/(4*pi)) * y * x * z
		dst[11] = -sqrt(42/(64*pi)) * y * (-1 + 5*z2)
		dst[12] = sqrt(7/(16*pi)) * (5*z3 - 3*z)
		dst[13] = -sqrt(42/(64*pi)) * x * (-1 + 5*z2)
		dst[14] = sqrt(105/(16*pi)) * (x2 - y2) * z
		dst[15] = -sqrt(70/(64*pi)) * x * (x2 - 3*y2)
	}

	if levels >= 4 {
		dst[16] = 3 * sqrt(35/(16*pi)) * x * y * (x2 - y2)
		dst[17] = -3 * sqrt(70/(64*pi)) * y * z * (3*x2 - y2)
		dst[18] = 3 * sqrt(5/(16*pi)) * y * x * (-1 + 7*z2)
		dst[19] = -3 * sqrt(10/(64*pi)) * y * z * (-3 + 7*z2)
		dst[20] = (105*z4 - 90*z2 + 9) / (16 * sqrtPi)
		dst[21] = -3 * sqrt(10/(64*pi)) * x * z * (-3 + 7*z2)
		dst[22] = 3 * sqrt(5/(64*pi)) * (x2 - y2) * (-1 + 7*z2)
		dst[23] = -3 * sqrt(70/(64*pi)) * x * z * (x2 - 3*y2)
		dst[24] = 3 * sqrt(35/(4*(64*pi))) * (x4 - 6*y2*x2 + y4)
	}
}
