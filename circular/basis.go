package circular

import "math"

// Normalisation constants of the basis.
var (
	sqrtPi    = math.Sqrt(math.Pi)
	sqrtTwoPi = math.Sqrt(2 * math.Pi)
)

// TermToBand maps a flat coefficient index to the band it belongs to.
//
//	term: 0 1 2 3 4 5 6 ...
//	band: 0 1 1 2 2 3 3 ...
func TermToBand(term int) int {
	return (term + 1) / 2
}

// BandTerms returns the coefficient indices of band n (n >= 1): the cosine
// term at 2n-1 and the sine term at 2n.
func BandTerms(n int) (cos, sin int) {
	return 2*n - 1, 2 * n
}

// coeffCountFor returns 2·bands-1.
func coeffCountFor(bands int) int {
	return 2*bands - 1
}

// isCosineTerm reports whether term is the cosine half of a band.
func isCosineTerm(term int) bool {
	return term%2 != 0
}

// BasisValue evaluates basis term `term` at angle.
//
//	term 0     → 1/√(2π)
//	odd term   → cos(angle·band)/√π
//	even term  → sin(angle·band)/√π
//
// Panics on a negative term.
func BasisValue(term int, angle float64) float64 {
	if term < 0 {
		panic("circular: negative basis term")
	}
	if term == 0 {
		return 1 / sqrtTwoPi
	}
	band := float64(TermToBand(term))
	if isCosineTerm(term) {
		return math.Cos(angle*band) / sqrtPi
	}

	return math.Sin(angle*band) / sqrtPi
}

// BasisIntegral returns the antiderivative of BasisValue(term, ·) at angle.
// The difference of two calls gives the projection of a unit box onto the term.
//
//	term 0     → angle/√(2π)
//	odd term   → sin(angle·band)/(band·√π)
//	even term  → -cos(angle·band)/(band·√π)
//
// Panics on a negative term.
func BasisIntegral(term int, angle float64) float64 {
	if term < 0 {
		panic("circular: negative basis term")
	}
	if term == 0 {
		return angle / sqrtTwoPi
	}
	band := float64(TermToBand(term))
	if isCosineTerm(term) {
		return math.Sin(angle*band) / (band * sqrtPi)
	}

	return -math.Cos(angle*band) / (band * sqrtPi)
}
