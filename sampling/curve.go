package sampling

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Layout constants of the polar and unwrapped pictures.
const (
	radialScale    = 1.5
	cartesianScale = 2.0
)

// EaseInOutSine eases x in [0, 1] with -(cos(πx) - 1)/2. Viewers feed it
// an oscillating wrap factor so the unwrap animation pauses at both ends.
func EaseInOutSine(x float64) float64 {
	return -(math.Cos(math.Pi*x) - 1) * 0.5
}

// Place maps a sample (angle, value) to a drawing position, blending the
// polar and cartesian layouts by wrap and scaling by zoom.
func Place(angle, value, wrap, zoom float64) Point {
	s, c := math.Sincos(angle)
	rx, ry := radialScale*value*c, radialScale*value*s
	cx, cy := angle-math.Pi, cartesianScale*value

	return Point{
		X: (rx*(1-wrap) + cx*wrap) * zoom,
		Y: (ry*(1-wrap) + cy*wrap) * zoom,
	}
}

// Curve samples f at n+1 evenly spaced angles over [0, 2π] (n from
// WithSamples) and places each sample with Place. The first and last
// points coincide in the polar layout, closing the curve.
//
// Errors:
//   - ErrNilFunc if f is nil.
func Curve(f AngularFunc, opts ...Option) ([]Point, error) {
	if f == nil {
		return nil, samplingErrorf("Curve", ErrNilFunc)
	}
	o := gatherOptions(opts...)

	angles := floats.Span(make([]float64, o.samples+1), 0, 2*math.Pi)
	points := make([]Point, len(angles))
	for i, a := range angles {
		d := f.Evaluate(a * o.angleMultiplier)
		points[i] = Place(a, d, o.wrap, o.zoom)
	}

	return points, nil
}

// Grid returns the polylines of a polar reference grid: gridSize+1 rings at
// radii 0, 1/gridSize, …, 1 followed by gridSize+1 spokes, all placed
// through the same wrap/zoom blend as Curve.
func Grid(opts ...Option) [][]Point {
	o := gatherOptions(opts...)
	n := o.gridSize * o.gridSubdivs
	lines := make([][]Point, 0, 2*(o.gridSize+1))

	for row := 0; row <= o.gridSize; row++ {
		r := float64(row) / float64(o.gridSize)
		angles := floats.Span(make([]float64, n), 0, 2*math.Pi)
		line := make([]Point, n)
		for i, a := range angles {
			line[i] = Place(a, r, o.wrap, o.zoom)
		}
		lines = append(lines, line)
	}

	for col := 0; col <= o.gridSize; col++ {
		a := float64(col) / float64(o.gridSize) * 2 * math.Pi
		radii := floats.Span(make([]float64, n), 0, 1)
		line := make([]Point, n)
		for i, r := range radii {
			line[i] = Place(a, r, o.wrap, o.zoom)
		}
		lines = append(lines, line)
	}

	return lines
}
