package sampling

import "gonum.org/v1/gonum/spatial/r3"

// AngularFunc is a function on the circle, e.g. *circular.Harmonics.
type AngularFunc interface {
	Evaluate(angle float64) float64
}

// DirectionalFunc is a function on the unit sphere, e.g. *spherical.Harmonics.
type DirectionalFunc interface {
	Evaluate(direction r3.Vec) float64
}

// Point is a 2D drawing position.
type Point struct {
	X, Y float64
}

// Triangle is one face of a radial mesh with its unit normal.
type Triangle struct {
	Vertices [3]r3.Vec
	Normal   r3.Vec
}
