package sampling

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SphereGrid returns w·h unit directions in row-major order (index y·w+x).
// Column x maps to azimuth θ = 2π·x/(w-1), row y to polar angle
// φ = π·y/(h-1), so the first and last rows are the poles and the first
// and last columns coincide.
//
// Errors:
//   - ErrBadResolution if w < 2 or h < 2.
func SphereGrid(w, h int) ([]r3.Vec, error) {
	if w < 2 || h < 2 {
		return nil, samplingErrorf("SphereGrid", ErrBadResolution)
	}
	dirs := make([]r3.Vec, 0, w*h)
	for y := 0; y < h; y++ {
		phi := math.Pi * float64(y) / float64(h-1)
		sp, cp := math.Sincos(phi)
		for x := 0; x < w; x++ {
			theta := 2 * math.Pi * float64(x) / float64(w-1)
			st, ct := math.Sincos(theta)
			dirs = append(dirs, r3.Vec{X: sp * ct, Y: sp * st, Z: cp})
		}
	}

	return dirs, nil
}

// RadialMesh displaces every SphereGrid direction v to v·radius·f(v) and
// triangulates the grid, two triangles per cell. Negative values of f
// land on the opposite side of the origin, as in a polar plot.
//
// Each triangle carries the unit normal (c-a)×(c-b); degenerate triangles
// (e.g. at the poles) get the zero vector.
//
// Errors:
//   - ErrNilFunc if f is nil.
//   - ErrBadResolution if w < 2 or h < 2.
func RadialMesh(f DirectionalFunc, w, h int, radius float64) ([]Triangle, error) {
	if f == nil {
		return nil, samplingErrorf("RadialMesh", ErrNilFunc)
	}
	dirs, err := SphereGrid(w, h)
	if err != nil {
		return nil, samplingErrorf("RadialMesh", err)
	}

	verts := make([]r3.Vec, len(dirs))
	for i, d := range dirs {
		verts[i] = r3.Scale(radius*f.Evaluate(d), d)
	}

	tris := make([]Triangle, 0, 2*(w-1)*(h-1))
	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			p0 := verts[y*w+x]
			p1 := verts[y*w+x+1]
			p2 := verts[(y+1)*w+x+1]
			p3 := verts[(y+1)*w+x]
			tris = append(tris, newTriangle(p0, p1, p2), newTriangle(p0, p2, p3))
		}
	}

	return tris, nil
}

func newTriangle(a, b, c r3.Vec) Triangle {
	n := r3.Cross(r3.Sub(c, a), r3.Sub(c, b))
	if r3.Norm2(n) > 0 {
		n = r3.Unit(n)
	}

	return Triangle{Vertices: [3]r3.Vec{a, b, c}, Normal: n}
}
