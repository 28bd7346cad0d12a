package sampling_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/harmonics/sampling"
	"github.com/katalvlaran/harmonics/spherical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// TestSphereGrid_UnitAndPoles checks size, unit length and pole rows.
func TestSphereGrid_UnitAndPoles(t *testing.T) {
	const w, h = 9, 7
	dirs, err := sampling.SphereGrid(w, h)
	require.NoError(t, err)
	require.Len(t, dirs, w*h)
	for _, d := range dirs {
		assert.InDelta(t, 1, r3.Norm(d), 1e-12)
	}
	assert.InDelta(t, 1, dirs[0].Z, 1e-12, "first row is +Z")
	assert.InDelta(t, -1, dirs[w*h-1].Z, 1e-12, "last row is -Z")

	// Both hemispheres are covered.
	var above, below int
	for _, d := range dirs {
		if d.Z > 0.1 {
			above++
		}
		if d.Z < -0.1 {
			below++
		}
	}
	assert.Equal(t, above, below)
	assert.Positive(t, above)
}

// TestSphereGrid_BadResolution rejects degenerate grids.
func TestSphereGrid_BadResolution(t *testing.T) {
	_, err := sampling.SphereGrid(1, 5)
	assert.ErrorIs(t, err, sampling.ErrBadResolution)
	_, err = sampling.SphereGrid(5, 1)
	assert.ErrorIs(t, err, sampling.ErrBadResolution)
}

// TestRadialMesh_DC: a DC-only expansion yields a sphere of radius
// radius·√π/2 (its Evaluate value).
func TestRadialMesh_DC(t *testing.T) {
	h, err := spherical.FromTerms(0, []float64{1})
	require.NoError(t, err)
	const w, hh = 12, 8
	tris, err := sampling.RadialMesh(h, w, hh, 2)
	require.NoError(t, err)
	require.Len(t, tris, 2*(w-1)*(hh-1))

	want := 2 * math.Sqrt(math.Pi) / 2
	for _, tri := range tris {
		for _, v := range tri.Vertices {
			assert.InDelta(t, want, r3.Norm(v), 1e-9)
		}
		n := r3.Norm(tri.Normal)
		assert.True(t, n == 0 || math.Abs(n-1) < 1e-9, "normal must be unit or zero, got %v", n)
	}
}

// TestRadialMesh_Errors covers nil function and bad sizes.
func TestRadialMesh_Errors(t *testing.T) {
	_, err := sampling.RadialMesh(nil, 4, 4, 1)
	assert.ErrorIs(t, err, sampling.ErrNilFunc)
	h, err := spherical.New(1)
	require.NoError(t, err)
	_, err = sampling.RadialMesh(h, 1, 4, 1)
	assert.ErrorIs(t, err, sampling.ErrBadResolution)
}

// TestRadialMesh_TypedNilHarmonics: a nil *spherical.Harmonics collapses the
// mesh onto the origin with zero normals.
func TestRadialMesh_TypedNilHarmonics(t *testing.T) {
	tris, err := sampling.RadialMesh((*spherical.Harmonics)(nil), 4, 3, 1)
	require.NoError(t, err)
	require.Len(t, tris, 2*3*2)
	for _, tr := range tris {
		assert.Equal(t, [3]r3.Vec{}, tr.Vertices)
		assert.Equal(t, r3.Vec{}, tr.Normal)
	}
}
