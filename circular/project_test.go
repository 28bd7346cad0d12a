package circular_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/harmonics/circular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProject_RecoversBandLimited projects an expansion's own evaluation and
// expects its coefficients back.
func TestProject_RecoversBandLimited(t *testing.T) {
	src := mustCoeffs(t, 0.5, 1, -0.25, 0.3, 0.8, -0.6, 0.1)
	got, err := circular.Project(4, src.Evaluate)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(src.Coefficients(), got.Coefficients(), approx))

	// Extra bands project to zero.
	wide, err := circular.Project(6, src.Evaluate, circular.WithConcurrency(4))
	require.NoError(t, err)
	want := append(src.Coefficients(), 0, 0, 0, 0)
	assert.Empty(t, cmp.Diff(want, wide.Coefficients(), approx))
}

// TestProject_MatchesAnalyticPulse cross-checks FromPulse against a numeric
// projection of the box it describes.
func TestProject_MatchesAnalyticPulse(t *testing.T) {
	const width = 2.0
	box := func(a float64) float64 {
		if math.Abs(a) < width/2 {
			return 1
		}
		return 0
	}
	analytic, err := circular.FromPulse(8, width, 1)
	require.NoError(t, err)
	numeric, err := circular.Project(8, box, circular.WithQuadraturePoints(2048))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(analytic.Coefficients(), numeric.Coefficients(), cmpopts.EquateApprox(0, 1e-2)))
}

// TestProject_Errors covers argument validation.
func TestProject_Errors(t *testing.T) {
	_, err := circular.Project(3, nil)
	assert.ErrorIs(t, err, circular.ErrNilFunc)
	_, err = circular.Project(0, math.Cos)
	assert.ErrorIs(t, err, circular.ErrBandCount)
	assert.Panics(t, func() { circular.WithQuadraturePoints(0) })
	assert.Panics(t, func() { circular.WithConcurrency(-1) })
}

// TestFromSamples_RecoversImpulse samples a band-limited impulse on a
// uniform grid and recovers its coefficients through the FFT.
func TestFromSamples_RecoversImpulse(t *testing.T) {
	src, err := circular.FromImpulse(6, 2.2, 0.9)
	require.NoError(t, err)
	for _, n := range []int{12, 33, 64} {
		samples := make([]float64, n)
		for j := range samples {
			samples[j] = src.Evaluate(2 * math.Pi * float64(j) / float64(n))
		}
		got, err := circular.FromSamples(6, samples)
		require.NoError(t, err)
		if diff := cmp.Diff(src.Coefficients(), got.Coefficients(), approx); diff != "" {
			t.Fatalf("n=%d: %s", n, diff)
		}
	}
}

// TestFromSamples_Errors covers undersampling and bad band counts.
func TestFromSamples_Errors(t *testing.T) {
	_, err := circular.FromSamples(4, make([]float64, 7))
	assert.ErrorIs(t, err, circular.ErrTooFewSamples)
	_, err = circular.FromSamples(0, make([]float64, 8))
	assert.ErrorIs(t, err, circular.ErrBandCount)
}
