// Package circular represents functions on a circle as truncated real
// Fourier series ("circular harmonics").
//
// 🚀 What is a circular harmonic?
//
//	A function f(θ) on [0, 2π) is approximated by a small coefficient vector
//	over an orthonormal basis of constant, cosine and sine terms:
//	  • band 0:     1/√(2π)
//	  • band n ≥ 1: cos(nθ)/√π, sin(nθ)/√π
//
// Coefficient layout:
//
//	Band:         0 |   1    |   2    |   3    | ...
//	Coefficients: 0 | [1, 2] | [3, 4] | [5, 6] | ...
//
// A Harmonics with B bands therefore stores 2B-1 coefficients.
//
// ✨ Key features:
//   - Evaluate at any angle in O(B)
//   - Synthesis from an impulse (FromImpulse) or a centred box pulse (FromPulse)
//   - Exact rotation: band n's pair is rotated by n·θ
//   - Coefficient-wise Add/Sub with implicit zero padding
//   - Numeric projection of arbitrary functions (Project) or sampled
//     signals (FromSamples)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/harmonics/circular"
//
//	pulse, err := circular.FromPulse(20, math.Pi, 1.0)
//	if err != nil {
//	  // handle ErrBandCount
//	}
//	turned := pulse.Rotate(math.Pi / 2)
//	v := turned.Evaluate(math.Pi / 2) // ≈ 1
//
// Concurrency:
//
//	Evaluate, Rotate, Add and Sub only read their receiver and arguments;
//	one instance may be shared across goroutines as long as nobody calls
//	SetBand or SetBand0 at the same time.
//
// Harmonic convolution is not provided.
package circular
