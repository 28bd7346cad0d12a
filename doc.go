// Package harmonics is a small toolkit for approximating functions on a
// circle and on a sphere with compact harmonic expansions.
//
// 🚀 What's inside?
//
//	circular/   truncated real Fourier series ("circular harmonics"):
//	            impulse & box-pulse synthesis, exact rotation, add/sub,
//	            numeric and FFT projection
//	spherical/  real spherical harmonics up to band 4 and irradiance-style
//	            band-weighted reconstruction
//	sampling/   polar curves, polar grids and radial sphere meshes built
//	            from any Evaluate-able function
//
// ✨ Why?
//
//   - A handful of coefficients describes a smooth directional signal
//   - Rotation and mixing act on coefficients, not on samples
//   - Pure Go on top of gonum; no cgo
//
// Quick example:
//
//	pulse, _ := circular.FromPulse(20, math.Pi, 1)
//	pts, _ := sampling.Curve(pulse.Rotate(math.Pi/2), sampling.WithZoom(200))
//
// See each package's example_test.go and examples/ for runnable programs.
package harmonics
