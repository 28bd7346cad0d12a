// Package sampling turns harmonic expansions into drawable geometry:
// polar curves for circular harmonics and radial meshes for spherical
// harmonics.
//
// The package only calls Evaluate; it never looks at coefficients, so any
// AngularFunc or DirectionalFunc can be sampled.
//
// Polar curves can be "unwrapped": with wrap = 0 a sample (θ, d) is drawn
// at radius 1.5·d along θ; with wrap = 1 it is drawn on a cartesian plot at
// (θ-π, 2·d). Values in between blend linearly, which lets a viewer animate
// from the circular picture to the familiar Fourier-series plot.
package sampling
