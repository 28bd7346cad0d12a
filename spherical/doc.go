// Package spherical evaluates real spherical harmonics up to band 4 and
// reconstructs band-weighted (irradiance-style) values from SH coefficients.
//
// Term order (25 terms for levels = 4):
//
//	band 0: 0
//	band 1: 1 2 3
//	band 2: 4 5 6 7 8
//	band 3: 9 … 15
//	band 4: 16 … 24
//
// The order and normalisation constants of Basis are part of the public
// contract: coefficient vectors produced elsewhere index into it.
//
// Evaluate applies the cosine-lobe convolution weights of Ramamoorthi and
// Hanrahan ("An Efficient Representation for Irradiance Environment Maps",
// eq. 8) per band before summing.
//
// Directions are r3.Vec values from gonum and must be unit length; they are
// not renormalised.
package spherical
