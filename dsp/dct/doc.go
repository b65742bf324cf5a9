// Package dct computes the discrete cosine transform by reduction to a real
// FFT.
//
// Both directions operate in place on caller-owned vectors and are unscaled:
// Transform produces DCT-II coefficients, InverseTransform the DCT-III
// counterpart, and the pairing reproduces the input scaled by len/2 (use
// Normalize to compensate). Working buffers are drawn from a memory.Arena, so
// allocation failure surfaces as an explicit error and every buffer is
// released on every exit path.
package dct
