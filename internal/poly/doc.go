// Package poly implements exact arithmetic on real univariate polynomials.
//
// A [Poly] stores its coefficients in ascending power order, so the slice
// index of a coefficient is the power of the indeterminate it multiplies:
//
//	p(s) = c[0] + c[1]·s + c[2]·s² + …
//
// Values are immutable. Every operation returns a new, canonical polynomial
// in which the highest-order coefficient is nonzero, except for the zero
// polynomial, which is stored as the single coefficient 0 with degree 0.
//
// # Zero tests
//
// Two notions of "zero" coexist and are deliberately kept apart:
//
//   - [Poly.IsExactZero]: the canonical form is exactly [0]. Canonicalization
//     and the division-by-zero guard use this test.
//   - [Poly.IsZero] / [Poly.IsZeroWithin]: every coefficient is within a
//     tolerance of zero. Long division uses this as its early exit.
package poly
