package statespace

import (
	"fmt"

	"github.com/san-kum/linsim/internal/linalg"
	"github.com/san-kum/linsim/internal/tf"
)

// Realize returns the controllable companion-form realization of g.
//
// With n = deg(den) and a = den coefficients:
//
//	A: ones on the super-diagonal, last row -a[j]/a[n]
//	B: zero except B[n-1] = 1/a[n]
//	C: num coefficients, zero padded to n
//	D: 0
//
// The denominator must have degree at least 1 and g must be strictly proper.
func Realize(g tf.TransferFunction) (*Model, error) {
	n := g.Den.Degree()
	if n < 1 {
		return nil, ErrDegenerateDenominator
	}
	lead := g.Den.LeadingCoeff()
	if lead == 0 {
		return nil, ErrDivisionByZero
	}
	if g.Num.Degree() >= n {
		return nil, fmt.Errorf("deg(num)=%d, deg(den)=%d: %w", g.Num.Degree(), n, ErrNotStrictlyProper)
	}

	a := linalg.NewMatrix(n, n)
	if n > 1 {
		if err := a.WriteDiagonal(1, 1); err != nil {
			return nil, err
		}
	}
	for j := 0; j < n; j++ {
		if c := g.Den.Coeff(j); c != 0 {
			a.Set(n-1, j, -c/lead)
		}
	}

	b := linalg.NewMatrix(n, 1)
	b.Set(n-1, 0, 1/lead)

	c := linalg.NewMatrix(1, n)
	for j := 0; j < n; j++ {
		c.Set(0, j, g.Num.Coeff(j))
	}

	d := linalg.NewMatrix(1, 1)

	return &Model{A: a, B: b, C: c, D: d}, nil
}

// RealizeODE realizes the transfer function behind a linear ODE.
func RealizeODE(o tf.LinearODE) (*Model, error) {
	return Realize(o.TransferFunction())
}
