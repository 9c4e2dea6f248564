// Package tf models single-input single-output linear systems as rational
// transfer functions num(s)/den(s), and their differential-equation view.
package tf

import (
	"errors"
	"fmt"

	"github.com/san-kum/linsim/internal/poly"
)

// ErrPole is returned by Eval when s is a root of the denominator.
var ErrPole = errors.New("tf: evaluation at a pole")

// TransferFunction is the ratio Num(s)/Den(s). It places no constraint on the
// relative degree; realization checks that separately.
type TransferFunction struct {
	Num poly.Poly
	Den poly.Poly
}

// New builds a transfer function from ascending-power coefficient lists.
func New(num, den []float64) TransferFunction {
	return TransferFunction{
		Num: poly.New(num...),
		Den: poly.New(den...),
	}
}

// Multiply returns the series connection a·b.
func Multiply(a, b TransferFunction) TransferFunction {
	return TransferFunction{
		Num: a.Num.Multiply(b.Num),
		Den: a.Den.Multiply(b.Den),
	}
}

// Add returns the parallel connection a + b over the common denominator
// a.Den·b.Den. No cancellation is attempted.
func Add(a, b TransferFunction) TransferFunction {
	return TransferFunction{
		Num: a.Num.Multiply(b.Den).Add(b.Num.Multiply(a.Den)),
		Den: a.Den.Multiply(b.Den),
	}
}

// Order is the denominator degree.
func (t TransferFunction) Order() int {
	return t.Den.Degree()
}

// RelativeDegree returns deg(Den) - deg(Num).
func (t TransferFunction) RelativeDegree() int {
	return t.Den.Degree() - t.Num.Degree()
}

// IsStrictlyProper reports whether deg(Num) < deg(Den).
func (t TransferFunction) IsStrictlyProper() bool {
	return t.RelativeDegree() > 0
}

// DCGain returns Num(0)/Den(0).
func (t TransferFunction) DCGain() (float64, error) {
	return t.Eval(0)
}

// Eval evaluates the transfer function at a real s.
func (t TransferFunction) Eval(s float64) (float64, error) {
	d := t.Den.Eval(s)
	if d == 0 {
		return 0, fmt.Errorf("s=%g: %w", s, ErrPole)
	}
	return t.Num.Eval(s) / d, nil
}

// LinearODE is the differential-equation view of a transfer function:
//
//	Outputs(d/dt) y = Inputs(d/dt) u
//
// where Outputs is the denominator and Inputs the numerator.
type LinearODE struct {
	Outputs poly.Poly
	Inputs  poly.Poly
}

// ODE relabels t as a linear ODE.
func (t TransferFunction) ODE() LinearODE {
	return LinearODE{Outputs: t.Den, Inputs: t.Num}
}

// FromODE is the inverse of TransferFunction.ODE.
func FromODE(o LinearODE) TransferFunction {
	return TransferFunction{Num: o.Inputs, Den: o.Outputs}
}

// Order is the highest derivative of the output.
func (o LinearODE) Order() int {
	return o.Outputs.Degree()
}

// TransferFunction is the inverse of TransferFunction.ODE.
func (o LinearODE) TransferFunction() TransferFunction {
	return FromODE(o)
}
