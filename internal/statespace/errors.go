package statespace

import (
	"errors"
	"fmt"

	"github.com/san-kum/linsim/internal/poly"
)

var (
	// ErrDivisionByZero indicates a denominator whose leading coefficient is zero.
	ErrDivisionByZero = fmt.Errorf("statespace: zero leading denominator coefficient: %w", poly.ErrDivisionByZero)

	// ErrDegenerateDenominator indicates a denominator of degree 0, which has no states.
	ErrDegenerateDenominator = errors.New("statespace: denominator degree must be at least 1")

	// ErrNotStrictlyProper indicates deg(num) >= deg(den).
	ErrNotStrictlyProper = errors.New("statespace: transfer function is not strictly proper")

	// ErrDimensionMismatch indicates state or input vectors that do not fit the model.
	ErrDimensionMismatch = errors.New("statespace: dimension mismatch")
)
