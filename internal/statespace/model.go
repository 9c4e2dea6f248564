// Package statespace converts transfer functions into state-space models.
//
// A model is the quadruple (A, B, C, D) of
//
//	x'(t) = A x(t) + B u(t)
//	y(t)  = C x(t) + D u(t)
//
// with n states, m inputs and p outputs. [Realize] produces the controllable
// companion form of a strictly proper single-input single-output transfer
// function, so m = p = 1.
package statespace

import (
	"fmt"

	"github.com/san-kum/linsim/internal/linalg"
	"gonum.org/v1/gonum/mat"
)

// Model holds A (n×n), B (n×m), C (p×n) and D (p×m).
type Model struct {
	A, B, C, D *linalg.Matrix
}

// Order returns the number of states n.
func (m *Model) Order() int { return m.A.Rows() }

// Inputs returns the number of inputs m.
func (m *Model) Inputs() int { return m.B.Cols() }

// Outputs returns the number of outputs p.
func (m *Model) Outputs() int { return m.C.Rows() }

// Validate checks that the four matrices have consistent shapes.
func (m *Model) Validate() error {
	n := m.A.Rows()
	switch {
	case m.A.Cols() != n:
		return fmt.Errorf("A is %dx%d, expected square: %w", n, m.A.Cols(), ErrDimensionMismatch)
	case m.B.Rows() != n:
		return fmt.Errorf("B has %d rows, expected %d: %w", m.B.Rows(), n, ErrDimensionMismatch)
	case m.C.Cols() != n:
		return fmt.Errorf("C has %d columns, expected %d: %w", m.C.Cols(), n, ErrDimensionMismatch)
	case m.D.Rows() != m.C.Rows() || m.D.Cols() != m.B.Cols():
		return fmt.Errorf("D is %dx%d, expected %dx%d: %w",
			m.D.Rows(), m.D.Cols(), m.C.Rows(), m.B.Cols(), ErrDimensionMismatch)
	}
	return nil
}

// Output evaluates the output equation y = C x + D u.
func (m *Model) Output(x, u linalg.Vector) (linalg.Vector, error) {
	if len(x) != m.Order() {
		return nil, fmt.Errorf("state has %d entries, expected %d: %w", len(x), m.Order(), ErrDimensionMismatch)
	}
	if len(u) != m.Inputs() {
		return nil, fmt.Errorf("input has %d entries, expected %d: %w", len(u), m.Inputs(), ErrDimensionMismatch)
	}

	out := make(linalg.Vector, m.Outputs())
	if len(out) == 0 {
		return out, nil
	}

	y := mat.NewVecDense(len(out), nil)
	if len(x) > 0 {
		y.MulVec(m.C.Dense(), mat.NewVecDense(len(x), x.Clone()))
	}
	if len(u) > 0 {
		var du mat.VecDense
		du.MulVec(m.D.Dense(), mat.NewVecDense(len(u), u.Clone()))
		y.AddVec(y, &du)
	}

	for i := range out {
		out[i] = y.AtVec(i)
	}
	return out, nil
}

// OutputSeries applies Output to each (state, input) pair.
func (m *Model) OutputSeries(states, inputs []linalg.Vector) ([]linalg.Vector, error) {
	if len(states) != len(inputs) {
		return nil, fmt.Errorf("%d states but %d inputs: %w", len(states), len(inputs), ErrDimensionMismatch)
	}
	ys := make([]linalg.Vector, len(states))
	for k := range states {
		y, err := m.Output(states[k], inputs[k])
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", k, err)
		}
		ys[k] = y
	}
	return ys, nil
}
