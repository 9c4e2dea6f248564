package sim

import (
	"fmt"

	"github.com/san-kum/linsim/internal/linalg"
)

// LinearSystem is x' = A x + B u.
type LinearSystem struct {
	A, B *linalg.Matrix
}

// NewLinearSystem checks that A is square and B has as many rows as A.
func NewLinearSystem(a, b *linalg.Matrix) (*LinearSystem, error) {
	if a.Rows() != a.Cols() {
		return nil, fmt.Errorf("A is %dx%d, expected square: %w", a.Rows(), a.Cols(), ErrDimensionMismatch)
	}
	if b.Rows() != a.Rows() {
		return nil, fmt.Errorf("B has %d rows, A has %d: %w", b.Rows(), a.Rows(), ErrDimensionMismatch)
	}
	return &LinearSystem{A: a, B: b}, nil
}

func (l *LinearSystem) StateDim() int { return l.A.Rows() }
func (l *LinearSystem) InputDim() int { return l.B.Cols() }

func (l *LinearSystem) Derivative(x, u linalg.Vector, t float64) (linalg.Vector, error) {
	ax, err := linalg.MatVec(l.A, x)
	if err != nil {
		return nil, fmt.Errorf("A·x: %w", err)
	}
	bu, err := linalg.MatVec(l.B, u)
	if err != nil {
		return nil, fmt.Errorf("B·u: %w", err)
	}
	return linalg.AddVec(ax, bu)
}
