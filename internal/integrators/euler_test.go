package integrators

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/linsim/internal/linalg"
	"github.com/san-kum/linsim/internal/sim"
)

type harmonicOscillator struct{}

func (h *harmonicOscillator) StateDim() int { return 2 }
func (h *harmonicOscillator) InputDim() int { return 0 }

func (h *harmonicOscillator) Derivative(x, u linalg.Vector, t float64) (linalg.Vector, error) {
	return linalg.Vector{x[1], -x[0]}, nil
}

func TestEulerStep(t *testing.T) {
	integ := NewEuler()
	x := linalg.Vector{1.0, 0.5}

	got, err := integ.Step(&harmonicOscillator{}, x, nil, 0, 0.1)
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}

	if math.Abs(got[0]-1.05) > 1e-12 || math.Abs(got[1]-0.4) > 1e-12 {
		t.Errorf("expected [1.05 0.4], got %v", got)
	}
	if x[0] != 1.0 || x[1] != 0.5 {
		t.Error("Step mutated its input state")
	}
}

func TestEulerFirstOrderConvergence(t *testing.T) {
	// x' = -x from x(0)=1 to t=1; halving dt should roughly halve the error.
	a, _ := linalg.FromRows([][]float64{{-1}})
	b, _ := linalg.FromRows([][]float64{{0}})
	sys, err := sim.NewLinearSystem(a, b)
	if err != nil {
		t.Fatalf("system: %v", err)
	}

	integ := NewEuler()
	errAt := func(n int) float64 {
		dt := 1.0 / float64(n)
		x := linalg.Vector{1}
		for i := 0; i < n; i++ {
			x, err = integ.Step(sys, x, linalg.Vector{0}, float64(i)*dt, dt)
			if err != nil {
				t.Fatalf("step failed: %v", err)
			}
		}
		return math.Abs(x[0] - math.Exp(-1))
	}

	e1 := errAt(100)
	e2 := errAt(200)
	ratio := e1 / e2
	if ratio < 1.8 || ratio > 2.2 {
		t.Errorf("expected first-order error ratio ~2, got %.3f (%.2e / %.2e)", ratio, e1, e2)
	}
}

func TestEulerPropagatesDimensionErrors(t *testing.T) {
	a, _ := linalg.FromRows([][]float64{{0, 1}, {-1, 0}})
	b, _ := linalg.FromRows([][]float64{{0}, {1}})
	sys, err := sim.NewLinearSystem(a, b)
	if err != nil {
		t.Fatalf("system: %v", err)
	}

	_, err = NewEuler().Step(sys, linalg.Vector{1, 0}, linalg.Vector{1, 1}, 0, 0.1)
	if !errors.Is(err, linalg.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}
