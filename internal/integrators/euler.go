// Package integrators provides fixed-step steppers for sim.Dynamics.
package integrators

import (
	"github.com/san-kum/linsim/internal/linalg"
	"github.com/san-kum/linsim/internal/sim"
)

// Euler is the explicit first-order update x + dt·f(x, u, t).
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn sim.Dynamics, x, u linalg.Vector, t, dt float64) (linalg.Vector, error) {
	dx, err := dyn.Derivative(x, u, t)
	if err != nil {
		return nil, err
	}
	return linalg.AddVec(x, linalg.ScaleVec(dx, dt))
}
