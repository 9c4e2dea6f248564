package metrics

import "github.com/san-kum/linsim/internal/linalg"

// Energy is the mean quadratic state energy ½‖x‖² over the observed samples.
type Energy struct {
	name        string
	samples     int
	totalEnergy float64
}

func NewEnergy() *Energy {
	return &Energy{name: "energy"}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(x, u linalg.Vector, t float64) {
	n := x.Norm()
	e.totalEnergy += 0.5 * n * n
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.totalEnergy / float64(e.samples)
}

func (e *Energy) Reset() {
	e.totalEnergy = 0
	e.samples = 0
}
