package metrics

import (
	"math"

	"github.com/san-kum/linsim/internal/linalg"
)

// ControlEffort is the mean over samples of ‖u‖₁, which for the single
// input of a transfer function is the mean |u|.
type ControlEffort struct {
	total float64
	n     int
}

func NewControlEffort() *ControlEffort { return &ControlEffort{} }

func (c *ControlEffort) Name() string { return "control_effort" }

func (c *ControlEffort) Observe(x, u linalg.Vector, t float64) {
	c.total += l1(u)
	c.n++
}

func (c *ControlEffort) Value() float64 {
	if c.n == 0 {
		return 0
	}
	return c.total / float64(c.n)
}

func (c *ControlEffort) Reset() { c.total, c.n = 0, 0 }

func l1(v linalg.Vector) float64 {
	s := 0.0
	for _, x := range v {
		s += math.Abs(x)
	}
	return s
}
