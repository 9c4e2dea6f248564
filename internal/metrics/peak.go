package metrics

import (
	"math"

	"github.com/san-kum/linsim/internal/linalg"
)

// Peak is the largest absolute state component seen.
type Peak struct {
	peak float64
}

func NewPeak() *Peak { return &Peak{} }

func (p *Peak) Name() string { return "peak" }

func (p *Peak) Observe(x, u linalg.Vector, t float64) {
	for _, v := range x {
		if a := math.Abs(v); a > p.peak {
			p.peak = a
		}
	}
}

func (p *Peak) Value() float64 { return p.peak }

func (p *Peak) Reset() { p.peak = 0 }
