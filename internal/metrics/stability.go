package metrics

import (
	"github.com/san-kum/linsim/internal/linalg"
)

// Bounded is the fraction of samples whose state norm ‖x‖ stays at or
// below bound. Non-finite states count as outside.
type Bounded struct {
	bound   float64
	inside  int
	samples int
	escape  float64
	escaped bool
}

func NewBounded(bound float64) *Bounded {
	return &Bounded{bound: bound}
}

func (b *Bounded) Name() string { return "bounded" }

func (b *Bounded) Observe(x, u linalg.Vector, t float64) {
	b.samples++
	if x.IsFinite() && x.Norm() <= b.bound {
		b.inside++
		return
	}
	if !b.escaped {
		b.escaped = true
		b.escape = t
	}
}

func (b *Bounded) Value() float64 {
	if b.samples == 0 {
		return 1
	}
	return float64(b.inside) / float64(b.samples)
}

// EscapeTime reports the first sample time at which the state left the
// bound.
func (b *Bounded) EscapeTime() (float64, bool) {
	return b.escape, b.escaped
}

func (b *Bounded) Reset() {
	*b = Bounded{bound: b.bound}
}

// Escape reports the first time ‖x‖ exceeded bound, or -1 if it never did.
type Escape struct {
	Bounded
}

func NewEscape(bound float64) *Escape {
	return &Escape{Bounded: Bounded{bound: bound}}
}

func (e *Escape) Name() string { return "escape_time" }

func (e *Escape) Value() float64 {
	if t, ok := e.EscapeTime(); ok {
		return t
	}
	return -1
}
