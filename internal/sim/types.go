package sim

import (
	"fmt"

	"github.com/san-kum/linsim/internal/linalg"
)

// InputFunc returns the input vector u(t).
type InputFunc func(t float64) linalg.Vector

// Dynamics is a system x' = f(x, u, t).
type Dynamics interface {
	Derivative(x, u linalg.Vector, t float64) (linalg.Vector, error)
	StateDim() int
	InputDim() int
}

// Integrator advances x by one step of size dt.
type Integrator interface {
	Step(dyn Dynamics, x, u linalg.Vector, t, dt float64) (linalg.Vector, error)
}

type Metric interface {
	Name() string
	Observe(x, u linalg.Vector, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(x, u linalg.Vector, t float64)
}

// Config describes a fixed-step run over [0, MaxTime] with Steps samples.
type Config struct {
	MaxTime       float64
	Steps         int
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		MaxTime:       10.0,
		Steps:         100,
		ValidateState: true,
	}
}

// Dt returns the sample spacing MaxTime/(Steps-1).
func (c Config) Dt() float64 {
	return c.MaxTime / float64(c.Steps-1)
}

// Result holds one entry per recorded sample, in chronological order.
// States[k] is the state after the update taken at Times[k] with input Inputs[k].
type Result struct {
	States  []linalg.Vector
	Inputs  []linalg.Vector
	Times   []float64
	Metrics map[string]float64
	Dt      float64
}

// Final returns the last recorded state, or nil for an empty result.
func (r *Result) Final() linalg.Vector {
	if len(r.States) == 0 {
		return nil
	}
	return r.States[len(r.States)-1]
}

// Component extracts state component i across all samples.
func (r *Result) Component(i int) []float64 {
	out := make([]float64, len(r.States))
	for k, x := range r.States {
		if i < len(x) {
			out[k] = x[i]
		}
	}
	return out
}

// StepError reports a failure inside the time loop.
type StepError struct {
	Step int
	Time float64
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
