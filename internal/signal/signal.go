// Package signal provides scalar input signals u(t) for single-input
// simulations, and a name-based registry used by configuration files.
package signal

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/linsim/internal/linalg"
	"github.com/san-kum/linsim/internal/sim"
)

// ErrUnknownKind is returned by FromSpec for an unregistered signal name.
var ErrUnknownKind = errors.New("signal: unknown input kind")

// Spec selects and parameterizes a signal by name.
type Spec struct {
	Kind      string  `yaml:"kind" json:"kind"`
	Amplitude float64 `yaml:"amplitude" json:"amplitude"`
	Frequency float64 `yaml:"frequency" json:"frequency"`
	Phase     float64 `yaml:"phase" json:"phase"`
	Delay     float64 `yaml:"delay" json:"delay"`
	Width     float64 `yaml:"width" json:"width"`
}

func scalar(v float64) linalg.Vector {
	return linalg.Vector{v}
}

// Zero is u(t) = 0.
func Zero() sim.InputFunc {
	return func(float64) linalg.Vector { return scalar(0) }
}

// Constant is u(t) = values, for any number of inputs.
func Constant(values ...float64) sim.InputFunc {
	v := linalg.Vector(values).Clone()
	return func(float64) linalg.Vector { return v.Clone() }
}

// Step is amplitude for t >= delay and 0 before.
func Step(amplitude, delay float64) sim.InputFunc {
	return func(t float64) linalg.Vector {
		if t < delay {
			return scalar(0)
		}
		return scalar(amplitude)
	}
}

// Ramp is slope·(t - delay) for t >= delay and 0 before.
func Ramp(slope, delay float64) sim.InputFunc {
	return func(t float64) linalg.Vector {
		if t < delay {
			return scalar(0)
		}
		return scalar(slope * (t - delay))
	}
}

// Sine is amplitude·sin(2π·freq·t + phase).
func Sine(amplitude, freq, phase float64) sim.InputFunc {
	return func(t float64) linalg.Vector {
		return scalar(amplitude * math.Sin(2*math.Pi*freq*t+phase))
	}
}

// Pulse is a rectangle of height area/width on [delay, delay+width), so
// its integral is area. With width equal to the sample spacing it
// approximates an impulse of the given area.
func Pulse(area, width, delay float64) sim.InputFunc {
	return func(t float64) linalg.Vector {
		if width <= 0 || t < delay || t >= delay+width {
			return scalar(0)
		}
		return scalar(area / width)
	}
}

var registry = map[string]func(s Spec, dt float64) sim.InputFunc{
	"zero":     func(Spec, float64) sim.InputFunc { return Zero() },
	"constant": func(s Spec, _ float64) sim.InputFunc { return Constant(s.Amplitude) },
	"step":     func(s Spec, _ float64) sim.InputFunc { return Step(s.Amplitude, s.Delay) },
	"ramp":     func(s Spec, _ float64) sim.InputFunc { return Ramp(s.Amplitude, s.Delay) },
	"sine":     func(s Spec, _ float64) sim.InputFunc { return Sine(s.Amplitude, s.Frequency, s.Phase) },
	"impulse": func(s Spec, dt float64) sim.InputFunc {
		w := s.Width
		if w <= 0 {
			w = dt
		}
		return Pulse(s.Amplitude, w, s.Delay)
	},
}

// FromSpec builds the signal named by s.Kind. dt is the simulation sample
// spacing, used as the default impulse width.
func FromSpec(s Spec, dt float64) (sim.InputFunc, error) {
	fn, ok := registry[s.Kind]
	if !ok {
		return nil, fmt.Errorf("%q (available: %v): %w", s.Kind, Kinds(), ErrUnknownKind)
	}
	return fn(s, dt), nil
}

// Kinds lists the registered signal names in sorted order.
func Kinds() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
