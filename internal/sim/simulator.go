package sim

import (
	"fmt"

	"github.com/san-kum/linsim/internal/linalg"
)

type Simulator struct {
	dyn        Dynamics
	integrator Integrator
	metrics    []Metric
	observers  []Observer
}

func New(dyn Dynamics, integrator Integrator) *Simulator {
	return &Simulator{
		dyn:        dyn,
		integrator: integrator,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run marches x0 forward with a fixed step dt = MaxTime/(Steps-1).
//
// Sample k is taken at t = k·dt for k = 0 … Steps-1: u = input(t) is
// evaluated, the integrator advances the state, and the new state is
// recorded. Exactly cfg.Steps samples are recorded. The caller's x0 is
// never modified.
func (s *Simulator) Run(x0 linalg.Vector, input InputFunc, cfg Config) (*Result, error) {
	if err := s.validate(x0, input, cfg); err != nil {
		return nil, err
	}

	dt := cfg.Dt()
	result := &Result{
		States:  make([]linalg.Vector, 0, cfg.Steps),
		Inputs:  make([]linalg.Vector, 0, cfg.Steps),
		Times:   make([]float64, 0, cfg.Steps),
		Metrics: make(map[string]float64),
		Dt:      dt,
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0.Clone()
	for k := 0; k < cfg.Steps; k++ {
		t := float64(k) * dt
		u := input(t)
		if len(u) != s.dyn.InputDim() {
			return nil, &StepError{Step: k, Time: t, Err: fmt.Errorf("input has %d entries, expected %d: %w",
				len(u), s.dyn.InputDim(), ErrDimensionMismatch)}
		}

		for _, m := range s.metrics {
			m.Observe(x, u, t)
		}
		for _, obs := range s.observers {
			obs.OnStep(x, u, t)
		}

		next, err := s.integrator.Step(s.dyn, x, u, t, dt)
		if err != nil {
			return nil, &StepError{Step: k, Time: t, Err: err}
		}
		if cfg.ValidateState && !next.IsFinite() {
			return nil, &StepError{Step: k, Time: t, Err: ErrInvalidState}
		}

		x = next
		result.States = append(result.States, x)
		result.Inputs = append(result.Inputs, u.Clone())
		result.Times = append(result.Times, t)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) validate(x0 linalg.Vector, input InputFunc, cfg Config) error {
	if cfg.MaxTime <= 0 {
		return fmt.Errorf("max time must be positive, got %f: %w", cfg.MaxTime, ErrInvalidConfig)
	}
	if cfg.Steps < 2 {
		return fmt.Errorf("need at least 2 steps, got %d: %w", cfg.Steps, ErrInvalidConfig)
	}
	if input == nil {
		return fmt.Errorf("no input signal: %w", ErrInvalidConfig)
	}
	if len(x0) != s.dyn.StateDim() {
		return fmt.Errorf("initial state has %d entries, expected %d: %w", len(x0), s.dyn.StateDim(), ErrDimensionMismatch)
	}
	return nil
}
