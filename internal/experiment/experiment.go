package experiment

import (
	"errors"
	"fmt"

	"github.com/san-kum/linsim/internal/config"
	"github.com/san-kum/linsim/internal/integrators"
	"github.com/san-kum/linsim/internal/linalg"
	"github.com/san-kum/linsim/internal/signal"
	"github.com/san-kum/linsim/internal/sim"
	"github.com/san-kum/linsim/internal/statespace"
	"github.com/san-kum/linsim/internal/tf"
)

var ErrNotSetup = errors.New("experiment: not set up")

type Config struct {
	Name        string
	Numerator   []float64
	Denominator []float64
	InitState   []float64
	Input       signal.Spec
	MaxTime     float64
	Steps       int
	Bound       float64
}

// FromConfig converts a loaded run configuration.
func FromConfig(c *config.Config) Config {
	return Config{
		Name:        c.Name,
		Numerator:   append([]float64(nil), c.Numerator...),
		Denominator: append([]float64(nil), c.Denominator...),
		InitState:   append([]float64(nil), c.InitialState...),
		Input:       c.InputSpec(),
		MaxTime:     c.MaxTime,
		Steps:       c.Steps,
		Bound:       c.Bound,
	}
}

// Result is a simulation result together with the outputs y = Cx + Du.
type Result struct {
	*sim.Result
	Outputs []linalg.Vector
}

// Output extracts output component i across all samples.
func (r *Result) Output(i int) []float64 {
	out := make([]float64, len(r.Outputs))
	for k, y := range r.Outputs {
		if i < len(y) {
			out[k] = y[i]
		}
	}
	return out
}

// MetricOptions returns the metric parameters carried by the config.
func (c Config) MetricOptions() MetricOptions {
	opts := DefaultMetricOptions()
	if c.Bound > 0 {
		opts.Bound = c.Bound
	}
	return opts
}

type Experiment struct {
	cfg       Config
	tf        tf.TransferFunction
	model     *statespace.Model
	simulator *sim.Simulator
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup realizes the transfer function and builds the simulator.
func (e *Experiment) Setup(integrator sim.Integrator, metrics []sim.Metric) error {
	g := tf.New(e.cfg.Numerator, e.cfg.Denominator)
	model, err := statespace.Realize(g)
	if err != nil {
		return fmt.Errorf("realize %s: %w", e.cfg.Name, err)
	}
	dyn, err := sim.NewLinearSystem(model.A, model.B)
	if err != nil {
		return err
	}

	e.tf = g
	e.model = model
	e.simulator = sim.New(dyn, integrator)
	for _, m := range metrics {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run() (*Result, error) {
	if e.simulator == nil {
		return nil, ErrNotSetup
	}

	x0 := linalg.NewVector(e.model.Order())
	if len(e.cfg.InitState) > 0 {
		x0 = linalg.CloneVector(e.cfg.InitState)
	}

	simCfg := sim.Config{
		MaxTime:       e.cfg.MaxTime,
		Steps:         e.cfg.Steps,
		ValidateState: true,
	}
	if simCfg.Steps < 2 {
		return nil, fmt.Errorf("%w: steps must be at least 2, got %d", sim.ErrInvalidConfig, simCfg.Steps)
	}

	input, err := signal.FromSpec(e.cfg.Input, simCfg.Dt())
	if err != nil {
		return nil, err
	}

	res, err := e.simulator.Run(x0, input, simCfg)
	if err != nil {
		return nil, err
	}

	outputs, err := e.model.OutputSeries(res.States, res.Inputs)
	if err != nil {
		return nil, err
	}
	return &Result{Result: res, Outputs: outputs}, nil
}

func (e *Experiment) Config() Config                        { return e.cfg }
func (e *Experiment) Model() *statespace.Model              { return e.model }
func (e *Experiment) TransferFunction() tf.TransferFunction { return e.tf }

// GetSimulator returns the underlying simulator for adding observers
func (e *Experiment) GetSimulator() *sim.Simulator {
	return e.simulator
}

// Simulate marches x' = Ax + Bu from x0 with forward Euler and returns
// exactly steps samples over [0, maxTime].
func Simulate(a, b *linalg.Matrix, x0 linalg.Vector, input sim.InputFunc, maxTime float64, steps int) (*sim.Result, error) {
	dyn, err := sim.NewLinearSystem(a, b)
	if err != nil {
		return nil, err
	}
	s := sim.New(dyn, integrators.NewEuler())
	return s.Run(x0, input, sim.Config{MaxTime: maxTime, Steps: steps, ValidateState: true})
}
