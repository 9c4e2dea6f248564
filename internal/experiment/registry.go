package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/linsim/internal/config"
	"github.com/san-kum/linsim/internal/integrators"
	"github.com/san-kum/linsim/internal/metrics"
	"github.com/san-kum/linsim/internal/sim"
)

// MetricOptions parameterizes the registered metrics.
type MetricOptions struct {
	Bound float64
}

func DefaultMetricOptions() MetricOptions {
	return MetricOptions{Bound: config.DefaultBound}
}

type Registry struct {
	integrators map[string]func() sim.Integrator
	metrics     map[string]func(MetricOptions) sim.Metric
}

func NewRegistry() *Registry {
	r := &Registry{
		integrators: make(map[string]func() sim.Integrator),
		metrics:     make(map[string]func(MetricOptions) sim.Metric),
	}

	r.integrators["euler"] = func() sim.Integrator { return integrators.NewEuler() }

	r.metrics["energy"] = func(MetricOptions) sim.Metric { return metrics.NewEnergy() }
	r.metrics["control_effort"] = func(MetricOptions) sim.Metric { return metrics.NewControlEffort() }
	r.metrics["bounded"] = func(o MetricOptions) sim.Metric { return metrics.NewBounded(o.Bound) }
	r.metrics["escape_time"] = func(o MetricOptions) sim.Metric { return metrics.NewEscape(o.Bound) }
	r.metrics["peak"] = func(MetricOptions) sim.Metric { return metrics.NewPeak() }

	return r
}

func (r *Registry) GetIntegrator(name string) (sim.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetMetric(name string) (sim.Metric, error) {
	fn, ok := r.metrics[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric: %s", name)
	}
	return fn(DefaultMetricOptions()), nil
}

func (r *Registry) ListIntegrators() []string { return sortedKeys(r.integrators) }
func (r *Registry) ListMetrics() []string     { return sortedKeys(r.metrics) }

// DefaultMetrics returns a fresh instance of every registered metric.
func (r *Registry) DefaultMetrics(opts MetricOptions) []sim.Metric {
	out := make([]sim.Metric, 0, len(r.metrics))
	for _, name := range r.ListMetrics() {
		out = append(out, r.metrics[name](opts))
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
