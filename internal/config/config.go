package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/linsim/internal/signal"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxTime = 10.0
	DefaultSteps   = 100
	DefaultInput   = "step"
	DefaultBound   = 1e3
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config describes one simulation run of a transfer function.
// Coefficient lists are in ascending power order.
type Config struct {
	Name         string      `yaml:"name"`
	Numerator    []float64   `yaml:"numerator"`
	Denominator  []float64   `yaml:"denominator"`
	InitialState []float64   `yaml:"initial_state"`
	Input        InputConfig `yaml:"input"`
	MaxTime      float64     `yaml:"max_time"`
	Steps        int         `yaml:"steps"`
	// Bound is the state norm past which a run counts as diverged.
	Bound float64 `yaml:"bound"`
}

type InputConfig struct {
	Kind      string  `yaml:"kind"`
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Phase     float64 `yaml:"phase"`
	Delay     float64 `yaml:"delay"`
	Width     float64 `yaml:"width"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:        "first_order",
		Numerator:   []float64{1},
		Denominator: []float64{1, 1},
		Input: InputConfig{
			Kind:      DefaultInput,
			Amplitude: 1,
		},
		MaxTime: DefaultMaxTime,
		Steps:   DefaultSteps,
		Bound:   DefaultBound,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields a run cannot do without.
func (c *Config) Validate() error {
	if strings.ContainsAny(c.Name, `/\`) || strings.Contains(c.Name, "..") {
		return fmt.Errorf("%w: name %q must not contain path elements", ErrInvalid, c.Name)
	}
	if len(c.Denominator) == 0 {
		return fmt.Errorf("%w: denominator is required", ErrInvalid)
	}
	if c.MaxTime <= 0 {
		return fmt.Errorf("%w: max_time must be positive, got %g", ErrInvalid, c.MaxTime)
	}
	if c.Steps < 2 {
		return fmt.Errorf("%w: steps must be at least 2, got %d", ErrInvalid, c.Steps)
	}
	if c.Bound <= 0 {
		return fmt.Errorf("%w: bound must be positive, got %g", ErrInvalid, c.Bound)
	}
	if !knownInput(c.Input.Kind) {
		return fmt.Errorf("%w: unknown input kind %q (available: %v)", ErrInvalid, c.Input.Kind, signal.Kinds())
	}
	return nil
}

// InputSpec converts the input section into a signal spec.
func (c *Config) InputSpec() signal.Spec {
	return signal.Spec{
		Kind:      c.Input.Kind,
		Amplitude: c.Input.Amplitude,
		Frequency: c.Input.Frequency,
		Phase:     c.Input.Phase,
		Delay:     c.Input.Delay,
		Width:     c.Input.Width,
	}
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Numerator = append([]float64(nil), c.Numerator...)
	out.Denominator = append([]float64(nil), c.Denominator...)
	out.InitialState = append([]float64(nil), c.InitialState...)
	return &out
}

func knownInput(kind string) bool {
	for _, k := range signal.Kinds() {
		if k == kind {
			return true
		}
	}
	return false
}
