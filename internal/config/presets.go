package config

import (
	"math"
	"sort"
)

var Presets = map[string]*Config{
	"integrator": {
		Name: "integrator", Numerator: []float64{1}, Denominator: []float64{0, 1},
		InitialState: []float64{2}, Input: InputConfig{Kind: "constant", Amplitude: 1},
		MaxTime: 10, Steps: 100,
	},
	"first_order": {
		Name: "first_order", Numerator: []float64{1}, Denominator: []float64{1, 1},
		InitialState: []float64{2}, Input: InputConfig{Kind: "constant", Amplitude: 1},
		MaxTime: 10, Steps: 100,
	},
	"second_order": {
		Name: "second_order", Numerator: []float64{10.0 / 9, 4.0 / 9}, Denominator: []float64{1, -2, 3},
		Input:   InputConfig{Kind: "step", Amplitude: 1},
		MaxTime: 5, Steps: 500,
	},
	"oscillator": {
		Name: "oscillator", Numerator: []float64{1}, Denominator: []float64{1, 0, 1},
		InitialState: []float64{1, 0}, Input: InputConfig{Kind: "zero"},
		MaxTime: 20, Steps: 2000,
	},
	"damped": {
		Name: "damped", Numerator: []float64{1}, Denominator: []float64{1, 0.4, 1},
		Input:   InputConfig{Kind: "step", Amplitude: 1},
		MaxTime: 30, Steps: 3000,
	},
	"resonance": {
		Name: "resonance", Numerator: []float64{1}, Denominator: []float64{1, 0.1, 1},
		Input:   InputConfig{Kind: "sine", Amplitude: 1, Frequency: 1 / (2 * math.Pi)},
		MaxTime: 60, Steps: 6000,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := cfg.Clone()
	if out.Bound == 0 {
		out.Bound = DefaultBound
	}
	return out
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
