package sim

import (
	"testing"

	"github.com/san-kum/linsim/internal/linalg"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxTime <= 0 {
		t.Error("DefaultConfig has invalid MaxTime")
	}
	if cfg.Steps < 2 {
		t.Error("DefaultConfig has invalid Steps")
	}
}

func TestConfigDt(t *testing.T) {
	cfg := Config{MaxTime: 10, Steps: 101}
	if cfg.Dt() != 0.1 {
		t.Errorf("expected dt 0.1, got %v", cfg.Dt())
	}
}

func TestResultAccessors(t *testing.T) {
	r := &Result{States: []linalg.Vector{{1, 2}, {3, 4}, {5, 6}}}

	if got := r.Final(); got[0] != 5 || got[1] != 6 {
		t.Errorf("Final: got %v", got)
	}

	comp := r.Component(1)
	if len(comp) != 3 || comp[0] != 2 || comp[2] != 6 {
		t.Errorf("Component: got %v", comp)
	}

	if (&Result{}).Final() != nil {
		t.Error("expected nil final state for empty result")
	}
}

func TestStepError(t *testing.T) {
	err := &StepError{Time: 1.5, Step: 150, Err: ErrInvalidState}
	expected := "step 150 (t=1.5000): sim: invalid state (NaN or Inf detected)"
	if err.Error() != expected {
		t.Errorf("StepError.Error() = %q, want %q", err.Error(), expected)
	}
}
