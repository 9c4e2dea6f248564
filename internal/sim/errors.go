package sim

import (
	"errors"
	"fmt"

	"github.com/san-kum/linsim/internal/linalg"
)

var (
	// ErrInvalidConfig indicates a non-positive horizon, fewer than two
	// samples, or a missing input function.
	ErrInvalidConfig = errors.New("sim: invalid configuration")

	// ErrDimensionMismatch indicates A, B, x0 or u(t) with inconsistent sizes.
	ErrDimensionMismatch = fmt.Errorf("sim: %w", linalg.ErrDimensionMismatch)

	// ErrInvalidState indicates a state containing NaN or Inf.
	ErrInvalidState = errors.New("sim: invalid state (NaN or Inf detected)")
)
