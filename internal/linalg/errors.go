package linalg

import "errors"

var (
	// ErrDimensionMismatch indicates operands with incompatible sizes.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrOutOfBounds indicates a diagonal offset with no cells inside the matrix.
	ErrOutOfBounds = errors.New("linalg: diagonal offset out of bounds")

	// ErrInvalidShape indicates ragged or empty row data.
	ErrInvalidShape = errors.New("linalg: invalid shape")
)
