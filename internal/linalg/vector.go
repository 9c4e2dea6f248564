package linalg

import (
	"fmt"
	"math"
)

// Vector is a fixed-length real vector. Operations return new vectors;
// element writes through indexing are allowed on vectors the caller owns.
type Vector []float64

// NewVector returns a zero vector of length n.
func NewVector(n int) Vector {
	return make(Vector, n)
}

// FilledVector returns a vector of length n with every element set to value.
func FilledVector(n int, value float64) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = value
	}
	return v
}

func (v Vector) Len() int { return len(v) }

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

// IsFinite reports whether no element is NaN or infinite.
func (v Vector) IsFinite() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Norm returns the Euclidean norm.
func (v Vector) Norm() float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// CloneVector returns an independent deep copy of v.
func CloneVector(v Vector) Vector {
	return v.Clone()
}

// AddVec returns v1 + v2. Both vectors must have the same length.
func AddVec(v1, v2 Vector) (Vector, error) {
	if len(v1) != len(v2) {
		return nil, fmt.Errorf("add %d + %d: %w", len(v1), len(v2), ErrDimensionMismatch)
	}
	out := make(Vector, len(v1))
	for i := range v1 {
		out[i] = v1[i] + v2[i]
	}
	return out, nil
}

// SubVec returns v1 - v2. Both vectors must have the same length.
func SubVec(v1, v2 Vector) (Vector, error) {
	if len(v1) != len(v2) {
		return nil, fmt.Errorf("sub %d - %d: %w", len(v1), len(v2), ErrDimensionMismatch)
	}
	out := make(Vector, len(v1))
	for i := range v1 {
		out[i] = v1[i] - v2[i]
	}
	return out, nil
}

// ScaleVec returns lambda·v.
func ScaleVec(v Vector, lambda float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] * lambda
	}
	return out
}
