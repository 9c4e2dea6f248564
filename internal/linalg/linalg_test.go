package linalg

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNewMatrix(t *testing.T) {
	m := NewMatrix(2, 3)
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("expected 2x3, got %dx%d", m.Rows(), m.Cols())
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if m.At(i, j) != 0 {
				t.Errorf("cell (%d,%d) = %f, expected 0", i, j, m.At(i, j))
			}
		}
	}

	f := FilledMatrix(2, 2, 7)
	if f.At(1, 1) != 7 || f.At(0, 1) != 7 {
		t.Error("FilledMatrix did not fill every cell")
	}
}

func TestFromRows(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	if m.At(1, 0) != 3 {
		t.Errorf("expected 3, got %f", m.At(1, 0))
	}

	if _, err := FromRows([][]float64{{1, 2}, {3}}); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("expected ErrInvalidShape for ragged rows, got %v", err)
	}
}

func TestWriteDiagonal(t *testing.T) {
	m := NewMatrix(3, 3)
	if err := m.WriteDiagonal(5, 0); err != nil {
		t.Fatalf("WriteDiagonal failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 5
			}
			if m.At(i, j) != want {
				t.Errorf("cell (%d,%d) = %f, expected %f", i, j, m.At(i, j), want)
			}
		}
	}
}

func TestWriteDiagonal_Offsets(t *testing.T) {
	m := NewMatrix(3, 4)
	if err := WriteToDiagonal(m, 1, 1); err != nil {
		t.Fatalf("super-diagonal failed: %v", err)
	}
	want := [][]float64{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	for i := range want {
		for j := range want[i] {
			if m.At(i, j) != want[i][j] {
				t.Errorf("super: cell (%d,%d) = %f, expected %f", i, j, m.At(i, j), want[i][j])
			}
		}
	}

	s := NewMatrix(3, 3)
	if err := s.WriteDiagonal(2, -1); err != nil {
		t.Fatalf("sub-diagonal failed: %v", err)
	}
	if s.At(1, 0) != 2 || s.At(2, 1) != 2 || s.At(0, 0) != 0 {
		t.Errorf("sub-diagonal not written correctly: %v", s.RowsData())
	}
}

func TestWriteDiagonal_OutOfBounds(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		offset     int
	}{
		{"offset equals size", 3, 3, 3},
		{"offset exceeds rows", 2, 5, 2},
		{"offset exceeds cols", 5, 2, 4},
		{"negative beyond rows", 3, 3, -3},
		{"empty matrix", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := FilledMatrix(tt.rows, tt.cols, 9)
			err := m.WriteDiagonal(1, tt.offset)
			if !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("expected ErrOutOfBounds, got %v", err)
			}
			for i := 0; i < tt.rows; i++ {
				for j := 0; j < tt.cols; j++ {
					if m.At(i, j) != 9 {
						t.Fatalf("matrix was written before the bounds check")
					}
				}
			}
		})
	}
}

func TestMatVec(t *testing.T) {
	m, _ := FromRows([][]float64{{1, 0}, {0, 1}})
	got, err := MatVec(m, Vector{3, 4})
	if err != nil {
		t.Fatalf("MatVec failed: %v", err)
	}
	if len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Errorf("expected [3 4], got %v", got)
	}
}

func TestMatVec_NonSquare(t *testing.T) {
	m, _ := FromRows([][]float64{{1, 2, 3}})
	got, err := MatVec(m, Vector{1, 1, 1})
	if err != nil {
		t.Fatalf("MatVec failed: %v", err)
	}
	if len(got) != 1 || got[0] != 6 {
		t.Errorf("expected [6], got %v", got)
	}
}

func TestMatVec_DimensionMismatch(t *testing.T) {
	m, _ := FromRows([][]float64{{1, 0}})
	if _, err := MatVec(m, Vector{1, 2, 3}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestMatVec_MatchesGonum(t *testing.T) {
	rows := [][]float64{
		{0.5, -1.25, 3},
		{2, 0, -0.75},
		{1e-3, 4, 1},
		{-2, 2, 2},
	}
	m, _ := FromRows(rows)
	v := Vector{1.5, -2, 0.25}

	got, err := MatVec(m, v)
	if err != nil {
		t.Fatalf("MatVec failed: %v", err)
	}

	var want mat.VecDense
	want.MulVec(m.Dense(), mat.NewVecDense(len(v), v.Clone()))

	for i := range got {
		if math.Abs(got[i]-want.AtVec(i)) > 1e-12 {
			t.Errorf("row %d: got %f, gonum %f", i, got[i], want.AtVec(i))
		}
	}
}

func TestDenseRoundTrip(t *testing.T) {
	m, _ := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	back := FromDense(m.Dense())
	if !back.Equal(m, 0) {
		t.Errorf("round trip changed matrix: %v", back.RowsData())
	}
	if NewMatrix(0, 3).Dense() != nil {
		t.Error("expected nil dense for empty matrix")
	}
}

func TestClone_Independent(t *testing.T) {
	m := Identity(2)
	c := m.Clone()
	c.Set(0, 1, 8)
	if m.At(0, 1) != 0 {
		t.Error("Clone shares storage with original")
	}
}

func TestVectorOps(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{4, 5, 6}

	sum, err := AddVec(a, b)
	if err != nil {
		t.Fatalf("AddVec failed: %v", err)
	}
	if sum[0] != 5 || sum[1] != 7 || sum[2] != 9 {
		t.Errorf("AddVec: got %v", sum)
	}

	diff, err := SubVec(b, a)
	if err != nil {
		t.Fatalf("SubVec failed: %v", err)
	}
	if diff[0] != 3 || diff[1] != 3 || diff[2] != 3 {
		t.Errorf("SubVec: got %v", diff)
	}

	scaled := ScaleVec(a, 2)
	if scaled[0] != 2 || scaled[1] != 4 || scaled[2] != 6 {
		t.Errorf("ScaleVec: got %v", scaled)
	}

	if a[0] != 1 || b[0] != 4 {
		t.Error("operands were mutated")
	}
}

func TestVectorOps_LengthMismatch(t *testing.T) {
	if _, err := AddVec(Vector{1, 2}, Vector{1}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("AddVec: expected ErrDimensionMismatch, got %v", err)
	}
	if _, err := SubVec(Vector{1}, Vector{1, 2}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("SubVec: expected ErrDimensionMismatch, got %v", err)
	}
}

func TestCloneVector(t *testing.T) {
	v := FilledVector(3, 1.5)
	c := CloneVector(v)
	c[0] = 0
	if v[0] != 1.5 {
		t.Error("CloneVector shares storage with original")
	}
	if NewVector(4).Len() != 4 {
		t.Error("NewVector has wrong length")
	}
}

func TestVector_IsFinite(t *testing.T) {
	tests := []struct {
		name  string
		v     Vector
		valid bool
	}{
		{"empty", Vector{}, true},
		{"normal", Vector{1, 2, 3}, true},
		{"with NaN", Vector{1, math.NaN()}, false},
		{"with +Inf", Vector{1, math.Inf(1)}, false},
		{"with -Inf", Vector{math.Inf(-1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsFinite(); got != tt.valid {
				t.Errorf("IsFinite() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestVector_Norm(t *testing.T) {
	if got := (Vector{3, 4}).Norm(); math.Abs(got-5) > 1e-12 {
		t.Errorf("expected 5, got %f", got)
	}
}
