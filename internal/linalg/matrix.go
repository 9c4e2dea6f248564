package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense, mutable, row-major real matrix.
//
// Cells are written in place through Set and WriteDiagonal; every other
// operation leaves its operands untouched.
type Matrix struct {
	rows, cols int
	data       [][]float64
}

// NewMatrix returns a rows×cols zero matrix.
func NewMatrix(rows, cols int) *Matrix {
	return FilledMatrix(rows, cols, 0)
}

// FilledMatrix returns a rows×cols matrix with every cell set to value.
// It panics if either dimension is negative.
func FilledMatrix(rows, cols int, value float64) *Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("linalg: negative dimensions %dx%d", rows, cols))
	}
	data := make([][]float64, rows)
	for i := range data {
		data[i] = make([]float64, cols)
		if value != 0 {
			for j := range data[i] {
				data[i][j] = value
			}
		}
	}
	return &Matrix{rows: rows, cols: cols, data: data}
}

// FromRows builds a matrix from row slices, copying the data. Every row
// must have the same length.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return NewMatrix(0, 0), nil
	}
	cols := len(rows[0])
	m := NewMatrix(len(rows), cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("row %d has %d columns, expected %d: %w", i, len(r), cols, ErrInvalidShape)
		}
		copy(m.data[i], r)
	}
	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	if n > 0 {
		_ = m.WriteDiagonal(1, 0)
	}
	return m
}

func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

// Dims returns the row and column counts.
func (m *Matrix) Dims() (int, int) { return m.rows, m.cols }

// At returns the cell at row i, column j.
func (m *Matrix) At(i, j int) float64 { return m.data[i][j] }

// Set writes value into row i, column j.
func (m *Matrix) Set(i, j int, value float64) { m.data[i][j] = value }

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	r := make([]float64, m.cols)
	copy(r, m.data[i])
	return r
}

// RowsData returns a deep copy of the cells as row slices.
func (m *Matrix) RowsData() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = m.Row(i)
	}
	return out
}

// Clone returns an independent copy of m.
func (m *Matrix) Clone() *Matrix {
	c := NewMatrix(m.rows, m.cols)
	for i := range m.data {
		copy(c.data[i], m.data[i])
	}
	return c
}

// WriteDiagonal sets every cell (i, i+offset) that lies inside the matrix to
// value, in place. A positive offset selects a super-diagonal and a negative
// offset a sub-diagonal. It returns ErrOutOfBounds, before writing anything,
// when the selected diagonal has no cells.
func (m *Matrix) WriteDiagonal(value float64, offset int) error {
	abs := offset
	if abs < 0 {
		abs = -abs
	}
	if abs >= m.rows || abs >= m.cols {
		return fmt.Errorf("offset %d on %dx%d matrix: %w", offset, m.rows, m.cols, ErrOutOfBounds)
	}
	for i := 0; i < m.rows; i++ {
		j := i + offset
		if j < 0 {
			continue
		}
		if j >= m.cols {
			break
		}
		m.data[i][j] = value
	}
	return nil
}

// WriteToDiagonal is the function form of Matrix.WriteDiagonal.
func WriteToDiagonal(m *Matrix, value float64, offset int) error {
	return m.WriteDiagonal(value, offset)
}

// MatVec returns the product m·v. The column count of m must equal the
// length of v; the result has one entry per row of m.
func MatVec(m *Matrix, v Vector) (Vector, error) {
	if m.cols != len(v) {
		return nil, fmt.Errorf("mat-vec %dx%d · %d: %w", m.rows, m.cols, len(v), ErrDimensionMismatch)
	}
	out := make(Vector, m.rows)
	for i, row := range m.data {
		acc := 0.0
		for j, a := range row {
			acc += a * v[j]
		}
		out[i] = acc
	}
	return out, nil
}

// Equal reports whether m and o have the same shape and all cells differ
// by at most tol.
func (m *Matrix) Equal(o *Matrix, tol float64) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		for j := range m.data[i] {
			d := m.data[i][j] - o.data[i][j]
			if d > tol || d < -tol {
				return false
			}
		}
	}
	return true
}

// Dense copies m into a gonum dense matrix. Empty matrices yield nil, since
// gonum does not represent zero-sized dense matrices.
func (m *Matrix) Dense() *mat.Dense {
	if m.rows == 0 || m.cols == 0 {
		return nil
	}
	d := mat.NewDense(m.rows, m.cols, nil)
	for i, row := range m.data {
		d.SetRow(i, row)
	}
	return d
}

// FromDense copies any gonum matrix into a Matrix.
func FromDense(a mat.Matrix) *Matrix {
	r, c := a.Dims()
	m := NewMatrix(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data[i][j] = a.At(i, j)
		}
	}
	return m
}
