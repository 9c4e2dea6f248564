// Package format renders polynomials, transfer functions and matrices as
// plain text for terminal output.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/linsim/internal/linalg"
	"github.com/san-kum/linsim/internal/poly"
	"github.com/san-kum/linsim/internal/tf"
)

// Float renders v in the shortest form that round-trips.
func Float(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Poly renders p in ascending powers of variable, e.g. "1 - 2s + 3s^2".
// Zero coefficients are skipped and unit coefficients on s^k (k>0) are
// elided. The zero polynomial renders as "0".
func Poly(p poly.Poly, variable string) string {
	if p.IsExactZero() {
		return "0"
	}

	var sb strings.Builder
	first := true
	for deg, c := range p.Coeffs() {
		if c == 0 {
			continue
		}
		switch {
		case first && c < 0:
			sb.WriteString("-")
		case !first && c < 0:
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		}
		first = false

		mag := math.Abs(c)
		if deg == 0 || mag != 1 {
			sb.WriteString(Float(mag))
		}
		if deg >= 1 {
			sb.WriteString(variable)
		}
		if deg >= 2 {
			sb.WriteString("^")
			sb.WriteString(strconv.Itoa(deg))
		}
	}
	return sb.String()
}

// TransferFunction renders g as numerator over denominator, both centred
// on a dash divider.
func TransferFunction(g tf.TransferFunction, variable string) string {
	num := Poly(g.Num, variable)
	den := Poly(g.Den, variable)
	width := max(len(num), len(den))

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", (width-len(num)+1)/2))
	sb.WriteString(num)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", width))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", (width-len(den)+1)/2))
	sb.WriteString(den)
	return sb.String()
}

// Matrix renders m one row per line inside brackets, with every entry
// right-aligned to the widest entry.
func Matrix(m *linalg.Matrix) string {
	rows, cols := m.Dims()
	cells := make([][]string, rows)
	width := 0
	for i := 0; i < rows; i++ {
		cells[i] = make([]string, cols)
		for j := 0; j < cols; j++ {
			s := Float(m.At(i, j))
			cells[i][j] = s
			width = max(width, len(s))
		}
	}

	var sb strings.Builder
	sb.WriteString("[\n")
	for _, row := range cells {
		padded := make([]string, len(row))
		for j, s := range row {
			padded[j] = strings.Repeat(" ", width-len(s)) + s
		}
		sb.WriteString("  ")
		sb.WriteString(strings.Join(padded, "  "))
		sb.WriteString("\n")
	}
	sb.WriteString("]")
	return sb.String()
}

func Vector(v linalg.Vector) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = Float(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
