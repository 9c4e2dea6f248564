package poly

import (
	"errors"
	"math"
	"testing"
)

func coeffsEqual(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestNew_Canonicalizes(t *testing.T) {
	tests := []struct {
		name   string
		in     []float64
		want   []float64
		degree int
	}{
		{"trailing zero", []float64{1, 2, 0}, []float64{1, 2}, 1},
		{"many trailing zeros", []float64{3, 0, 0, 0}, []float64{3}, 0},
		{"all zeros", []float64{0, 0, 0}, []float64{0}, 0},
		{"empty", nil, []float64{0}, 0},
		{"inner zero kept", []float64{0, 0, 5}, []float64{0, 0, 5}, 2},
		{"tiny leading kept", []float64{1, 1e-20}, []float64{1, 1e-20}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.in...)
			if p.Degree() != tt.degree {
				t.Errorf("expected degree %d, got %d", tt.degree, p.Degree())
			}
			if !coeffsEqual(p.Coeffs(), tt.want, 0) {
				t.Errorf("expected coeffs %v, got %v", tt.want, p.Coeffs())
			}
			if len(p.Coeffs()) != p.Degree()+1 {
				t.Errorf("coefficient count %d does not match degree %d", len(p.Coeffs()), p.Degree())
			}
		})
	}
}

func TestNew_DoesNotAliasInput(t *testing.T) {
	in := []float64{1, 2, 3}
	p := New(in...)
	in[0] = 99

	if p.Coeff(0) != 1 {
		t.Errorf("expected coefficient 1, got %f", p.Coeff(0))
	}

	out := p.Coeffs()
	out[1] = 42
	if p.Coeff(1) != 2 {
		t.Error("Coeffs returned a slice aliasing internal storage")
	}
}

func TestZeroValueIsZeroPolynomial(t *testing.T) {
	var p Poly
	if !p.IsExactZero() {
		t.Error("zero value should be the zero polynomial")
	}
	if p.Degree() != 0 {
		t.Errorf("expected degree 0, got %d", p.Degree())
	}
	if got := p.Add(New(1, 2)); !got.Equal(New(1, 2), 0) {
		t.Errorf("expected 1+2s, got %v", got.Coeffs())
	}
}

func TestAddSub(t *testing.T) {
	p := New(1, 2, 3)
	q := New(4, 5)

	if got := p.Add(q).Coeffs(); !coeffsEqual(got, []float64{5, 7, 3}, 0) {
		t.Errorf("Add: got %v", got)
	}
	if got := p.Sub(q).Coeffs(); !coeffsEqual(got, []float64{-3, -3, 3}, 0) {
		t.Errorf("Sub: got %v", got)
	}

	diff := p.Sub(p)
	if !diff.IsExactZero() {
		t.Errorf("p - p should be exactly zero, got %v", diff.Coeffs())
	}

	cancel := New(1, 2, 3).Sub(New(0, 0, 3))
	if cancel.Degree() != 1 {
		t.Errorf("expected cancelled leading term to drop degree to 1, got %d", cancel.Degree())
	}

	if p.Degree() != 2 || q.Degree() != 1 {
		t.Error("operands were mutated")
	}
}

func TestScale(t *testing.T) {
	p := New(1, -2, 4)
	if got := p.Scale(0.5).Coeffs(); !coeffsEqual(got, []float64{0.5, -1, 2}, 0) {
		t.Errorf("Scale: got %v", got)
	}
	if !p.Scale(0).IsExactZero() {
		t.Error("scaling by 0 should give the zero polynomial")
	}
}

func TestMultiply(t *testing.T) {
	// (1 + s)(1 - s) = 1 - s^2
	got := New(1, 1).Multiply(New(1, -1))
	if !coeffsEqual(got.Coeffs(), []float64{1, 0, -1}, 0) {
		t.Errorf("expected [1 0 -1], got %v", got.Coeffs())
	}

	if !New(1, 2, 3).Multiply(Zero()).IsExactZero() {
		t.Error("multiplying by zero should give the zero polynomial")
	}
}

func TestMultiply_DegreeLaw(t *testing.T) {
	cases := [][2]Poly{
		{New(1), New(2)},
		{New(1, 1), New(3, 0, 2)},
		{New(-1, 0, 0, 4), New(0.5, 0.25)},
		{New(2, -3, 1, 7, 5), New(1, 1, 1)},
	}
	for _, c := range cases {
		prod := c[0].Multiply(c[1])
		if prod.Degree() != c[0].Degree()+c[1].Degree() {
			t.Errorf("deg(%v * %v) = %d, expected %d",
				c[0].Coeffs(), c[1].Coeffs(), prod.Degree(), c[0].Degree()+c[1].Degree())
		}
	}
}

func TestIsZero_ToleranceVersusExact(t *testing.T) {
	tiny := New(1e-13, -1e-14)

	if tiny.IsExactZero() {
		t.Error("tiny polynomial is not exactly zero")
	}
	if !tiny.IsZero() {
		t.Error("tiny polynomial should be zero within default tolerance")
	}
	if tiny.IsZeroWithin(1e-15) {
		t.Error("tiny polynomial should not be zero within 1e-15")
	}
	if New(1e-12).IsZero() != true {
		t.Error("coefficient equal to tolerance counts as zero")
	}
}

func TestEval(t *testing.T) {
	p := New(1, -2, 3) // 1 - 2s + 3s^2
	tests := []struct {
		s, want float64
	}{
		{0, 1},
		{1, 2},
		{2, 9},
		{-1, 6},
	}
	for _, tt := range tests {
		if got := p.Eval(tt.s); got != tt.want {
			t.Errorf("Eval(%v) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestDerivative(t *testing.T) {
	got := New(1, -2, 3).Derivative()
	if !coeffsEqual(got.Coeffs(), []float64{-2, 6}, 0) {
		t.Errorf("expected [-2 6], got %v", got.Coeffs())
	}
	if !New(7).Derivative().IsExactZero() {
		t.Error("derivative of a constant should be zero")
	}
}

func TestMonomial(t *testing.T) {
	m := Monomial(2.5, 3)
	if m.Degree() != 3 || m.LeadingCoeff() != 2.5 {
		t.Errorf("expected 2.5s^3, got %v", m.Coeffs())
	}
	if !Monomial(0, 4).IsExactZero() {
		t.Error("zero monomial should be the zero polynomial")
	}
}

func TestDivide_ByZero(t *testing.T) {
	_, _, err := Divide(New(1, 2), Zero())
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}

	// A tiny but nonzero divisor is not the zero polynomial.
	if _, _, err := Divide(New(1, 2), New(1e-20)); err != nil {
		t.Errorf("unexpected error for tiny divisor: %v", err)
	}
}

func TestDivide_DivisorHigherDegree(t *testing.T) {
	p := New(1, 2)
	q, r, err := Divide(p, New(1, 0, 1))
	if err != nil {
		t.Fatalf("divide failed: %v", err)
	}
	if !q.IsExactZero() {
		t.Errorf("expected zero quotient, got %v", q.Coeffs())
	}
	if !r.Equal(p, 0) {
		t.Errorf("expected remainder %v, got %v", p.Coeffs(), r.Coeffs())
	}
}

func TestDivide_Exact(t *testing.T) {
	// s^2 - 1 = (s - 1)(s + 1)
	q, r, err := Divide(New(-1, 0, 1), New(-1, 1))
	if err != nil {
		t.Fatalf("divide failed: %v", err)
	}
	if !q.Equal(New(1, 1), 1e-12) {
		t.Errorf("expected quotient 1+s, got %v", q.Coeffs())
	}
	if !r.IsZero() {
		t.Errorf("expected zero remainder, got %v", r.Coeffs())
	}
}

func TestDivide_WithRemainder(t *testing.T) {
	// 2s^3 + 3s^2 + 1 = (s^2 + 1)(2s + 3) + (-2s - 2)
	q, r, err := Divide(New(1, 0, 3, 2), New(1, 0, 1))
	if err != nil {
		t.Fatalf("divide failed: %v", err)
	}
	if !q.Equal(New(3, 2), 1e-12) {
		t.Errorf("expected quotient 3+2s, got %v", q.Coeffs())
	}
	if !r.Equal(New(-2, -2), 1e-12) {
		t.Errorf("expected remainder -2-2s, got %v", r.Coeffs())
	}
}

func TestDivide_ByConstant(t *testing.T) {
	q, r, err := Divide(New(2, 4, 6), New(2))
	if err != nil {
		t.Fatalf("divide failed: %v", err)
	}
	if !q.Equal(New(1, 2, 3), 1e-12) {
		t.Errorf("expected quotient 1+2s+3s^2, got %v", q.Coeffs())
	}
	if !r.IsExactZero() {
		t.Errorf("expected zero remainder, got %v", r.Coeffs())
	}
}

func TestDivide_RemainderLaw(t *testing.T) {
	cases := []struct {
		p, d Poly
	}{
		{New(1, 2, 3, 4, 5), New(1, 1)},
		{New(0.3, -1.7, 2.2, 0.1), New(3, 0, 0.7)},
		{New(5), New(2, 3)},
		{New(1, 0, 0, 0, 0, 0, 1), New(-1, 0, 1)},
		{New(10.0/9, 4.0/9), New(1, -2, 3)},
		{New(1, -2, 3, -4, 5, -6), New(0.1, 0.2, 0.3)},
		{Zero(), New(1, 1)},
	}

	for _, c := range cases {
		q, r, err := Divide(c.p, c.d)
		if err != nil {
			t.Fatalf("divide %v by %v failed: %v", c.p.Coeffs(), c.d.Coeffs(), err)
		}

		back := q.Multiply(c.d).Add(r)
		if !coeffsEqual(padTo(back.Coeffs(), c.p.Degree()+1), padTo(c.p.Coeffs(), back.Degree()+1), 1e-9) {
			t.Errorf("q*d + r = %v, expected %v", back.Coeffs(), c.p.Coeffs())
		}

		if !r.IsZero() && r.Degree() >= c.d.Degree() {
			t.Errorf("remainder degree %d not below divisor degree %d", r.Degree(), c.d.Degree())
		}
	}
}

func TestDivide_DoesNotMutateOperands(t *testing.T) {
	p := New(1, 2, 3, 4)
	d := New(1, 1)
	if _, _, err := Divide(p, d); err != nil {
		t.Fatalf("divide failed: %v", err)
	}
	if !p.Equal(New(1, 2, 3, 4), 0) || !d.Equal(New(1, 1), 0) {
		t.Error("operands were mutated")
	}
}

func padTo(c []float64, n int) []float64 {
	for len(c) < n {
		c = append(c, 0)
	}
	return c
}
