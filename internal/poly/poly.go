package poly

import "math"

// DefaultTolerance is the coefficient magnitude at or below which IsZero
// treats a polynomial as zero.
const DefaultTolerance = 1e-12

// Poly is a real polynomial with coefficients in ascending power order.
// The zero value is the zero polynomial.
type Poly struct {
	coeffs []float64
}

var zeroCoeffs = []float64{0}

// New builds a canonical polynomial from ascending-power coefficients.
// Trailing coefficients that are exactly zero are stripped; an empty or
// all-zero list yields the zero polynomial.
func New(coeffs ...float64) Poly {
	n := len(coeffs)
	for n > 1 && coeffs[n-1] == 0 {
		n--
	}
	if n == 0 {
		return Poly{coeffs: []float64{0}}
	}
	c := make([]float64, n)
	copy(c, coeffs[:n])
	return Poly{coeffs: c}
}

// Zero returns the zero polynomial.
func Zero() Poly {
	return New(0)
}

// Monomial returns c·s^k.
func Monomial(c float64, k int) Poly {
	if k < 0 {
		k = 0
	}
	coeffs := make([]float64, k+1)
	coeffs[k] = c
	return New(coeffs...)
}

func (p Poly) c() []float64 {
	if len(p.coeffs) == 0 {
		return zeroCoeffs
	}
	return p.coeffs
}

// Coeffs returns a copy of the coefficients, lowest power first.
// The result always has Degree()+1 entries.
func (p Poly) Coeffs() []float64 {
	c := p.c()
	out := make([]float64, len(c))
	copy(out, c)
	return out
}

// Degree returns the index of the highest-order term.
func (p Poly) Degree() int {
	return len(p.c()) - 1
}

// Coeff returns the coefficient of s^i, or 0 when i is outside [0, Degree()].
func (p Poly) Coeff(i int) float64 {
	c := p.c()
	if i < 0 || i >= len(c) {
		return 0
	}
	return c[i]
}

// LeadingCoeff returns the coefficient of the highest-order term.
func (p Poly) LeadingCoeff() float64 {
	c := p.c()
	return c[len(c)-1]
}

// IsExactZero reports whether p is the canonical zero polynomial [0].
func (p Poly) IsExactZero() bool {
	c := p.c()
	return len(c) == 1 && c[0] == 0
}

// IsZero reports whether every coefficient is within DefaultTolerance of zero.
func (p Poly) IsZero() bool {
	return p.IsZeroWithin(DefaultTolerance)
}

// IsZeroWithin reports whether every coefficient satisfies |c| <= tol.
func (p Poly) IsZeroWithin(tol float64) bool {
	for _, v := range p.c() {
		if math.Abs(v) > tol {
			return false
		}
	}
	return true
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	return combine(p, q, 1)
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly {
	return combine(p, q, -1)
}

func combine(p, q Poly, sign float64) Poly {
	pc, qc := p.c(), q.c()
	n := len(pc)
	if len(qc) > n {
		n = len(qc)
	}
	out := make([]float64, n)
	for i := range out {
		if i < len(pc) {
			out[i] = pc[i]
		}
		if i < len(qc) {
			out[i] += sign * qc[i]
		}
	}
	return New(out...)
}

// Scale returns k·p.
func (p Poly) Scale(k float64) Poly {
	pc := p.c()
	out := make([]float64, len(pc))
	for i, v := range pc {
		out[i] = k * v
	}
	return New(out...)
}

// Multiply returns p·q, the discrete convolution of the coefficient lists.
func (p Poly) Multiply(q Poly) Poly {
	pc, qc := p.c(), q.c()
	out := make([]float64, len(pc)+len(qc)-1)
	for i, a := range pc {
		for j, b := range qc {
			out[i+j] += a * b
		}
	}
	return New(out...)
}

// Eval evaluates p at s using Horner's scheme.
func (p Poly) Eval(s float64) float64 {
	c := p.c()
	v := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		v = v*s + c[i]
	}
	return v
}

// Derivative returns dp/ds.
func (p Poly) Derivative() Poly {
	c := p.c()
	if len(c) == 1 {
		return Zero()
	}
	out := make([]float64, len(c)-1)
	for i := 1; i < len(c); i++ {
		out[i-1] = float64(i) * c[i]
	}
	return New(out...)
}

// Equal reports whether p and q have the same degree and every pair of
// coefficients differs by at most tol.
func (p Poly) Equal(q Poly, tol float64) bool {
	pc, qc := p.c(), q.c()
	if len(pc) != len(qc) {
		return false
	}
	for i := range pc {
		if math.Abs(pc[i]-qc[i]) > tol {
			return false
		}
	}
	return true
}
