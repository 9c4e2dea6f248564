package poly

// Divide performs polynomial long division of p by d and returns the
// quotient q and remainder r such that p = q·d + r.
//
// It fails with ErrDivisionByZero when d is exactly the zero polynomial.
// When deg(d) > deg(p) the quotient is zero and the remainder is p.
// Otherwise the leading term of the remainder is cancelled one degree at a
// time until deg(r) < deg(d) or r is zero within DefaultTolerance. The
// cancelled coefficient is set to exactly zero on each iteration, so the
// remainder degree strictly decreases and the loop always terminates.
func Divide(p, d Poly) (q, r Poly, err error) {
	if d.IsExactZero() {
		return Poly{}, Poly{}, ErrDivisionByZero
	}
	if d.Degree() > p.Degree() {
		return Zero(), New(p.c()...), nil
	}

	dc := d.c()
	dd := d.Degree()
	lead := d.LeadingCoeff()

	quot := make([]float64, p.Degree()-dd+1)
	rem := p.Coeffs()
	r = p

	for r.Degree() >= dd && !r.IsZero() {
		top := r.Degree()
		k := top - dd
		c := r.LeadingCoeff() / lead

		rem = rem[:top+1]
		for j, v := range dc {
			rem[j+k] -= c * v
		}
		rem[top] = 0
		quot[k] += c

		r = New(rem...)
	}

	return New(quot...), r, nil
}
