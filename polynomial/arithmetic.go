package polynomial

import (
	"github.com/tuneinsight/polyan/utils"
)

// Add returns p1 + p2.
// A nil operand is treated as absent: the result is a copy of the other
// operand, or the zero polynomial if both are nil.
func Add(p1, p2 *Polynomial) *Polynomial {

	switch {
	case p1 == nil && p2 == nil:
		return NewZero()
	case p1 == nil:
		return p2.Clone()
	case p2 == nil:
		return p1.Clone()
	}

	coeffs := make([]float64, utils.Max(len(p1.coeffs), len(p2.coeffs)))
	copy(coeffs, p1.coeffs)
	for i, c := range p2.coeffs {
		coeffs[i] += c
	}

	return newPolynomial(coeffs)
}

// Sub returns p1 - p2.
// A nil p1 yields -p2 and a nil p2 yields a copy of p1.
func Sub(p1, p2 *Polynomial) *Polynomial {

	switch {
	case p1 == nil && p2 == nil:
		return NewZero()
	case p1 == nil:
		return MulScalar(p2, -1)
	case p2 == nil:
		return p1.Clone()
	}

	coeffs := make([]float64, utils.Max(len(p1.coeffs), len(p2.coeffs)))
	copy(coeffs, p1.coeffs)
	for i, c := range p2.coeffs {
		coeffs[i] -= c
	}

	return newPolynomial(coeffs)
}

// Mul returns p1 * p2, the convolution of the coefficients.
// A nil operand yields the zero polynomial.
func Mul(p1, p2 *Polynomial) *Polynomial {

	if p1 == nil || p2 == nil {
		return NewZero()
	}

	coeffs := make([]float64, len(p1.coeffs)+len(p2.coeffs)-1)

	for i, a := range p1.coeffs {
		if a == 0 {
			continue
		}
		for j, b := range p2.coeffs {
			coeffs[i+j] += a * b
		}
	}

	return newPolynomial(coeffs)
}

// MulScalar returns s * p.
// Scaling by exactly zero, or a nil p, yields the zero polynomial.
func MulScalar(p *Polynomial, s float64) *Polynomial {

	if p == nil || s == 0 {
		return NewZero()
	}

	coeffs := p.Coeffs()
	for i := range coeffs {
		coeffs[i] *= s
	}

	return newPolynomial(coeffs)
}

// Div returns the quotient and the remainder of the long division of p1 by p2,
// such that p1 = quotient * p2 + remainder with deg(remainder) < deg(p2).
//
// After each step the leading coefficients of the running dividend that are
// smaller than Epsilon are deflated, which guarantees termination in the
// presence of floating point noise.
//
// The degenerate cases are not errors:
//   - a nil p1 yields (0, 0);
//   - a nil p2, a zero p1 or a zero p2 yields (copy of p1, 0).
func Div(p1, p2 *Polynomial) (quotient, remainder *Polynomial) {

	if p1 == nil {
		return NewZero(), NewZero()
	}

	if p2 == nil || p1.IsZero() || p2.IsZero() {
		return p1.Clone(), NewZero()
	}

	dd := p2.Degree()
	lead := p2.Leading()

	if p1.Degree() < dd {
		return NewZero(), p1.Clone()
	}

	q := make([]float64, p1.Degree()-dd+1)
	r := normalize(p1.Coeffs())

	for len(r)-1 >= dd && !(len(r) == 1 && r[0] == 0) {

		dr := len(r) - 1
		shift := dr - dd
		c := r[dr] / lead

		q[shift] += c

		for j := 0; j < dd; j++ {
			r[shift+j] -= c * p2.coeffs[j]
		}

		// exact by construction
		r[dr] = 0

		r = normalize(r)
	}

	return newPolynomial(q), newPolynomial(r)
}
