package polynomial

import (
	"math"

	"github.com/tuneinsight/polyan/xreal"
)

// Evaluate returns p(x) computed with the Horner scheme.
func (p *Polynomial) Evaluate(x float64) (y float64) {
	y = p.coeffs[len(p.coeffs)-1]
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		y = y*x + p.coeffs[i]
	}
	return
}

// Func returns the evaluation function x -> p(x).
// The returned closure holds its own copy of the coefficients.
func (p *Polynomial) Func() func(x float64) float64 {
	q := p.Clone()
	return q.Evaluate
}

// Derivative returns p'.
// The derivative of a constant is the zero polynomial.
func (p *Polynomial) Derivative() *Polynomial {

	if p.Degree() == 0 {
		return NewZero()
	}

	coeffs := make([]float64, p.Degree())
	for i := 1; i < len(p.coeffs); i++ {
		coeffs[i-1] = p.coeffs[i] * float64(i)
	}

	return newPolynomial(coeffs)
}

// Limit returns the limit of p(x) when x approaches the given value.
//   - undefined: undefined;
//   - constant polynomial: the constant;
//   - finite: p(approach);
//   - +/-Inf: the sign is given by the leading coefficient, and for odd
//     degrees also by the side of approach.
func (p *Polynomial) Limit(approach xreal.Value) xreal.Value {

	if approach.IsUndefined() {
		return xreal.Undefined()
	}

	if p.Degree() == 0 {
		return xreal.Finite(p.coeffs[0])
	}

	if approach.IsFinite() {
		return xreal.Finite(p.Evaluate(approach.Float64()))
	}

	positive := p.Leading() > 0

	if p.Degree()&1 == 1 && approach.IsInf(-1) {
		positive = !positive
	}

	if positive {
		return xreal.PosInf()
	}

	return xreal.NegInf()
}

// NewtonStopDerivative is the magnitude of the derivative under which
// NewtonRaphson stops iterating.
const NewtonStopDerivative = 1e-12

// NewtonRaphson refines an approximation x0 of a root of p, where prime is
// the derivative of p. The iteration stops when |prime(x)| < NewtonStopDerivative,
// when a step is smaller than tol, or after maxIter iterations.
// It returns the last iterate.
func NewtonRaphson(p, prime *Polynomial, x0, tol float64, maxIter int) float64 {

	x := x0

	for i := 0; i < maxIter; i++ {

		fpx := prime.Evaluate(x)

		if math.Abs(fpx) < NewtonStopDerivative {
			break
		}

		next := x - p.Evaluate(x)/fpx

		if math.Abs(next-x) < tol {
			return next
		}

		x = next
	}

	return x
}
