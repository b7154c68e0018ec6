// Package sturm implements Sturm sequences of real polynomials, which count
// the distinct real roots of a polynomial in an interval through the number
// of sign changes of the sequence at the interval bounds.
//
// Counts are exact when the bounds are not roots of the polynomial. At a
// multiple root evaluated in floating point the sign of the sequence
// members can be ambiguous, and the count is then an approximation.
package sturm

import (
	"math/big"

	"github.com/tuneinsight/polyan/polynomial"
	"github.com/tuneinsight/polyan/utils/bignum"
	"github.com/tuneinsight/polyan/xreal"
)

// Sequence is the Sturm sequence [p0, p1, ..., pk] of a polynomial p, where
// p0 = p, p1 = p' and p{i+1} = -rem(p{i-1}, p{i}). The chain stops when the
// last member has degree 0 or when the remainder is zero.
type Sequence struct {
	polys []*polynomial.Polynomial

	// Prec is the precision in bits used to evaluate the sign of the sequence
	// members at finite points. If zero, the evaluation is carried in float64.
	Prec uint

	// coefficients as big.Float, populated when Prec > 0
	bigCoeffs [][]*big.Float
}

// NewSequence builds the Sturm sequence of p.
func NewSequence(p *polynomial.Polynomial) (s *Sequence) {

	polys := []*polynomial.Polynomial{p.Clone(), p.Derivative()}

	for polys[len(polys)-1].Degree() > 0 {

		_, rem := polynomial.Div(polys[len(polys)-2], polys[len(polys)-1])

		if rem.IsZero() {
			break
		}

		polys = append(polys, polynomial.MulScalar(rem, -1))
	}

	return &Sequence{polys: polys}
}

// NewSequenceWithPrecision builds the Sturm sequence of p that evaluates
// signs at finite points with prec bits of precision.
func NewSequenceWithPrecision(p *polynomial.Polynomial, prec uint) (s *Sequence) {
	s = NewSequence(p)
	s.SetPrecision(prec)
	return
}

// SetPrecision sets the precision in bits used for the evaluation
// at finite points; 0 selects float64 evaluation.
func (s *Sequence) SetPrecision(prec uint) {

	s.Prec = prec
	s.bigCoeffs = nil

	if prec == 0 {
		return
	}

	s.bigCoeffs = make([][]*big.Float, len(s.polys))
	for i := range s.polys {
		s.bigCoeffs[i] = bignum.NewFloatSlice(s.polys[i].Coeffs(), prec)
	}
}

// Len returns the number of polynomials in the sequence.
func (s *Sequence) Len() int {
	return len(s.polys)
}

// Polynomials returns the members of the sequence.
func (s *Sequence) Polynomials() []*polynomial.Polynomial {
	polys := make([]*polynomial.Polynomial, len(s.polys))
	copy(polys, s.polys)
	return polys
}

// GCD returns the last member of the sequence, which is a greatest common
// divisor of p and p' up to a scalar factor. Its degree is positive if and
// only if p has a multiple root.
func (s *Sequence) GCD() *polynomial.Polynomial {
	return s.polys[len(s.polys)-1]
}

// SignAt returns the sign of p at x: the sign of p(x) for finite x
// (0 for an exact zero), the sign of the limit of p for x = +/-Inf,
// and 0 for an undefined x.
func SignAt(p *polynomial.Polynomial, x xreal.Value) int {
	switch {
	case x.IsFinite():
		return signOf(p.Evaluate(x.Float64()))
	case x.IsInf(0):
		return p.Limit(x).Sign()
	default:
		return 0
	}
}

func signOf(y float64) int {
	switch {
	case y > 0:
		return 1
	case y < 0:
		return -1
	default:
		return 0
	}
}

// signAt returns the sign of the i-th member of the sequence at x.
func (s *Sequence) signAt(i int, x xreal.Value) int {

	if s.Prec == 0 || s.bigCoeffs == nil || !x.IsFinite() {
		return SignAt(s.polys[i], x)
	}

	return bignum.MonomialEval(bignum.NewFloat(x.Float64(), s.Prec), s.bigCoeffs[i]).Sign()
}

// SignChanges returns the number of sign changes of the sequence at x.
// Zero signs are skipped: they carry the previous non zero sign.
func (s *Sequence) SignChanges(x xreal.Value) (changes int) {

	previous := s.signAt(0, x)

	for i := 1; i < len(s.polys); i++ {

		current := s.signAt(i, x)

		if current != 0 && previous != 0 && current != previous {
			changes++
		}

		if current != 0 {
			previous = current
		}
	}

	return
}

// CountRoots returns the number of distinct real roots of p in the interval,
// SignChanges(lower) - SignChanges(upper). The inclusivity flags of the
// interval are ignored.
func (s *Sequence) CountRoots(interval xreal.Interval) int {
	return s.SignChanges(interval.Lower) - s.SignChanges(interval.Upper)
}
