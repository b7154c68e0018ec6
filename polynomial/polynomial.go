// Package polynomial implements dense single-variable real polynomials:
// construction in normal form, arithmetic, evaluation, derivation, limits,
// formatting and serialization, together with the Root and Point
// containers used to report their properties.
package polynomial

import (
	"fmt"
	"math"

	"github.com/tuneinsight/polyan/utils"
)

// Epsilon is the threshold under which a leading coefficient is considered
// to be zero, and the distance to the closest integer under which a
// coefficient is considered to be integral.
const Epsilon = 1e-9

// Polynomial is a dense polynomial sum coeffs[i] * x^i with float64 coefficients.
// A Polynomial is always in normal form: the leading coefficient has
// absolute value at least Epsilon, unless the degree is zero.
// A Polynomial is immutable once created; all operations return new instances.
type Polynomial struct {
	coeffs  []float64
	formula string
}

// NewPolynomial creates a new Polynomial from its coefficients, indexed by exponent.
// Leading coefficients smaller than Epsilon in absolute value are trimmed.
// An empty slice yields the zero polynomial.
func NewPolynomial(coeffs []float64) *Polynomial {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return newPolynomial(c)
}

// NewPolynomialWithDegree creates a new Polynomial from the pair (coeffs, degree),
// reading the coefficients coeffs[0], ..., coeffs[degree].
// This is the form in which formula parsers report their result.
func NewPolynomialWithDegree(coeffs []float64, degree int) (*Polynomial, error) {

	if degree < 0 {
		return nil, fmt.Errorf("cannot NewPolynomialWithDegree: degree=%d is negative", degree)
	}

	if len(coeffs) < degree+1 {
		return nil, fmt.Errorf("cannot NewPolynomialWithDegree: len(coeffs)=%d < degree+1=%d", len(coeffs), degree+1)
	}

	return NewPolynomial(coeffs[:degree+1]), nil
}

// NewZero returns the zero polynomial.
func NewZero() *Polynomial {
	return newPolynomial([]float64{0})
}

// NewMonomial returns c * x^degree.
func NewMonomial(degree int, c float64) *Polynomial {
	if degree < 0 {
		degree = 0
	}
	coeffs := make([]float64, degree+1)
	coeffs[degree] = c
	return newPolynomial(coeffs)
}

// NewBinomial returns x^degree + c.
func NewBinomial(degree int, c float64) *Polynomial {
	if degree < 0 {
		degree = 0
	}
	coeffs := make([]float64, degree+1)
	coeffs[degree] = 1
	coeffs[0] += c
	return newPolynomial(coeffs)
}

// newPolynomial takes ownership of coeffs.
func newPolynomial(coeffs []float64) (p *Polynomial) {
	p = &Polynomial{coeffs: normalize(coeffs)}
	p.formula = format(p.coeffs)
	return
}

// normalize trims the leading coefficients smaller than Epsilon and
// returns the zero polynomial [0] if all coefficients were trimmed.
func normalize(coeffs []float64) []float64 {

	n := len(coeffs) - 1

	for n >= 0 && math.Abs(coeffs[n]) < Epsilon {
		n--
	}

	if n < 0 {
		if len(coeffs) == 0 {
			return []float64{0}
		}
		coeffs[0] = 0
		return coeffs[:1]
	}

	return coeffs[:n+1]
}

// Degree returns the degree of the polynomial.
// The zero polynomial has degree 0.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coeffs returns a copy of the coefficients, indexed by exponent.
func (p *Polynomial) Coeffs() (coeffs []float64) {
	coeffs = make([]float64, len(p.coeffs))
	copy(coeffs, p.coeffs)
	return
}

// Coeff returns the coefficient of x^i, which is zero for i out of range.
func (p *Polynomial) Coeff(i int) float64 {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// Leading returns the leading coefficient.
func (p *Polynomial) Leading() float64 {
	return p.coeffs[len(p.coeffs)-1]
}

// Clone returns a deep copy of the polynomial.
func (p *Polynomial) Clone() *Polynomial {
	return &Polynomial{coeffs: p.Coeffs(), formula: p.formula}
}

// Equal returns true if both polynomials have exactly the same coefficients.
func (p *Polynomial) Equal(other *Polynomial) bool {

	if p == nil || other == nil {
		return p == other
	}

	if len(p.coeffs) != len(other.coeffs) {
		return false
	}

	for i := range p.coeffs {
		if p.coeffs[i] != other.coeffs[i] {
			return false
		}
	}

	return true
}

// EqualApprox returns true if both polynomials have the same degree and
// coefficients within tol of each other.
func (p *Polynomial) EqualApprox(other *Polynomial, tol float64) bool {

	if p == nil || other == nil {
		return p == other
	}

	if len(p.coeffs) != len(other.coeffs) {
		return false
	}

	for i := range p.coeffs {
		if math.Abs(p.coeffs[i]-other.coeffs[i]) > tol {
			return false
		}
	}

	return true
}

// IsZero returns true if p is the zero polynomial.
func (p *Polynomial) IsZero() bool {
	return len(p.coeffs) == 1 && p.coeffs[0] == 0
}

// IsInteger returns true if all the coefficients are within Epsilon of an integer.
func (p *Polynomial) IsInteger() bool {
	for _, c := range p.coeffs {
		if !utils.IsInteger(c, Epsilon) {
			return false
		}
	}
	return true
}

// IsFinite returns true if no coefficient is NaN or infinite.
func (p *Polynomial) IsFinite() bool {
	for _, c := range p.coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// String returns the display formula of the polynomial, for example "x^2 + 2x + 1".
func (p *Polynomial) String() string {
	return p.formula
}
