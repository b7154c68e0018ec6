package bignum

import (
	"math"
	"math/big"
)

// FujiwaraBound returns an upper bound on the absolute value of the
// complex roots of the polynomial sum x^i * coeffs[i]:
//
//	2 * max(|a_{n-1}/a_n|, |a_{n-2}/a_n|^(1/2), ..., |a_0/(2a_n)|^(1/n))
//
// The n-th roots are computed with prec bits of precision.
// Returns 0 if the polynomial has degree smaller than one and +Inf
// if the leading coefficient is zero.
func FujiwaraBound(coeffs []float64, prec uint) float64 {

	n := len(coeffs) - 1

	if n < 1 {
		return 0
	}

	if coeffs[n] == 0 {
		return math.Inf(1)
	}

	lead := NewFloat(coeffs[n], prec)
	lead.Abs(lead)

	bound := new(big.Float).SetPrec(prec)
	ratio := new(big.Float).SetPrec(prec)

	for i := 1; i <= n; i++ {

		c := coeffs[n-i]

		if c == 0 {
			continue
		}

		ratio.SetFloat64(math.Abs(c))
		ratio.Quo(ratio, lead)

		if i == n {
			ratio.Quo(ratio, NewFloat(2, prec))
		}

		if i > 1 {
			// ratio^(1/i)
			e := NewFloat(1, prec)
			e.Quo(e, NewFloat(i, prec))
			ratio = Pow(ratio, e)
		}

		if ratio.Cmp(bound) > 0 {
			bound.Set(ratio)
		}
	}

	bound.Mul(bound, NewFloat(2, prec))

	f, _ := bound.Float64()

	return f
}
