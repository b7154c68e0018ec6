package bignum

import (
	"math/big"
)

// MonomialEval evaluates y = sum x^i * poly[i] with the Horner scheme.
// The precision of the result is the precision of x.
func MonomialEval(x *big.Float, poly []*big.Float) (y *big.Float) {

	y = new(big.Float).SetPrec(x.Prec())

	if len(poly) == 0 {
		return
	}

	y.Set(poly[len(poly)-1])
	for i := len(poly) - 2; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, poly[i])
	}

	return
}

// NewRatSlice maps a slice of finite float64 to their exact rational values.
func NewRatSlice(x []float64) (y []*big.Rat) {
	y = make([]*big.Rat, len(x))
	for i := range x {
		y[i] = new(big.Rat).SetFloat64(x[i])
	}
	return
}

// RatEval evaluates y = sum x^i * poly[i] exactly with the Horner scheme.
func RatEval(x *big.Rat, poly []*big.Rat) (y *big.Rat) {

	y = new(big.Rat)

	if len(poly) == 0 {
		return
	}

	y.Set(poly[len(poly)-1])
	for i := len(poly) - 2; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, poly[i])
	}

	return
}
