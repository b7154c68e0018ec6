// Package utils implements various helper functions.
package utils

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of signed integer and floating point types.
type Number interface {
	constraints.Signed | constraints.Float
}

// Abs returns |x|.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns 1 if x > 0, -1 if x < 0 and 0 otherwise.
func Sign[T Number](x T) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Min returns the minimum value of the input values.
func Min[T constraints.Ordered](a, b T) T {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum value of the input values.
func Max[T constraints.Ordered](a, b T) T {
	if a >= b {
		return a
	}
	return b
}

// IsInteger checks if x is within tol of the closest integer.
func IsInteger(x, tol float64) bool {
	return math.Abs(x-math.Round(x)) < tol
}

// GCD computes the greatest common divisor of |a| and |b|.
func GCD[T constraints.Integer](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Divisors returns the positive divisors of |n| in ascending order.
// Divisors are found by trial division up to sqrt(|n|), recording
// both the divisor and its cofactor. Divisors(0) returns nil.
func Divisors(n int64) (divisors []int64) {

	if n < 0 {
		n = -n
	}

	for i := int64(1); i*i <= n; i++ {
		if n%i == 0 {
			divisors = append(divisors, i)
			if i != n/i {
				divisors = append(divisors, n/i)
			}
		}
	}

	SortSlice(divisors)

	return
}
