/*
Package polyan is a pure Go library for the analysis of single variable real polynomials.
It provides polynomial arithmetic, Sturm sequences, real root finding with multiplicities
and the derivation of the sign, monotonicity and concavity intervals, the extreme and
inflection points, the range and the limits of a polynomial.
*/
package polyan
