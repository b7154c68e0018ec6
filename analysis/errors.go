package analysis

import "errors"

var (
	// ErrInvalidParameters is returned when a ParametersLiteral cannot be
	// turned into valid Parameters.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrNonFinite is returned by Parameters.Validate for polynomials
	// with NaN or infinite coefficients.
	ErrNonFinite = errors.New("non finite coefficient")

	// ErrDegreeTooLarge is returned by Parameters.Validate for polynomials
	// whose degree exceeds Parameters.MaxDegree.
	ErrDegreeTooLarge = errors.New("degree too large")

	// ErrCoefficientOutOfRange is returned by Parameters.Validate for polynomials
	// with a coefficient outside [-Parameters.MaxCoefficient, Parameters.MaxCoefficient].
	ErrCoefficientOutOfRange = errors.New("coefficient out of range")
)
