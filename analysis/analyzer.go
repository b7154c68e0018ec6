// Package analysis implements the properties engine of real polynomials:
// real root finding with multiplicities and the derivation of extreme points,
// sign, monotonicity and concavity intervals, range and inflection points
// from a polynomial and its first three derivatives.
package analysis

import (
	"io"
	"log"

	"github.com/tuneinsight/polyan/polynomial"
)

// Analyzer finds the roots and the properties of polynomials.
// An Analyzer is stateless apart from its parameters and logger,
// and can be used concurrently.
type Analyzer struct {
	params Parameters
	logger *log.Logger
}

// NewAnalyzer creates a new Analyzer with the given parameters.
// The returned Analyzer discards its logs, see WithLogger.
func NewAnalyzer(params Parameters) *Analyzer {
	return &Analyzer{
		params: params,
		logger: log.New(io.Discard, "", 0),
	}
}

// WithLogger returns a shallow copy of the Analyzer that writes its
// diagnostics (search radius, brackets, capped recursions) on logger.
func (a *Analyzer) WithLogger(logger *log.Logger) *Analyzer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Analyzer{
		params: a.params,
		logger: logger,
	}
}

// Parameters returns the parameters of the Analyzer.
func (a *Analyzer) Parameters() Parameters {
	return a.params
}

// Roots returns the real roots of p with their multiplicities,
// sorted by ascending value.
func (a *Analyzer) Roots(p *polynomial.Polynomial) polynomial.Roots {
	return a.findRoots(p, p.Derivative())
}
