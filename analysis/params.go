package analysis

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/tuneinsight/polyan/polynomial"
)

const (
	// DefaultTolerance is the default normal form and integrality threshold.
	DefaultTolerance = 1e-9
	// DefaultNewtonTolerance is the default step size under which Newton-Raphson stops.
	DefaultNewtonTolerance = 1e-7
	// DefaultNewtonMaxIterations is the default maximum number of Newton-Raphson iterations.
	DefaultNewtonMaxIterations = 100
	// DefaultBisectionWidth is the default width under which a bracket is no longer bisected.
	DefaultBisectionWidth = 0.125
	// DefaultInitialSearchRadius is the default radius of the first bracketing interval.
	DefaultInitialSearchRadius = 50
	// DefaultMaxBisectionDepth is the default maximum recursion depth of the bisection.
	DefaultMaxBisectionDepth = 64
	// DefaultMaxSearchDoublings is the default maximum number of doublings of the search radius.
	DefaultMaxSearchDoublings = 64
	// DefaultMaxDegree is the default largest degree accepted by Validate.
	DefaultMaxDegree = 20
	// DefaultMaxCoefficient is the default largest coefficient magnitude accepted by Validate.
	DefaultMaxCoefficient = 1000
)

// ParametersLiteral is a literal representation of the analysis parameters.
// It has public fields and is used to express unchecked user-defined
// parameters literally into Go programs, JSON or YAML documents.
// The NewParametersFromLiteral function is used to generate the actual
// checked parameters from the literal representation.
//
// Fields left to their zero value are substituted with their default value
// at parameter creation (see NewParametersFromLiteral).
type ParametersLiteral struct {
	Tolerance           float64 `json:",omitempty" yaml:"tolerance,omitempty"`
	NewtonTolerance     float64 `json:",omitempty" yaml:"newton_tolerance,omitempty"`
	NewtonMaxIterations int     `json:",omitempty" yaml:"newton_max_iterations,omitempty"`
	BisectionWidth      float64 `json:",omitempty" yaml:"bisection_width,omitempty"`
	InitialSearchRadius float64 `json:",omitempty" yaml:"initial_search_radius,omitempty"`
	MaxBisectionDepth   int     `json:",omitempty" yaml:"max_bisection_depth,omitempty"`
	MaxSearchDoublings  int     `json:",omitempty" yaml:"max_search_doublings,omitempty"`
	SignPrecision       uint    `json:",omitempty" yaml:"sign_precision,omitempty"`
	ParallelRefinement  bool    `json:",omitempty" yaml:"parallel_refinement,omitempty"`
	MaxDegree           int     `json:",omitempty" yaml:"max_degree,omitempty"`
	MaxCoefficient      float64 `json:",omitempty" yaml:"max_coefficient,omitempty"`
}

// Parameters represents a checked set of analysis parameters.
// Its fields are private and immutable. See ParametersLiteral for
// user-specified parameters.
type Parameters struct {
	tolerance           float64
	newtonTolerance     float64
	newtonMaxIterations int
	bisectionWidth      float64
	initialSearchRadius float64
	maxBisectionDepth   int
	maxSearchDoublings  int
	signPrecision       uint
	parallelRefinement  bool
	maxDegree           int
	maxCoefficient      float64
}

// DefaultParameters returns the default analysis parameters.
func DefaultParameters() Parameters {
	params, err := NewParametersFromLiteral(ParametersLiteral{})
	if err != nil {
		panic(err)
	}
	return params
}

// NewParametersFromLiteral instantiates a set of analysis parameters from a
// ParametersLiteral specification. Zero fields are replaced by their default
// value. It returns the empty Parameters{} and a non-nil error wrapping
// ErrInvalidParameters if the specified parameters are invalid.
func NewParametersFromLiteral(pl ParametersLiteral) (params Parameters, err error) {

	if pl.Tolerance == 0 {
		pl.Tolerance = DefaultTolerance
	}

	if pl.NewtonTolerance == 0 {
		pl.NewtonTolerance = DefaultNewtonTolerance
	}

	if pl.NewtonMaxIterations == 0 {
		pl.NewtonMaxIterations = DefaultNewtonMaxIterations
	}

	if pl.BisectionWidth == 0 {
		pl.BisectionWidth = DefaultBisectionWidth
	}

	if pl.InitialSearchRadius == 0 {
		pl.InitialSearchRadius = DefaultInitialSearchRadius
	}

	if pl.MaxBisectionDepth == 0 {
		pl.MaxBisectionDepth = DefaultMaxBisectionDepth
	}

	if pl.MaxSearchDoublings == 0 {
		pl.MaxSearchDoublings = DefaultMaxSearchDoublings
	}

	if pl.MaxDegree == 0 {
		pl.MaxDegree = DefaultMaxDegree
	}

	if pl.MaxCoefficient == 0 {
		pl.MaxCoefficient = DefaultMaxCoefficient
	}

	switch {
	case !positive(pl.Tolerance):
		err = fmt.Errorf("Tolerance=%v must be positive and finite", pl.Tolerance)
	case !positive(pl.NewtonTolerance):
		err = fmt.Errorf("NewtonTolerance=%v must be positive and finite", pl.NewtonTolerance)
	case pl.NewtonMaxIterations < 0:
		err = fmt.Errorf("NewtonMaxIterations=%d cannot be negative", pl.NewtonMaxIterations)
	case !positive(pl.BisectionWidth):
		err = fmt.Errorf("BisectionWidth=%v must be positive and finite", pl.BisectionWidth)
	case !positive(pl.InitialSearchRadius):
		err = fmt.Errorf("InitialSearchRadius=%v must be positive and finite", pl.InitialSearchRadius)
	case pl.MaxBisectionDepth < 0:
		err = fmt.Errorf("MaxBisectionDepth=%d cannot be negative", pl.MaxBisectionDepth)
	case pl.MaxSearchDoublings < 0:
		err = fmt.Errorf("MaxSearchDoublings=%d cannot be negative", pl.MaxSearchDoublings)
	case pl.MaxDegree < 0:
		err = fmt.Errorf("MaxDegree=%d cannot be negative", pl.MaxDegree)
	case !positive(pl.MaxCoefficient):
		err = fmt.Errorf("MaxCoefficient=%v must be positive and finite", pl.MaxCoefficient)
	}

	if err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w: %w", ErrInvalidParameters, err)
	}

	return Parameters{
		tolerance:           pl.Tolerance,
		newtonTolerance:     pl.NewtonTolerance,
		newtonMaxIterations: pl.NewtonMaxIterations,
		bisectionWidth:      pl.BisectionWidth,
		initialSearchRadius: pl.InitialSearchRadius,
		maxBisectionDepth:   pl.MaxBisectionDepth,
		maxSearchDoublings:  pl.MaxSearchDoublings,
		signPrecision:       pl.SignPrecision,
		parallelRefinement:  pl.ParallelRefinement,
		maxDegree:           pl.MaxDegree,
		maxCoefficient:      pl.MaxCoefficient,
	}, nil
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// ParametersLiteral returns the ParametersLiteral of the target Parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		Tolerance:           p.tolerance,
		NewtonTolerance:     p.newtonTolerance,
		NewtonMaxIterations: p.newtonMaxIterations,
		BisectionWidth:      p.bisectionWidth,
		InitialSearchRadius: p.initialSearchRadius,
		MaxBisectionDepth:   p.maxBisectionDepth,
		MaxSearchDoublings:  p.maxSearchDoublings,
		SignPrecision:       p.signPrecision,
		ParallelRefinement:  p.parallelRefinement,
		MaxDegree:           p.maxDegree,
		MaxCoefficient:      p.maxCoefficient,
	}
}

// Tolerance returns the normal form and integrality threshold.
func (p Parameters) Tolerance() float64 {
	return p.tolerance
}

// NewtonTolerance returns the step size under which Newton-Raphson stops.
func (p Parameters) NewtonTolerance() float64 {
	return p.newtonTolerance
}

// NewtonMaxIterations returns the maximum number of Newton-Raphson iterations.
func (p Parameters) NewtonMaxIterations() int {
	return p.newtonMaxIterations
}

// BisectionWidth returns the width under which a bracket holding several roots is no longer bisected.
func (p Parameters) BisectionWidth() float64 {
	return p.bisectionWidth
}

// InitialSearchRadius returns the radius s of the first bracketing interval [-s, s].
func (p Parameters) InitialSearchRadius() float64 {
	return p.initialSearchRadius
}

// MaxBisectionDepth returns the maximum recursion depth of the bisection.
func (p Parameters) MaxBisectionDepth() int {
	return p.maxBisectionDepth
}

// MaxSearchDoublings returns the maximum number of doublings of the search radius.
func (p Parameters) MaxSearchDoublings() int {
	return p.maxSearchDoublings
}

// SignPrecision returns the precision in bits of the Sturm sign evaluations, 0 for float64.
func (p Parameters) SignPrecision() uint {
	return p.signPrecision
}

// ParallelRefinement returns true if the root brackets are refined concurrently.
func (p Parameters) ParallelRefinement() bool {
	return p.parallelRefinement
}

// MaxDegree returns the largest degree accepted by Validate.
func (p Parameters) MaxDegree() int {
	return p.maxDegree
}

// MaxCoefficient returns the largest coefficient magnitude accepted by Validate.
func (p Parameters) MaxCoefficient() float64 {
	return p.maxCoefficient
}

// Equal checks two Parameter structs for equality.
func (p Parameters) Equal(other Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// Validate checks that p is accepted by the validity gate: finite
// coefficients, degree at most MaxDegree and coefficients in
// [-MaxCoefficient, MaxCoefficient].
func (p Parameters) Validate(poly *polynomial.Polynomial) error {

	if !poly.IsFinite() {
		return fmt.Errorf("cannot Validate: %w: %s", ErrNonFinite, poly)
	}

	if poly.Degree() > p.maxDegree {
		return fmt.Errorf("cannot Validate: %w: degree=%d > %d", ErrDegreeTooLarge, poly.Degree(), p.maxDegree)
	}

	for i, c := range poly.Coeffs() {
		if math.Abs(c) > p.maxCoefficient {
			return fmt.Errorf("cannot Validate: %w: coefficient of degree %d is %v, outside [%v, %v]", ErrCoefficientOutOfRange, i, c, -p.maxCoefficient, p.maxCoefficient)
		}
	}

	return nil
}

// MarshalJSON returns a JSON representation of this parameter set. See `Marshal` from the `encoding/json` package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See `Unmarshal` from the `encoding/json` package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return fmt.Errorf("cannot UnmarshalJSON: %w", err)
	}
	*p, err = NewParametersFromLiteral(params)
	return
}

// LoadParameters reads a YAML document into a ParametersLiteral and
// instantiates the corresponding Parameters. Keys follow the snake case
// of the ParametersLiteral yaml tags, for example:
//
//	newton_tolerance: 1e-10
//	parallel_refinement: true
func LoadParameters(r io.Reader) (params Parameters, err error) {

	data, err := io.ReadAll(r)
	if err != nil {
		return Parameters{}, fmt.Errorf("cannot LoadParameters: %w", err)
	}

	var pl ParametersLiteral
	if err = yaml.Unmarshal(data, &pl); err != nil {
		return Parameters{}, fmt.Errorf("cannot LoadParameters: %w", err)
	}

	return NewParametersFromLiteral(pl)
}
