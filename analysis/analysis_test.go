package analysis

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/polyan/polynomial"
	"github.com/tuneinsight/polyan/utils/sampling"
	"github.com/tuneinsight/polyan/xreal"
)

var flagParamString = flag.String("params", "", "specify the test analysis parameters as a JSON string. Overrides the default test parameters.")

var (
	// TestParamsParallel refines the roots concurrently.
	TestParamsParallel = ParametersLiteral{ParallelRefinement: true}

	// TestParamsBigSign evaluates the Sturm signs with 128 bits of precision.
	TestParamsBigSign = ParametersLiteral{SignPrecision: 128, NewtonTolerance: 1e-10}
)

// TestParams is a set of test parameters for the correctness of the analysis package.
var TestParams = []ParametersLiteral{{}, TestParamsParallel, TestParamsBigSign}

func testString(params Parameters, opname string) string {
	return fmt.Sprintf("%sParallel=%t/SignPrec=%d/NewtonTol=%g",
		opname,
		params.ParallelRefinement(),
		params.SignPrecision(),
		params.NewtonTolerance())
}

func testParameters(t *testing.T) (paramsList []Parameters) {

	literals := TestParams

	if *flagParamString != "" {
		var jsonParams ParametersLiteral
		require.NoError(t, json.Unmarshal([]byte(*flagParamString), &jsonParams))
		literals = []ParametersLiteral{jsonParams} // the custom test suite reads the parameters from the -params flag
	}

	for _, pl := range literals {
		params, err := NewParametersFromLiteral(pl)
		require.NoError(t, err)
		paramsList = append(paramsList, params)
	}

	return
}

// fromRoots returns the monic polynomial with the given integer roots.
func fromRoots(roots ...float64) (p *polynomial.Polynomial) {
	p = polynomial.NewPolynomial([]float64{1})
	for _, r := range roots {
		p = polynomial.Mul(p, polynomial.NewPolynomial([]float64{-r, 1}))
	}
	return
}

var equateRoots = cmpopts.EquateApprox(0, 1e-6)

func TestAnalysis(t *testing.T) {
	for _, params := range testParameters(t) {
		analyzer := NewAnalyzer(params)
		testRoots(analyzer, t)
		testScenarios(analyzer, t)
		testProperties(analyzer, t)
		testReport(analyzer, t)
	}
}

func testRoots(analyzer *Analyzer, t *testing.T) {

	params := analyzer.Parameters()

	for _, tc := range []struct {
		name   string
		coeffs []float64
		want   polynomial.Roots
	}{
		{"Constant", []float64{5}, nil},
		{"Zero", []float64{0}, nil},
		{"Linear", []float64{-4, 2}, polynomial.Roots{{Value: 2, Multiplicity: 1}}},
		{"Quadratic/Distinct", []float64{-1, 0, 1}, polynomial.Roots{{Value: -1, Multiplicity: 1}, {Value: 1, Multiplicity: 1}}},
		{"Quadratic/Double", []float64{1, 2, 1}, polynomial.Roots{{Value: -1, Multiplicity: 2}}},
		{"Quadratic/None", []float64{1, 0, 1}, nil},
		{"Quadratic/Irrational", []float64{-2, 0, 1}, polynomial.Roots{{Value: -math.Sqrt2, Multiplicity: 1}, {Value: math.Sqrt2, Multiplicity: 1}}},
		{"Quadratic/Cancellation", []float64{1, 1e8, 1}, polynomial.Roots{{Value: -1e8, Multiplicity: 1}, {Value: -1e-8, Multiplicity: 1}}},
		{"Cubic/Rational", []float64{-3, -5, -1, 1}, polynomial.Roots{{Value: -1, Multiplicity: 2}, {Value: 3, Multiplicity: 1}}},
		{"Cubic/Triple", []float64{-1, 3, -3, 1}, polynomial.Roots{{Value: 1, Multiplicity: 3}}},
		{"Cubic/ZeroConstant", []float64{0, -3, 0, 1}, polynomial.Roots{{Value: -math.Sqrt(3), Multiplicity: 1}, {Value: 0, Multiplicity: 1}, {Value: math.Sqrt(3), Multiplicity: 1}}},
		{"Cubic/Fractional", []float64{-1, 0, 0, 2}, polynomial.Roots{{Value: math.Cbrt(0.5), Multiplicity: 1}}},
		{"Cubic/RationalFraction", []float64{-1, 2, 0, 0}, polynomial.Roots{{Value: 0.5, Multiplicity: 1}}},
		{"Quartic/ZeroRoot", []float64{0, 0, 0, 0, 1}, polynomial.Roots{{Value: 0, Multiplicity: 4}}},
		{"Quartic/Biquadratic", []float64{6, 0, -5, 0, 1}, polynomial.Roots{
			{Value: -math.Sqrt(3), Multiplicity: 1},
			{Value: -math.Sqrt2, Multiplicity: 1},
			{Value: math.Sqrt2, Multiplicity: 1},
			{Value: math.Sqrt(3), Multiplicity: 1},
		}},
		{"Quartic/DoubleIrrational", []float64{4, 0, -4, 0, 1}, polynomial.Roots{
			{Value: -math.Sqrt2, Multiplicity: 2},
			{Value: math.Sqrt2, Multiplicity: 2},
		}},
		{"Quartic/NoRealRoot", []float64{1, 0, 0, 0, 1}, nil},
		{"Cubic/TinyConstant", []float64{1e-12, 0, 0, 1}, polynomial.Roots{{Value: -1e-4, Multiplicity: 1}}},
		{"Cubic/SmallConstant", []float64{1e-10, 0, 0, 1}, polynomial.Roots{{Value: -math.Cbrt(1e-10), Multiplicity: 1}}},
		{"Cubic/FarRoot", fromRoots(1000, 0.5, 0.25).Coeffs(), polynomial.Roots{
			{Value: 0.25, Multiplicity: 1},
			{Value: 0.5, Multiplicity: 1},
			{Value: 1000, Multiplicity: 1},
		}},
	} {
		t.Run(testString(params, "Roots/"+tc.name+"/"), func(t *testing.T) {

			p := polynomial.NewPolynomial(tc.coeffs)
			roots := analyzer.Roots(p)

			require.True(t, cmp.Equal(tc.want, roots, equateRoots, cmpopts.EquateEmpty()), cmp.Diff(tc.want, roots, equateRoots))
		})
	}

	t.Run(testString(params, "Roots/RealCoefficients/"), func(t *testing.T) {

		// x^5 - 1.5x + 0.5 = (x - 1)(x^4 + x^3 + x^2 + x - 0.5)
		p := polynomial.NewPolynomial([]float64{0.5, -1.5, 0, 0, 0, 1})
		roots := analyzer.Roots(p)

		require.Equal(t, 3, len(roots), roots.String())
		require.InDelta(t, 1, roots[2].Value, 1e-9)
		for _, r := range roots {
			require.Equal(t, 1, r.Multiplicity)
			require.InDelta(t, 0, p.Evaluate(r.Value), 1e-9, r.String())
		}
	})
}

func testScenarios(analyzer *Analyzer, t *testing.T) {

	params := analyzer.Parameters()

	t.Run(testString(params, "Analyze/Cubic/"), func(t *testing.T) {

		an, err := analyzer.Analyze(polynomial.NewPolynomial([]float64{0, -3, 0, 1}))
		require.NoError(t, err)

		require.Equal(t, "3x^2 - 3", an.Derivatives[0].String())
		require.Equal(t, "6x", an.Derivatives[1].String())
		require.Equal(t, "6", an.Derivatives[2].String())

		require.Equal(t, "-1.73205, 0, 1.73205", an.Roots.String())
		require.Equal(t, "(-1.73205, 0), (1.73205, +Inf)", an.PositiveIntervals.String())
		require.Equal(t, "(-Inf, -1.73205), (0, 1.73205)", an.NegativeIntervals.String())
		require.Equal(t, "(-1, 2), (1, -2)", an.ExtremePoints.String())
		require.Equal(t, "(-Inf, -1], [1, +Inf)", an.IncreasingIntervals.String())
		require.Equal(t, "[-1, 1]", an.DecreasingIntervals.String())
		require.Equal(t, "(0, 0)", an.InflectionPoints.String())
		require.Equal(t, "(-Inf, 0]", an.ConcaveIntervals.String())
		require.Equal(t, "[0, +Inf)", an.ConvexIntervals.String())
		require.Equal(t, "R", an.Range.String())
		require.True(t, an.LimitAtNegInf.IsInf(-1))
		require.True(t, an.LimitAtPosInf.IsInf(1))
	})

	t.Run(testString(params, "Analyze/Quartic/"), func(t *testing.T) {

		an, err := analyzer.Analyze(polynomial.NewMonomial(4, 1))
		require.NoError(t, err)

		require.Equal(t, polynomial.Roots{{Value: 0, Multiplicity: 4}}, an.Roots)
		require.Equal(t, "(-Inf, 0), (0, +Inf)", an.PositiveIntervals.String())
		require.Empty(t, an.NegativeIntervals)
		require.Equal(t, "(0, 0)", an.ExtremePoints.String())
		require.Equal(t, "(-Inf, 0]", an.DecreasingIntervals.String())
		require.Equal(t, "[0, +Inf)", an.IncreasingIntervals.String())
		require.Empty(t, an.InflectionPoints)
		require.Equal(t, "R", an.ConvexIntervals.String())
		require.Empty(t, an.ConcaveIntervals)
		require.Equal(t, "[0, +Inf)", an.Range.String())
	})

	t.Run(testString(params, "Analyze/DoubleRoot/"), func(t *testing.T) {

		// (x + 1)^2 (x - 3)
		an, err := analyzer.Analyze(polynomial.NewPolynomial([]float64{-3, -5, -1, 1}))
		require.NoError(t, err)

		require.Equal(t, "-1 (multiplicity: 2), 3", an.Roots.String())
		require.Equal(t, "(3, +Inf)", an.PositiveIntervals.String())
		require.Equal(t, "(-Inf, -1), (-1, 3)", an.NegativeIntervals.String())
		require.Equal(t, 2, len(an.ExtremePoints))
		require.InDelta(t, -1, an.ExtremePoints[0].X, 1e-9)
		require.InDelta(t, 0, an.ExtremePoints[0].Y, 1e-9)
		require.InDelta(t, 5.0/3, an.ExtremePoints[1].X, 1e-9)
		require.InDelta(t, -256.0/27, an.ExtremePoints[1].Y, 1e-9)
		require.Equal(t, "R", an.Range.String())
	})

	t.Run(testString(params, "Analyze/Biquadratic/"), func(t *testing.T) {

		an, err := analyzer.Analyze(polynomial.NewPolynomial([]float64{6, 0, -5, 0, 1}))
		require.NoError(t, err)

		require.Equal(t, 4, an.Roots.Count())
		require.Equal(t, "(-Inf, -1.73205), (-1.41421, 1.41421), (1.73205, +Inf)", an.PositiveIntervals.String())
		require.Equal(t, "(-1.73205, -1.41421), (1.41421, 1.73205)", an.NegativeIntervals.String())
		require.Equal(t, "(-1.58114, -0.25), (0, 6), (1.58114, -0.25)", an.ExtremePoints.String())
		require.Equal(t, "[-0.25, +Inf)", an.Range.String())

		require.Equal(t, 2, len(an.InflectionPoints))
		require.InDelta(t, -math.Sqrt(5.0/6), an.InflectionPoints[0].X, 1e-9)
		require.InDelta(t, 91.0/36, an.InflectionPoints[0].Y, 1e-9)
		require.Equal(t, 2, len(an.ConvexIntervals))
		require.Equal(t, 1, len(an.ConcaveIntervals))
	})

	t.Run(testString(params, "Analyze/PerfectSquare/"), func(t *testing.T) {

		an, err := analyzer.Analyze(polynomial.NewPolynomial([]float64{1, 2, 1}))
		require.NoError(t, err)

		require.Equal(t, "-1 (multiplicity: 2)", an.Roots.String())
		require.Equal(t, "(-Inf, -1), (-1, +Inf)", an.PositiveIntervals.String())
		require.Equal(t, "(-1, 0)", an.ExtremePoints.String())
		require.Equal(t, "[0, +Inf)", an.Range.String())
		require.Empty(t, an.InflectionPoints)
		require.Empty(t, an.ConvexIntervals)
		require.Empty(t, an.ConcaveIntervals)
	})

	t.Run(testString(params, "Analyze/NegativeLeading/"), func(t *testing.T) {

		// -x^2 + 4
		an, err := analyzer.Analyze(polynomial.NewPolynomial([]float64{4, 0, -1}))
		require.NoError(t, err)

		require.Equal(t, "-2, 2", an.Roots.String())
		require.Equal(t, "(-2, 2)", an.PositiveIntervals.String())
		require.Equal(t, "(-Inf, -2), (2, +Inf)", an.NegativeIntervals.String())
		require.Equal(t, "(-Inf, 4]", an.Range.String())
		require.True(t, an.LimitAtNegInf.IsInf(-1))
		require.True(t, an.LimitAtPosInf.IsInf(-1))
	})

	t.Run(testString(params, "Analyze/Linear/"), func(t *testing.T) {

		an, err := analyzer.Analyze(polynomial.NewPolynomial([]float64{-4, 2}))
		require.NoError(t, err)

		require.Equal(t, "2", an.Roots.String())
		require.Equal(t, "(2, +Inf)", an.PositiveIntervals.String())
		require.Equal(t, "(-Inf, 2)", an.NegativeIntervals.String())
		require.Empty(t, an.ExtremePoints)
		require.Equal(t, "R", an.IncreasingIntervals.String())
		require.Empty(t, an.DecreasingIntervals)
		require.Equal(t, "R", an.Range.String())
	})

	t.Run(testString(params, "Analyze/Constant/"), func(t *testing.T) {

		an, err := analyzer.Analyze(polynomial.NewPolynomial([]float64{-5}))
		require.NoError(t, err)

		require.Empty(t, an.Roots)
		require.Empty(t, an.PositiveIntervals)
		require.Equal(t, "R", an.NegativeIntervals.String())
		require.Empty(t, an.IncreasingIntervals)
		require.Empty(t, an.DecreasingIntervals)
		require.Equal(t, "{-5}", an.Range.String())
		require.True(t, an.LimitAtNegInf.Equal(xreal.Finite(-5)))
		require.True(t, an.LimitAtPosInf.Equal(xreal.Finite(-5)))
	})

	t.Run(testString(params, "Analyze/Zero/"), func(t *testing.T) {

		an, err := analyzer.Analyze(polynomial.NewZero())
		require.NoError(t, err)

		require.Empty(t, an.Roots)
		require.Empty(t, an.PositiveIntervals)
		require.Empty(t, an.NegativeIntervals)
		require.Equal(t, "{0}", an.Range.String())
	})

	t.Run(testString(params, "Analyze/Invalid/"), func(t *testing.T) {

		_, err := analyzer.Analyze(nil)
		require.Error(t, err)

		_, err = analyzer.Analyze(polynomial.NewPolynomial([]float64{1, math.NaN()}))
		require.ErrorIs(t, err, ErrNonFinite)

		_, err = analyzer.Analyze(polynomial.NewPolynomial([]float64{math.Inf(1), 1}))
		require.ErrorIs(t, err, ErrNonFinite)
	})
}

func testProperties(analyzer *Analyzer, t *testing.T) {

	params := analyzer.Parameters()

	prng, err := sampling.NewKeyedPRNG([]byte{'r', 'o', 'o', 't', 's'})
	require.NoError(t, err)

	t.Run(testString(params, "Properties/IntegerRoots/"), func(t *testing.T) {

		for i := 0; i < 32; i++ {

			degree := sampling.RandInt(prng, 1, 6)

			roots := make([]float64, degree)
			for j := range roots {
				roots[j] = float64(sampling.RandInt(prng, -5, 5))
			}

			p := fromRoots(roots...)

			an, err := analyzer.Analyze(p)
			require.NoError(t, err)

			// the multiplicities add up to the degree
			require.Equal(t, degree, an.Roots.Count(), fmt.Sprintf("%s: %s", p, an.Roots))

			for _, r := range an.Roots {
				require.InDelta(t, 0, p.Evaluate(r.Value), 1e-6, fmt.Sprintf("%s at %s", p, r))
			}

			testPartition(t, an)
			testMonotonicity(t, an)
		}
	})

	t.Run(testString(params, "Properties/RandomPolynomials/"), func(t *testing.T) {

		for i := 0; i < 32; i++ {

			degree := sampling.RandInt(prng, 0, 7)

			coeffs := make([]float64, degree+1)
			for j := range coeffs {
				coeffs[j] = float64(sampling.RandInt(prng, -9, 9))
			}
			coeffs[degree] = float64(sampling.RandInt(prng, 1, 9))

			p := polynomial.NewPolynomial(coeffs)

			an, err := analyzer.Analyze(p)
			require.NoError(t, err)

			require.LessOrEqual(t, an.Roots.Count(), p.Degree(), p.String())
			require.True(t, isStrictlySorted(an.Roots), an.Roots.String())

			for _, r := range an.Roots {
				scale := 1 + math.Abs(r.Value)
				require.InDelta(t, 0, p.Evaluate(r.Value)/math.Pow(scale, float64(p.Degree())), 1e-6, fmt.Sprintf("%s at %s", p, r))
			}

			testPartition(t, an)
			testMonotonicity(t, an)
		}
	})
}

func isStrictlySorted(roots polynomial.Roots) bool {
	for i := 1; i < len(roots); i++ {
		if roots[i-1].Value >= roots[i].Value {
			return false
		}
	}
	return true
}

// testPartition checks that the sign intervals tile the real line, the roots excepted.
func testPartition(t *testing.T, an *Analysis) {

	partition := an.Partition()

	if an.Polynomial.IsZero() {
		require.Empty(t, partition)
		return
	}

	require.Equal(t, len(an.Roots)+1, len(partition), an.Polynomial.String())
	require.True(t, partition[0].Lower.IsInf(-1))
	require.True(t, partition[len(partition)-1].Upper.IsInf(1))

	for i := range partition {
		require.False(t, partition[i].LowerInclusive)
		require.False(t, partition[i].UpperInclusive)
		if i > 0 {
			require.True(t, partition[i-1].Upper.Equal(partition[i].Lower), partition.String())
		}
	}

	// the sign of p agrees with the intervals at their midpoints
	for _, interval := range an.PositiveIntervals {
		if interval.Lower.IsFinite() && interval.Upper.IsFinite() {
			require.Greater(t, an.Polynomial.Evaluate(interval.Midpoint()), 0.0, interval.String())
		}
	}

	for _, interval := range an.NegativeIntervals {
		if interval.Lower.IsFinite() && interval.Upper.IsFinite() {
			require.Less(t, an.Polynomial.Evaluate(interval.Midpoint()), 0.0, interval.String())
		}
	}
}

// testMonotonicity checks that increasing and decreasing intervals alternate
// at the extreme points.
func testMonotonicity(t *testing.T, an *Analysis) {

	if an.Polynomial.Degree() == 0 {
		require.Empty(t, an.IncreasingIntervals)
		require.Empty(t, an.DecreasingIntervals)
		return
	}

	n := len(an.IncreasingIntervals) + len(an.DecreasingIntervals)
	require.Equal(t, len(an.ExtremePoints)+1, n, an.Polynomial.String())

	diff := len(an.IncreasingIntervals) - len(an.DecreasingIntervals)
	require.True(t, diff >= -1 && diff <= 1)
}

func testReport(analyzer *Analyzer, t *testing.T) {

	params := analyzer.Parameters()

	an, err := analyzer.Analyze(polynomial.NewPolynomial([]float64{0, -3, 0, 1}))
	require.NoError(t, err)

	t.Run(testString(params, "Report/String/"), func(t *testing.T) {
		report := an.String()
		require.Contains(t, report, "Polynomial formula: x^3 - 3x\n")
		require.Contains(t, report, "Degree: 3\n")
		require.Contains(t, report, "Roots count: 3\n")
		require.Contains(t, report, "Roots: -1.73205, 0, 1.73205\n")
		require.Contains(t, report, "Extreme Points: (-1, 2), (1, -2)\n")
		require.Contains(t, report, "Range: R\n")
	})

	t.Run(testString(params, "Report/JSON/"), func(t *testing.T) {

		data, err := json.Marshal(an)
		require.NoError(t, err)

		var decoded struct {
			Formula      string           `json:"formula"`
			Degree       int              `json:"degree"`
			Coefficients []float64        `json:"coefficients"`
			Derivatives  [3]string        `json:"derivatives"`
			Roots        polynomial.Roots `json:"roots"`
			Range        xreal.Interval   `json:"range"`
			Increasing   xreal.Intervals  `json:"increasing_intervals"`
			LimitNeg     xreal.Value      `json:"limit_at_neg_inf"`
		}

		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Equal(t, "x^3 - 3x", decoded.Formula)
		require.Equal(t, 3, decoded.Degree)
		require.Equal(t, []float64{0, -3, 0, 1}, decoded.Coefficients)
		require.Equal(t, [3]string{"3x^2 - 3", "6x", "6"}, decoded.Derivatives)
		require.True(t, cmp.Equal(an.Roots, decoded.Roots))
		require.True(t, an.Range.Equal(decoded.Range))
		require.Equal(t, an.IncreasingIntervals.String(), decoded.Increasing.String())
		require.True(t, decoded.LimitNeg.IsInf(-1))
	})

	t.Run(testString(params, "Report/Precision/"), func(t *testing.T) {

		prec := an.Precision()
		require.Equal(t, 3, prec.Count)
		require.LessOrEqual(t, prec.MinResidual, prec.MedianResidual)
		require.LessOrEqual(t, prec.MedianResidual, prec.MaxResidual)
		require.Less(t, prec.MaxResidual, 1e-6)
		require.Greater(t, prec.MinPrecision, 19.0)
		require.Contains(t, prec.String(), "Roots          : 3")
	})
}

func TestPrecisionStats(t *testing.T) {

	t.Run("Empty", func(t *testing.T) {
		require.Equal(t, PrecisionStats{}, GetPrecisionStats(nil))
	})

	t.Run("Residuals", func(t *testing.T) {
		prec := GetPrecisionStats([]float64{0.25, 0.5, 1.0 / 1024})
		require.Equal(t, 3, prec.Count)
		require.Equal(t, 1.0/1024, prec.MinResidual)
		require.Equal(t, 0.5, prec.MaxResidual)
		require.Equal(t, 0.25, prec.MedianResidual)
		require.InDelta(t, 1.0, prec.MinPrecision, 1e-12)
		require.InDelta(t, 10.0, prec.MaxPrecision, 1e-12)
		require.InDelta(t, 2.0, prec.MedianPrecision, 1e-12)
	})
}

func TestAnalyzerLogger(t *testing.T) {

	var buf bytes.Buffer

	params, err := NewParametersFromLiteral(ParametersLiteral{MaxSearchDoublings: 1, InitialSearchRadius: 1})
	require.NoError(t, err)

	analyzer := NewAnalyzer(params).WithLogger(log.New(&buf, "", 0))

	// x^3 - 1000000x - 1 has a root near 1000, far outside [-2, 2]
	roots := analyzer.Roots(polynomial.NewPolynomial([]float64{-1, -1e6, 0, 1}))
	require.NotEmpty(t, buf.String())
	require.Contains(t, buf.String(), "search radius capped")
	require.LessOrEqual(t, roots.Count(), 3)

	require.NotPanics(t, func() { NewAnalyzer(params).WithLogger(nil).Roots(polynomial.NewMonomial(3, 1)) })
}

func TestDivides(t *testing.T) {

	var buf bytes.Buffer
	analyzer := NewAnalyzer(DefaultParameters()).WithLogger(log.New(&buf, "", 0))

	t.Run("Exact", func(t *testing.T) {
		// (x^2 - 2)^2 / (2x^2 - 4)
		quotient, ok := analyzer.divides(polynomial.NewPolynomial([]float64{4, 0, -4, 0, 1}), polynomial.NewPolynomial([]float64{-4, 0, 2}))
		require.True(t, ok)
		require.True(t, quotient.EqualApprox(polynomial.NewPolynomial([]float64{-1, 0, 0.5}), 1e-12), quotient.String())
	})

	t.Run("TrimmedRemainder", func(t *testing.T) {
		// the remainder 1e-12 of x^3 + 1e-12 by x^2 is below polynomial.Epsilon
		_, rem := polynomial.Div(polynomial.NewPolynomial([]float64{1e-12, 0, 0, 1}), polynomial.NewMonomial(2, 1))
		require.True(t, rem.IsZero())

		_, ok := analyzer.divides(polynomial.NewPolynomial([]float64{1e-12, 0, 0, 1}), polynomial.NewMonomial(2, 1))
		require.False(t, ok)
	})

	t.Run("Constant", func(t *testing.T) {
		_, ok := analyzer.divides(polynomial.NewMonomial(3, 1), polynomial.NewPolynomial([]float64{2}))
		require.True(t, ok)
	})

	t.Run("Roots", func(t *testing.T) {
		roots := analyzer.Roots(polynomial.NewPolynomial([]float64{1e-12, 0, 0, 1}))
		require.Equal(t, 1, roots.Count())
		require.Equal(t, 1, roots[0].Multiplicity)
		require.InDelta(t, -1e-4, roots[0].Value, 1e-9)
		require.Contains(t, buf.String(), "does not divide it")
	})
}

func TestCache(t *testing.T) {

	cache := NewCache(NewAnalyzer(DefaultParameters()), 2)

	p0 := polynomial.NewPolynomial([]float64{0, -3, 0, 1})
	p1 := polynomial.NewPolynomial([]float64{-1, 0, 1})
	p2 := polynomial.NewPolynomial([]float64{1, 2, 1})

	t.Run("Get", func(t *testing.T) {

		an0, err := cache.Get(p0)
		require.NoError(t, err)
		require.Equal(t, 1, cache.Len())

		again, err := cache.Get(polynomial.NewPolynomial([]float64{0, -3, 0, 1}))
		require.NoError(t, err)
		require.Same(t, an0, again)
		require.Equal(t, 1, cache.Len())
	})

	t.Run("Eviction", func(t *testing.T) {

		_, err := cache.Get(p1)
		require.NoError(t, err)
		_, err = cache.Get(p2)
		require.NoError(t, err)
		require.Equal(t, 2, cache.Len())

		an0, err := cache.Get(p0)
		require.NoError(t, err)
		require.Equal(t, "-1.73205, 0, 1.73205", an0.Roots.String())
		require.Equal(t, 2, cache.Len())
	})

	t.Run("Errors", func(t *testing.T) {

		_, err := cache.Get(nil)
		require.Error(t, err)

		_, err = cache.Get(polynomial.NewPolynomial([]float64{math.NaN()}))
		require.ErrorIs(t, err, ErrNonFinite)
		require.Equal(t, 2, cache.Len())
	})

	t.Run("Concurrent", func(t *testing.T) {

		cache.Reset()
		require.Equal(t, 0, cache.Len())

		var wg sync.WaitGroup
		wg.Add(16)
		for i := 0; i < 16; i++ {
			go func(i int) {
				defer wg.Done()
				an, err := cache.Get([]*polynomial.Polynomial{p0, p1, p2}[i%3])
				assert.NoError(t, err)
				assert.NotNil(t, an)
			}(i)
		}
		wg.Wait()

		require.LessOrEqual(t, cache.Len(), 2)
	})

	t.Run("DefaultCapacity", func(t *testing.T) {
		require.Equal(t, DefaultCacheCapacity, NewCache(NewAnalyzer(DefaultParameters()), 0).capacity)
	})
}
