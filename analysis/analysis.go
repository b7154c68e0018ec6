package analysis

import (
	"fmt"

	"github.com/tuneinsight/polyan/polynomial"
	"github.com/tuneinsight/polyan/utils"
	"github.com/tuneinsight/polyan/xreal"
)

// Analysis holds the properties of a polynomial.
// An Analysis is only produced by Analyzer.Analyze and is read-only.
type Analysis struct {
	Polynomial *polynomial.Polynomial `json:"-"`

	// Derivatives are the first, second and third derivatives.
	Derivatives [3]*polynomial.Polynomial `json:"-"`

	Roots polynomial.Roots `json:"roots"`

	ExtremePoints    polynomial.Points `json:"extreme_points"`
	InflectionPoints polynomial.Points `json:"inflection_points"`

	PositiveIntervals xreal.Intervals `json:"positive_intervals"`
	NegativeIntervals xreal.Intervals `json:"negative_intervals"`

	IncreasingIntervals xreal.Intervals `json:"increasing_intervals"`
	DecreasingIntervals xreal.Intervals `json:"decreasing_intervals"`

	ConcaveIntervals xreal.Intervals `json:"concave_intervals"`
	ConvexIntervals  xreal.Intervals `json:"convex_intervals"`

	Range xreal.Interval `json:"range"`

	LimitAtNegInf xreal.Value `json:"limit_at_neg_inf"`
	LimitAtPosInf xreal.Value `json:"limit_at_pos_inf"`
}

// Analyze computes the properties of p:
//   - the roots of p and of its first two derivatives;
//   - the extreme points, from the roots of p' of odd multiplicity;
//   - the intervals on which p is positive or negative;
//   - the intervals on which p is increasing or decreasing;
//   - the range of p;
//   - the inflection points, from the roots of the second derivative of odd multiplicity;
//   - the intervals on which p is concave or convex;
//   - the limits of p at -Inf and +Inf.
//
// It returns an error if p has non finite coefficients.
func (a *Analyzer) Analyze(p *polynomial.Polynomial) (an *Analysis, err error) {

	if p == nil {
		return nil, fmt.Errorf("cannot Analyze: polynomial is nil")
	}

	if !p.IsFinite() {
		return nil, fmt.Errorf("cannot Analyze: %w: %s", ErrNonFinite, p)
	}

	d1 := p.Derivative()
	d2 := d1.Derivative()
	d3 := d2.Derivative()

	rootsD1 := a.findRoots(d1, d2)
	rootsD2 := a.findRoots(d2, d3)

	an = &Analysis{
		Polynomial:    p.Clone(),
		Derivatives:   [3]*polynomial.Polynomial{d1, d2, d3},
		Roots:         a.findRoots(p, d1),
		LimitAtNegInf: p.Limit(xreal.NegInf()),
		LimitAtPosInf: p.Limit(xreal.PosInf()),
	}

	an.ExtremePoints = criticalPoints(p, rootsD1, 1)
	an.PositiveIntervals, an.NegativeIntervals = signIntervals(an.LimitAtNegInf.Sign(), an.Roots)

	if p.Degree() > 0 {
		an.IncreasingIntervals, an.DecreasingIntervals = sweep(an.LimitAtNegInf.IsInf(-1), an.ExtremePoints)
	}

	an.Range = a.valueRange(p, an.ExtremePoints, rootsD1)

	if p.Degree() > 2 {
		an.InflectionPoints = criticalPoints(p, rootsD2, 2)
		an.ConvexIntervals, an.ConcaveIntervals = sweep(d2.Limit(xreal.NegInf()).IsInf(1), an.InflectionPoints)
	}

	return an, nil
}

// criticalPoints returns the points (x, p(x)) for the roots x of odd
// multiplicity of the derivative of the given order, sorted by x.
// Polynomials of degree at most order have none.
func criticalPoints(p *polynomial.Polynomial, roots polynomial.Roots, order int) (points polynomial.Points) {

	if p.Degree() <= order {
		return
	}

	for _, r := range roots {
		if r.Multiplicity&1 == 0 {
			continue
		}
		points = append(points, polynomial.Point{X: r.Value, Y: p.Evaluate(r.Value)})
	}

	points.SortByX()

	return
}

// signIntervals sweeps the roots from left to right, starting with the given
// sign at -Inf. Each root closes an open interval and flips the sign if its
// multiplicity is odd. A zero sign, which is only the case of the zero
// polynomial, yields no interval.
func signIntervals(sign int, roots polynomial.Roots) (positive, negative xreal.Intervals) {

	if sign == 0 {
		return
	}

	lower := xreal.NegInf()

	add := func(upper xreal.Value) {
		interval := xreal.NewInterval(lower, upper, false, false)
		if sign > 0 {
			positive = append(positive, interval)
		} else {
			negative = append(negative, interval)
		}
	}

	for _, r := range roots {

		upper := xreal.Finite(r.Value)

		add(upper)

		if r.Multiplicity&1 == 1 {
			sign = -sign
		}

		lower = upper
	}

	add(xreal.PosInf())

	positive.Sort()
	negative.Sort()

	return
}

// sweep splits the real line at the abscissas of the points. The first
// interval goes to the first list if first is true, and the lists alternate
// at each point. Bounds are inclusive exactly at the points.
func sweep(first bool, points polynomial.Points) (a, b xreal.Intervals) {

	lower := xreal.NegInf()

	add := func(upper xreal.Value) {
		interval := xreal.NewInterval(lower, upper, lower.IsFinite(), upper.IsFinite())
		if first {
			a = append(a, interval)
		} else {
			b = append(b, interval)
		}
	}

	for _, pt := range points {

		upper := xreal.Finite(pt.X)

		add(upper)

		first = !first
		lower = upper
	}

	add(xreal.PosInf())

	a.Sort()
	b.Sort()

	return
}

// valueRange returns the set of values taken by p: the constant for degree 0,
// R for odd degrees and a half line bounded by the lowest (resp. highest)
// extreme value for even degrees with positive (resp. negative) leading
// coefficient.
func (a *Analyzer) valueRange(p *polynomial.Polynomial, extremePoints polynomial.Points, rootsD1 polynomial.Roots) xreal.Interval {

	switch {
	case p.Degree() == 0:
		return xreal.Singleton(p.Coeff(0))
	case p.Degree()&1 == 1:
		return xreal.AllReal()
	}

	ys := make([]float64, 0, len(extremePoints))
	for _, pt := range extremePoints {
		ys = append(ys, pt.Y)
	}

	if len(ys) == 0 {
		// an even degree polynomial reaches its extremum at a root of odd
		// multiplicity of p', which the isolation missed: use all the roots
		for _, r := range rootsD1 {
			ys = append(ys, p.Evaluate(r.Value))
		}
		a.logger.Printf("polynomial %s: no extreme point, range computed over %d critical points", p, len(ys))
	}

	if len(ys) == 0 {
		return xreal.AllReal()
	}

	if p.Leading() > 0 {
		lowest := ys[0]
		for _, y := range ys[1:] {
			lowest = utils.Min(lowest, y)
		}
		return xreal.NewInterval(xreal.Finite(lowest), xreal.PosInf(), true, false)
	}

	highest := ys[0]
	for _, y := range ys[1:] {
		highest = utils.Max(highest, y)
	}
	return xreal.NewInterval(xreal.NegInf(), xreal.Finite(highest), false, true)
}
