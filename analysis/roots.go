package analysis

import (
	"math"
	"math/big"
	"sync"

	"github.com/tuneinsight/polyan/polynomial"
	"github.com/tuneinsight/polyan/sturm"
	"github.com/tuneinsight/polyan/utils"
	"github.com/tuneinsight/polyan/utils/bignum"
	"github.com/tuneinsight/polyan/xreal"
)

// maxExactInteger is the largest integer such that all smaller integers are exactly
// representable as float64.
const maxExactInteger = 1 << 53

// boundPrecision is the precision in bits of the root bound computation.
const boundPrecision = 64

// bracket is an interval (lo, hi] holding count distinct roots.
type bracket struct {
	lo, hi float64
	count  int
}

// findRoots returns the real roots of p, where prime is the derivative
// of p used by the Newton-Raphson refinement.
func (a *Analyzer) findRoots(p, prime *polynomial.Polynomial) (roots polynomial.Roots) {

	switch p.Degree() {
	case 0:
		return
	case 1:
		roots.Add(polynomial.Root{Value: clean(-p.Coeff(0) / p.Coeff(1)), Multiplicity: 1})
		return
	case 2:
		return a.quadraticRoots(p)
	}

	switch {
	case p.Coeff(0) == 0:

		// p = x * q
		roots.Add(polynomial.Root{Value: 0, Multiplicity: 1})
		reduced, _ := polynomial.Div(p, polynomial.NewMonomial(1, 1))
		roots.Merge(a.findRoots(reduced, reduced.Derivative()))

	case p.IsInteger():

		var ok bool
		if roots, ok = a.rationalRoots(p); !ok {
			roots = a.irrationalRoots(p, prime)
		}

	default:
		roots = a.irrationalRoots(p, prime)
	}

	roots.Sort()

	return
}

// quadraticRoots solves ax^2 + bx + c = 0 with the cancellation free
// form q = -(b + sign(b)sqrt(D))/2, x1 = q/a, x2 = c/q.
// A discriminant within Tolerance of zero, relative to the magnitude
// of its terms, is treated as zero.
func (a *Analyzer) quadraticRoots(p *polynomial.Polynomial) (roots polynomial.Roots) {

	qa, qb, qc := p.Coeff(2), p.Coeff(1), p.Coeff(0)

	b2, ac4 := qb*qb, 4*qa*qc
	d := b2 - ac4

	if math.Abs(d) <= a.params.tolerance*math.Max(b2, math.Abs(ac4)) {
		d = 0
	}

	switch {
	case d < 0:
		return
	case d == 0:
		roots.Add(polynomial.Root{Value: clean(-qb / (2 * qa)), Multiplicity: 2})
		return
	}

	sqrtD := math.Sqrt(d)

	var q float64
	if qb >= 0 {
		q = -0.5 * (qb + sqrtD)
	} else {
		q = -0.5 * (qb - sqrtD)
	}

	roots.Add(polynomial.Root{Value: clean(q / qa), Multiplicity: 1})
	roots.Add(polynomial.Root{Value: clean(qc / q), Multiplicity: 1})
	roots.Sort()

	return
}

// rationalRoots applies the rational root theorem to an integer polynomial
// with a non zero constant term: every rational root is ±c/l where c divides
// the constant term and l divides the leading coefficient. Each candidate is
// evaluated exactly. The polynomial is then deflated by the found roots and
// the search recurses on the quotient.
// The second return value is false if no rational root was found or if the
// coefficients are too large for the divisor search.
func (a *Analyzer) rationalRoots(p *polynomial.Polynomial) (roots polynomial.Roots, ok bool) {

	coeffs := p.Coeffs()
	for i := range coeffs {
		coeffs[i] = math.Round(coeffs[i])
	}

	c0, cn := coeffs[0], coeffs[len(coeffs)-1]

	if math.Abs(c0) >= maxExactInteger || math.Abs(cn) >= maxExactInteger || c0 == 0 || cn == 0 {
		return nil, false
	}

	constantDivisors := utils.Divisors(int64(c0))
	leadingDivisors := utils.Divisors(int64(cn))

	// candidates in lowest terms, so that 2/2 and 1/1 are tested once
	candidates := make([][2]int64, 0, 2*len(constantDivisors)*len(leadingDivisors))
	for _, c := range constantDivisors {
		for _, l := range leadingDivisors {
			g := utils.GCD(c, l)
			candidates = append(candidates, [2]int64{c / g, l / g}, [2]int64{-c / g, l / g})
		}
	}

	candidates = utils.GetDistincts(candidates)

	exact := bignum.NewRatSlice(coeffs)

	var found [][2]int64
	for _, c := range candidates {
		if bignum.RatEval(big.NewRat(c[0], c[1]), exact).Sign() == 0 {
			found = append(found, c)
		}
	}

	if len(found) == 0 {
		return nil, false
	}

	// deflates by the primitive factors l*x - c, which keeps the quotient integral
	reduced := polynomial.NewPolynomial(coeffs)
	for _, c := range found {
		roots.Add(polynomial.Root{Value: float64(c[0]) / float64(c[1]), Multiplicity: 1})
		reduced, _ = polynomial.Div(reduced, polynomial.NewPolynomial([]float64{float64(-c[0]), float64(c[1])}))
	}

	roots.Merge(a.findRoots(reduced, reduced.Derivative()))
	roots.Sort()

	return roots, true
}

// irrationalRoots isolates the real roots of p with its Sturm sequence and
// refines each isolating bracket with Newton-Raphson.
func (a *Analyzer) irrationalRoots(p, prime *polynomial.Polynomial) (roots polynomial.Roots) {

	seq := sturm.NewSequenceWithPrecision(p, a.params.signPrecision)

	total := seq.CountRoots(xreal.AllReal())

	if total <= 0 {
		return
	}

	radius := a.searchRadius(p, seq, total)

	var brackets []bracket
	a.isolate(seq, radius, total, &brackets)

	a.logger.Printf("polynomial %s: %d distinct real roots isolated in %d brackets of [-%g, %g]", p, total, len(brackets), radius, radius)

	// Newton-Raphson converges quadratically on the square free part of p,
	// which has the same roots as p, all simple.
	gcd := seq.GCD()
	target, targetPrime := p, prime
	if gcd.Degree() > 0 {
		if quotient, ok := a.divides(p, gcd); ok {
			target, targetPrime = quotient, quotient.Derivative()
		} else {
			a.logger.Printf("polynomial %s: discarding %s from the Sturm sequence, which does not divide it", p, gcd)
			gcd = polynomial.NewPolynomial([]float64{1})
		}
	}

	values := make([]polynomial.Root, len(brackets))

	refine := func(i int) {
		b := brackets[i]
		multiplicity := b.count
		if b.count == 1 {
			multiplicity += a.extraMultiplicity(gcd, b)
		}
		values[i] = polynomial.Root{
			Value:        clean(a.refine(target, targetPrime, b)),
			Multiplicity: multiplicity,
		}
	}

	if a.params.parallelRefinement && len(brackets) > 1 {
		var wg sync.WaitGroup
		wg.Add(len(brackets))
		for i := range brackets {
			go func(i int) {
				defer wg.Done()
				refine(i)
			}(i)
		}
		wg.Wait()
	} else {
		for i := range brackets {
			refine(i)
		}
	}

	for _, r := range values {
		roots.Add(r)
	}

	roots.Sort()

	return
}

// searchRadius returns a radius s such that [-s, s] holds the total number
// of distinct real roots of p. Starting from InitialSearchRadius, s is
// doubled at most MaxSearchDoublings times and stops growing once it
// exceeds twice the Fujiwara bound of the roots of p.
func (a *Analyzer) searchRadius(p *polynomial.Polynomial, seq *sturm.Sequence, total int) (radius float64) {

	radius = a.params.initialSearchRadius
	limit := 2 * bignum.FujiwaraBound(p.Coeffs(), boundPrecision)

	for i := 0; seq.CountRoots(closed(-radius, radius)) < total; i++ {

		if i >= a.params.maxSearchDoublings || radius > limit {
			a.logger.Printf("polynomial %s: search radius capped at %g after %d doublings (root bound %g)", p, radius, i, limit/2)
			break
		}

		radius *= 2
	}

	return
}

// isolate bisects [-radius, radius] until each bracket holds a single root,
// is narrower than BisectionWidth or reaches MaxBisectionDepth.
func (a *Analyzer) isolate(seq *sturm.Sequence, radius float64, total int, brackets *[]bracket) {
	a.bisect(seq, bracket{lo: -radius, hi: radius, count: total}, 0, brackets)
}

func (a *Analyzer) bisect(seq *sturm.Sequence, b bracket, depth int, brackets *[]bracket) {

	mid := b.lo + (b.hi-b.lo)/2

	for _, half := range []bracket{{lo: b.lo, hi: mid}, {lo: mid, hi: b.hi}} {

		half.count = seq.CountRoots(closed(half.lo, half.hi))

		switch {
		case half.count <= 0:
			continue
		case half.count > 1 && half.hi-half.lo > a.params.bisectionWidth:
			if depth+1 >= a.params.maxBisectionDepth {
				a.logger.Printf("bisection depth capped at %d on (%g, %g] holding %d roots", a.params.maxBisectionDepth, half.lo, half.hi, half.count)
				*brackets = append(*brackets, half)
				continue
			}
			a.bisect(seq, half, depth+1, brackets)
		default:
			*brackets = append(*brackets, half)
		}
	}
}

// refine returns an approximation of the root of p in the bracket, starting
// Newton-Raphson from its midpoint. If the iterate leaves the bracket, the
// root is approximated by bisection on the sign change of p.
func (a *Analyzer) refine(p, prime *polynomial.Polynomial, b bracket) float64 {

	mid := b.lo + (b.hi-b.lo)/2

	x := polynomial.NewtonRaphson(p, prime, mid, a.params.newtonTolerance, a.params.newtonMaxIterations)

	if !math.IsNaN(x) && x >= b.lo && x <= b.hi {
		return x
	}

	a.logger.Printf("newton iterate %g left (%g, %g], falling back to bisection", x, b.lo, b.hi)

	lo, hi := b.lo, b.hi
	slo, shi := utils.Sign(p.Evaluate(lo)), utils.Sign(p.Evaluate(hi))

	switch {
	case shi == 0:
		return hi
	case slo == 0 || slo == shi:
		// no usable sign change
		return mid
	}

	for hi-lo > a.params.newtonTolerance {

		m := lo + (hi-lo)/2

		if m <= lo || m >= hi {
			break
		}

		switch sm := utils.Sign(p.Evaluate(m)); {
		case sm == 0:
			return m
		case sm == slo:
			lo = m
		default:
			hi = m
		}
	}

	return lo + (hi-lo)/2
}

// extraMultiplicity returns m-1 where m is the multiplicity of the root of p in
// the bracket, given g = gcd(p, p'). A root of p of multiplicity m is a root
// of g of multiplicity m-1.
func (a *Analyzer) extraMultiplicity(g *polynomial.Polynomial, b bracket) int {

	if g.Degree() == 0 {
		return 0
	}

	seq := sturm.NewSequenceWithPrecision(g, a.params.signPrecision)

	if seq.CountRoots(closed(b.lo, b.hi)) == 0 {
		return 0
	}

	next := seq.GCD()
	if _, ok := a.divides(g, next); !ok {
		return 1
	}

	return 1 + a.extraMultiplicity(next, b)
}

// divides returns p/g and true if g divides p. The remainder of Div trims
// its coefficients below polynomial.Epsilon, so p is instead compared with
// (p/g)*g coefficient by coefficient: each non zero coefficient of p must
// match within Tolerance relative to itself, each zero coefficient within
// Tolerance relative to the largest coefficient of p.
func (a *Analyzer) divides(p, g *polynomial.Polynomial) (quotient *polynomial.Polynomial, ok bool) {

	if g.IsZero() {
		return nil, false
	}

	quotient, _ = polynomial.Div(p, g)

	want, have := p.Coeffs(), polynomial.Mul(quotient, g).Coeffs()

	var scale float64
	for _, c := range want {
		scale = utils.Max(scale, utils.Abs(c))
	}

	for i, c := range want {

		var d float64
		if i < len(have) {
			d = have[i]
		}

		bound := utils.Abs(c)
		if c == 0 {
			bound = scale
		}

		if utils.Abs(c-d) > a.params.tolerance*bound {
			return quotient, false
		}
	}

	return quotient, true
}

func closed(lo, hi float64) xreal.Interval {
	return xreal.NewInterval(xreal.Finite(lo), xreal.Finite(hi), true, true)
}

// clean maps -0 to 0.
func clean(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x
}
