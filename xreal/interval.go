package xreal

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Interval is a set of reals delimited by two extended values.
// A well-formed interval satisfies Lower <= Upper, and Lower == Upper
// only for a finite singleton with both bounds inclusive.
type Interval struct {
	Lower          Value
	Upper          Value
	LowerInclusive bool
	UpperInclusive bool
}

// NewInterval creates a new Interval.
func NewInterval(lower, upper Value, lowerInclusive, upperInclusive bool) Interval {
	return Interval{
		Lower:          lower,
		Upper:          upper,
		LowerInclusive: lowerInclusive,
		UpperInclusive: upperInclusive,
	}
}

// AllReal returns the interval (-Inf, +Inf).
func AllReal() Interval {
	return NewInterval(NegInf(), PosInf(), false, false)
}

// Singleton returns the interval {x}.
func Singleton(x float64) Interval {
	return NewInterval(Finite(x), Finite(x), true, true)
}

// IsUndefined returns true if one of the bounds is undefined.
func (i Interval) IsUndefined() bool {
	return i.Lower.IsUndefined() || i.Upper.IsUndefined()
}

// IsAllReal returns true if i is (-Inf, +Inf).
func (i Interval) IsAllReal() bool {
	return i.Lower.kind == KindNegInf && i.Upper.kind == KindPosInf
}

// IsEmpty returns true if i contains no real number.
// Undefined intervals are not empty.
func (i Interval) IsEmpty() bool {

	if i.IsUndefined() {
		return false
	}

	if i.Lower.kind == KindPosInf || i.Upper.kind == KindNegInf {
		return true
	}

	switch Cmp(i.Lower, i.Upper) {
	case 1:
		return true
	case 0:
		return !i.IsSingleton()
	}

	return false
}

// IsSingleton returns true if i is {x} for a finite x.
func (i Interval) IsSingleton() bool {
	return i.Lower.IsFinite() && i.Upper.IsFinite() &&
		i.Lower.x == i.Upper.x &&
		i.LowerInclusive && i.UpperInclusive
}

// Contains returns true if x belongs to i.
func (i Interval) Contains(x float64) bool {

	if i.IsUndefined() || math.IsNaN(x) {
		return false
	}

	v := Finite(x)

	switch c := Cmp(i.Lower, v); {
	case c > 0, c == 0 && !i.LowerInclusive:
		return false
	}

	switch c := Cmp(v, i.Upper); {
	case c > 0, c == 0 && !i.UpperInclusive:
		return false
	}

	return true
}

// Width returns Upper - Lower: +Inf if a bound is infinite, NaN if a bound
// is undefined and 0 for empty finite intervals.
func (i Interval) Width() float64 {

	if i.IsUndefined() {
		return math.NaN()
	}

	if !i.Lower.IsFinite() || !i.Upper.IsFinite() {
		if i.IsEmpty() {
			return 0
		}
		return math.Inf(1)
	}

	return math.Max(0, i.Upper.x-i.Lower.x)
}

// Midpoint returns the center of a finite interval and NaN otherwise.
func (i Interval) Midpoint() float64 {
	if !i.Lower.IsFinite() || !i.Upper.IsFinite() {
		return math.NaN()
	}
	return i.Lower.x + (i.Upper.x-i.Lower.x)/2
}

// Equal returns true if both intervals have equal bounds and inclusivity flags.
func (i Interval) Equal(other Interval) bool {
	return i.Lower.Equal(other.Lower) && i.Upper.Equal(other.Upper) &&
		i.LowerInclusive == other.LowerInclusive && i.UpperInclusive == other.UpperInclusive
}

// CmpIntervals orders intervals by lower bound, then by upper bound.
func CmpIntervals(a, b Interval) int {
	if c := Cmp(a.Lower, b.Lower); c != 0 {
		return c
	}
	return Cmp(a.Upper, b.Upper)
}

// String returns the canonical textual form of i, for example
// "R", "Empty Interval", "{2}", "[-1, 1)" or "(-Inf, 0)".
func (i Interval) String() string {

	switch {
	case i.IsUndefined():
		return "Undefined Interval"
	case i.IsAllReal():
		return "R"
	case i.IsEmpty():
		return "Empty Interval"
	case i.IsSingleton():
		return fmt.Sprintf("{%s}", i.Lower)
	}

	lower, upper := "(", ")"
	if i.LowerInclusive {
		lower = "["
	}
	if i.UpperInclusive {
		upper = "]"
	}

	return fmt.Sprintf("%s%s, %s%s", lower, i.Lower, i.Upper, upper)
}

type jsonInterval struct {
	Lower          Value  `json:"lower"`
	Upper          Value  `json:"upper"`
	LowerInclusive bool   `json:"lower_inclusive"`
	UpperInclusive bool   `json:"upper_inclusive"`
	Text           string `json:"text"`
}

// MarshalJSON encodes the bounds, the inclusivity flags and the textual form of i.
func (i Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonInterval{
		Lower:          i.Lower,
		Upper:          i.Upper,
		LowerInclusive: i.LowerInclusive,
		UpperInclusive: i.UpperInclusive,
		Text:           i.String(),
	})
}

// UnmarshalJSON decodes i from the output of MarshalJSON.
func (i *Interval) UnmarshalJSON(data []byte) (err error) {
	var ji jsonInterval
	if err = json.Unmarshal(data, &ji); err != nil {
		return fmt.Errorf("cannot UnmarshalJSON: %w", err)
	}
	*i = NewInterval(ji.Lower, ji.Upper, ji.LowerInclusive, ji.UpperInclusive)
	return
}

// Intervals is a sequence of Interval.
type Intervals []Interval

// Sort sorts the intervals in place with CmpIntervals.
// The sort is stable.
func (is Intervals) Sort() {
	sort.SliceStable(is, func(a, b int) bool {
		return CmpIntervals(is[a], is[b]) < 0
	})
}

// String joins the textual forms of the intervals with ", ".
func (is Intervals) String() string {
	s := make([]string, len(is))
	for i := range is {
		s[i] = is[i].String()
	}
	return strings.Join(s, ", ")
}
