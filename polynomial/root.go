package polynomial

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tuneinsight/polyan/xreal"
)

// Root is a real root of a polynomial with its multiplicity.
type Root struct {
	Value        float64 `json:"value"`
	Multiplicity int     `json:"multiplicity"`
}

// String returns "v" for simple roots and "v (multiplicity: m)" otherwise.
func (r Root) String() string {
	if r.Multiplicity == 1 {
		return xreal.FormatFloat(r.Value)
	}
	return fmt.Sprintf("%s (multiplicity: %d)", xreal.FormatFloat(r.Value), r.Multiplicity)
}

// Roots is a set of roots holding at most one entry per value.
type Roots []Root

// Add inserts r. If a root with the same value is already present, its
// multiplicity is increased by r.Multiplicity instead of appending a new entry.
// A non positive multiplicity is counted as 1.
func (rs *Roots) Add(r Root) {

	if r.Multiplicity < 1 {
		r.Multiplicity = 1
	}

	for i := range *rs {
		if (*rs)[i].Value == r.Value {
			(*rs)[i].Multiplicity += r.Multiplicity
			return
		}
	}

	*rs = append(*rs, r)
}

// Merge adds all the roots of other to rs.
func (rs *Roots) Merge(other Roots) {
	for _, r := range other {
		rs.Add(r)
	}
}

// Sort sorts the roots by ascending value.
func (rs Roots) Sort() {
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].Value < rs[j].Value
	})
}

// Values returns the values of the roots.
func (rs Roots) Values() (values []float64) {
	values = make([]float64, len(rs))
	for i := range rs {
		values[i] = rs[i].Value
	}
	return
}

// Count returns the sum of the multiplicities.
func (rs Roots) Count() (n int) {
	for _, r := range rs {
		n += r.Multiplicity
	}
	return
}

// String joins the roots with ", ".
func (rs Roots) String() string {
	s := make([]string, len(rs))
	for i := range rs {
		s[i] = rs[i].String()
	}
	return strings.Join(s, ", ")
}

// Point is a point (x, y) of the graph of a polynomial.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// String returns "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", xreal.FormatFloat(p.X), xreal.FormatFloat(p.Y))
}

// Points is a sequence of Point.
type Points []Point

// SortByX sorts the points by ascending abscissa.
func (ps Points) SortByX() {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].X < ps[j].X
	})
}

// String joins the points with ", ".
func (ps Points) String() string {
	s := make([]string, len(ps))
	for i := range ps {
		s[i] = ps[i].String()
	}
	return strings.Join(s, ", ")
}
