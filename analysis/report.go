package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tuneinsight/polyan/xreal"
)

// String renders the properties as a multi-line report.
func (an *Analysis) String() string {

	var sb strings.Builder

	line := func(format string, args ...interface{}) {
		fmt.Fprintf(&sb, format, args...)
		sb.WriteByte('\n')
	}

	line("Polynomial formula: %s", an.Polynomial)
	line("Degree: %d", an.Polynomial.Degree())
	line("")
	line("Roots count: %d", len(an.Roots))
	line("Roots: %s", an.Roots)
	line("")
	line("Positive Value Intervals: %s", an.PositiveIntervals)
	line("Negative Value Intervals: %s", an.NegativeIntervals)
	line("")
	line("Extreme Points: %s", an.ExtremePoints)
	line("")
	line("Increasing Intervals: %s", an.IncreasingIntervals)
	line("Decreasing Intervals: %s", an.DecreasingIntervals)
	line("")
	line("Inflection Points: %s", an.InflectionPoints)
	line("")
	line("Concave Intervals: %s", an.ConcaveIntervals)
	line("Convex Intervals: %s", an.ConvexIntervals)
	line("")
	line("Limit at -Inf: %s", an.LimitAtNegInf)
	line("Limit at +Inf: %s", an.LimitAtPosInf)
	line("")
	line("Range: %s", an.Range)

	return sb.String()
}

// Partition returns the positive and negative intervals merged and sorted.
// Apart from the roots, the intervals tile the real line.
func (an *Analysis) Partition() (partition xreal.Intervals) {
	partition = make(xreal.Intervals, 0, len(an.PositiveIntervals)+len(an.NegativeIntervals))
	partition = append(partition, an.PositiveIntervals...)
	partition = append(partition, an.NegativeIntervals...)
	partition.Sort()
	return
}

// MarshalJSON encodes the analysis together with the formula, the
// coefficients and the derivatives of the polynomial.
func (an *Analysis) MarshalJSON() ([]byte, error) {

	type analysis Analysis

	var derivatives [3]string
	for i, d := range an.Derivatives {
		if d != nil {
			derivatives[i] = d.String()
		}
	}

	return json.Marshal(struct {
		Formula      string    `json:"formula"`
		Degree       int       `json:"degree"`
		Coefficients []float64 `json:"coefficients"`
		Derivatives  [3]string `json:"derivatives"`
		*analysis
	}{
		Formula:      an.Polynomial.String(),
		Degree:       an.Polynomial.Degree(),
		Coefficients: an.Polynomial.Coeffs(),
		Derivatives:  derivatives,
		analysis:     (*analysis)(an),
	})
}
