package analysis_test

import (
	"fmt"

	"github.com/tuneinsight/polyan/analysis"
	"github.com/tuneinsight/polyan/polynomial"
)

func ExampleAnalyzer_Analyze() {

	analyzer := analysis.NewAnalyzer(analysis.DefaultParameters())

	// x^2 - 1
	an, err := analyzer.Analyze(polynomial.NewPolynomial([]float64{-1, 0, 1}))
	if err != nil {
		panic(err)
	}

	fmt.Println(an.Polynomial)
	fmt.Println(an.Roots)
	fmt.Println(an.PositiveIntervals)
	fmt.Println(an.NegativeIntervals)
	fmt.Println(an.ExtremePoints)
	fmt.Println(an.DecreasingIntervals)
	fmt.Println(an.IncreasingIntervals)
	fmt.Println(an.Range)

	// Output:
	// x^2 - 1
	// -1, 1
	// (-Inf, -1), (1, +Inf)
	// (-1, 1)
	// (0, -1)
	// (-Inf, 0]
	// [0, +Inf)
	// [-1, +Inf)
}
