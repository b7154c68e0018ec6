package analysis

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// PrecisionStats is a struct storing statistics about the residuals |p(r)|
// of a polynomial p at its computed roots r.
type PrecisionStats struct {
	Count int

	MinResidual    float64
	MaxResidual    float64
	MeanResidual   float64
	MedianResidual float64
	STDResidual    float64

	// Precisions are -log2 of the residuals.
	MinPrecision    float64
	MaxPrecision    float64
	MeanPrecision   float64
	MedianPrecision float64
}

func (prec PrecisionStats) String() string {
	return fmt.Sprintf(`
┌─────────┬──────────┬───────────┐
│         │ -Log2    │ Residual  │
├─────────┼──────────┼───────────┤
│MIN Prec │ %8.2f │ %9.3g │
│MAX Prec │ %8.2f │ %9.3g │
│AVG Prec │ %8.2f │ %9.3g │
│MED Prec │ %8.2f │ %9.3g │
└─────────┴──────────┴───────────┘
Roots          : %d
Residual STD   : %5.2f Log2
`,
		prec.MinPrecision, prec.MaxResidual,
		prec.MaxPrecision, prec.MinResidual,
		prec.MeanPrecision, prec.MeanResidual,
		prec.MedianPrecision, prec.MedianResidual,
		prec.Count,
		math.Log2(prec.STDResidual))
}

// Precision computes the statistics of the residuals of the polynomial at its roots.
// The zero value is returned if there is no root.
func (an *Analysis) Precision() (prec PrecisionStats) {

	residuals := make([]float64, len(an.Roots))
	for i, r := range an.Roots {
		residuals[i] = math.Abs(an.Polynomial.Evaluate(r.Value))
	}

	return GetPrecisionStats(residuals)
}

// GetPrecisionStats generates a PrecisionStats struct from a slice of residuals.
func GetPrecisionStats(residuals []float64) (prec PrecisionStats) {

	if len(residuals) == 0 {
		return
	}

	data := stats.Float64Data(residuals)

	prec.Count = len(residuals)

	// errors are only returned on empty inputs
	prec.MinResidual, _ = data.Min()
	prec.MaxResidual, _ = data.Max()
	prec.MeanResidual, _ = data.Mean()
	prec.MedianResidual, _ = data.Median()
	prec.STDResidual, _ = data.StandardDeviation()

	prec.MinPrecision = residualToPrecision(prec.MaxResidual)
	prec.MaxPrecision = residualToPrecision(prec.MinResidual)
	prec.MeanPrecision = residualToPrecision(prec.MeanResidual)
	prec.MedianPrecision = residualToPrecision(prec.MedianResidual)

	return
}

func residualToPrecision(r float64) float64 {
	return math.Log2(1 / r)
}
