package charting

import (
	"github.com/shopspring/decimal"

	"github.com/jmpark86/solvency-monitor-api/internal/domain"
)

var axisUnit = decimal.NewFromInt(1)

// ComputeRange returns display bounds for a value series: the data extent
// widened by paddingFraction of the span on each side. Degenerate inputs get
// a fixed window so the chart never collapses: (-1, 1) for an empty series
// and (v-1, v+1) when every value equals v.
func ComputeRange(values []decimal.Decimal, paddingFraction float64) domain.AxisRange {
	if len(values) == 0 {
		return domain.AxisRange{Min: axisUnit.Neg(), Max: axisUnit}
	}

	min, max := values[0], values[0]
	for _, value := range values[1:] {
		if value.LessThan(min) {
			min = value
		}
		if value.GreaterThan(max) {
			max = value
		}
	}

	if min.Equal(max) {
		return domain.AxisRange{Min: min.Sub(axisUnit), Max: max.Add(axisUnit)}
	}

	padding := max.Sub(min).Mul(decimal.NewFromFloat(paddingFraction))

	return domain.AxisRange{Min: min.Sub(padding), Max: max.Add(padding)}
}
