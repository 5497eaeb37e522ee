package charting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jmpark86/solvency-monitor-api/internal/usecases/charting"
)

func decimals(values ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		out = append(out, decimal.NewFromInt(v))
	}
	return out
}

func TestComputeRangePadsDataExtent(t *testing.T) {
	// Span 50, padding 10% on each side.
	result := charting.ComputeRange(decimals(100, 150, 120), 0.1)

	assert.True(t, result.Min.Equal(decimal.NewFromInt(95)), "min: %s", result.Min)
	assert.True(t, result.Max.Equal(decimal.NewFromInt(155)), "max: %s", result.Max)
}

func TestComputeRangeEmptySeries(t *testing.T) {
	result := charting.ComputeRange(nil, 0.1)

	assert.True(t, result.Min.Equal(decimal.NewFromInt(-1)))
	assert.True(t, result.Max.Equal(decimal.NewFromInt(1)))
}

func TestComputeRangeSingleValue(t *testing.T) {
	result := charting.ComputeRange(decimals(215), 0.1)

	assert.True(t, result.Min.Equal(decimal.NewFromInt(214)))
	assert.True(t, result.Max.Equal(decimal.NewFromInt(216)))
}

func TestComputeRangeIdenticalValues(t *testing.T) {
	// All values equal behaves like a single value.
	result := charting.ComputeRange(decimals(42, 42, 42), 0.25)

	assert.True(t, result.Min.Equal(decimal.NewFromInt(41)))
	assert.True(t, result.Max.Equal(decimal.NewFromInt(43)))
}

func TestComputeRangeNegativeValues(t *testing.T) {
	result := charting.ComputeRange(decimals(-50, 50), 0.1)

	assert.True(t, result.Min.Equal(decimal.NewFromInt(-60)))
	assert.True(t, result.Max.Equal(decimal.NewFromInt(60)))
}

func TestComputeRangeMinStrictlyBelowMax(t *testing.T) {
	cases := [][]decimal.Decimal{
		nil,
		decimals(7),
		decimals(3, 3),
		decimals(1, 2, 3),
	}

	for _, values := range cases {
		result := charting.ComputeRange(values, 0.1)
		assert.True(t, result.Min.LessThan(result.Max))
	}
}
