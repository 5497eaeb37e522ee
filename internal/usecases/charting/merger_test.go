package charting_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmpark86/solvency-monitor-api/internal/domain"
	"github.com/jmpark86/solvency-monitor-api/internal/usecases/charting"
)

func record(period domain.Period, available, required int64) *domain.CapitalRecord {
	return &domain.CapitalRecord{
		CompanyID:        "aaa111",
		Period:           period,
		AvailableCapital: decimal.NewFromInt(available),
		RequiredCapital:  decimal.NewFromInt(required),
	}
}

func rate(date string, yield string) domain.RateRecord {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return domain.RateRecord{Date: d, Yield: decimal.RequireFromString(yield)}
}

func TestMergeAttachesMostRecentRateBeforePeriodEnd(t *testing.T) {
	records := []*domain.CapitalRecord{record("202403", 215, 100)}
	rates := []domain.RateRecord{
		rate("2024-03-15", "3.5"),
		rate("2024-04-02", "3.8"),
	}

	series, warnings, err := charting.Merge(records, rates)

	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, series, 1)

	assert.Equal(t, domain.Period("202403"), series[0].Period)
	assert.True(t, series[0].SolvencyRatio.Equal(decimal.NewFromInt(215)))
	// The 2024-04-02 observation is after the period end and must not win.
	require.NotNil(t, series[0].Rate)
	assert.True(t, series[0].Rate.Equal(decimal.RequireFromString("3.5")))
}

func TestMergeRateExactlyOnPeriodEndWins(t *testing.T) {
	records := []*domain.CapitalRecord{record("202403", 120, 100)}
	rates := []domain.RateRecord{
		rate("2024-03-20", "3.4"),
		rate("2024-03-31", "3.6"),
	}

	series, _, err := charting.Merge(records, rates)

	require.NoError(t, err)
	require.Len(t, series, 1)
	require.NotNil(t, series[0].Rate)
	assert.True(t, series[0].Rate.Equal(decimal.RequireFromString("3.6")))
}

func TestMergeNoRateBeforePeriodEnd(t *testing.T) {
	records := []*domain.CapitalRecord{record("202401", 150, 100)}
	rates := []domain.RateRecord{rate("2024-02-05", "3.2")}

	series, warnings, err := charting.Merge(records, rates)

	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, series, 1)
	assert.Nil(t, series[0].Rate)
}

func TestMergeExcludesZeroRequiredCapital(t *testing.T) {
	records := []*domain.CapitalRecord{
		record("202401", 150, 100),
		record("202402", 999, 0),
		record("202403", 180, 100),
	}

	series, warnings, err := charting.Merge(records, nil)

	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, domain.Period("202401"), series[0].Period)
	assert.Equal(t, domain.Period("202403"), series[1].Period)

	require.Len(t, warnings, 1)
	assert.Equal(t, "aaa111", warnings[0].CompanyID)
	assert.Equal(t, domain.Period("202402"), warnings[0].Period)
	assert.Contains(t, warnings[0].Reason, "required capital is zero")
}

func TestMergeDuplicatePeriodsFailHard(t *testing.T) {
	records := []*domain.CapitalRecord{
		record("202401", 150, 100),
		record("202401", 160, 100),
	}

	series, warnings, err := charting.Merge(records, nil)

	require.Error(t, err)
	assert.Nil(t, series)
	assert.Nil(t, warnings)

	var violation *domain.InvariantViolation
	assert.ErrorAs(t, err, &violation)
}

func TestMergeOutOfOrderPeriodsFailHard(t *testing.T) {
	records := []*domain.CapitalRecord{
		record("202403", 150, 100),
		record("202401", 160, 100),
	}

	_, _, err := charting.Merge(records, nil)

	var violation *domain.InvariantViolation
	require.ErrorAs(t, err, &violation)
}

func TestMergeEmptyRecords(t *testing.T) {
	series, warnings, err := charting.Merge(nil, []domain.RateRecord{rate("2024-01-10", "3.1")})

	require.NoError(t, err)
	assert.Empty(t, series)
	assert.Empty(t, warnings)
}

func TestMergePreservesPeriodOrdering(t *testing.T) {
	records := []*domain.CapitalRecord{
		record("202312", 140, 100),
		record("202401", 150, 100),
		record("202402", 160, 100),
	}

	series, _, err := charting.Merge(records, nil)

	require.NoError(t, err)
	require.Len(t, series, 3)
	for i := 1; i < len(series); i++ {
		assert.True(t, series[i-1].Period.Before(series[i].Period))
	}
}
