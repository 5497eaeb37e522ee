package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Period
		wantErr bool
	}{
		{name: "valid period", input: "202403", want: Period("202403")},
		{name: "invalid month", input: "202413", wantErr: true},
		{name: "wrong length", input: "2024-03", wantErr: true},
		{name: "not numeric", input: "abcdef", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeriod(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeriodEndDate(t *testing.T) {
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), Period("202403").EndDate())
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), Period("202402").EndDate())
	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), Period("202312").EndDate())
}

func TestPeriodsBetween(t *testing.T) {
	periods := PeriodsBetween(Period("202311"), Period("202402"))
	assert.Equal(t, []Period{"202311", "202312", "202401", "202402"}, periods)

	assert.Equal(t, []Period{"202401"}, PeriodsBetween(Period("202401"), Period("202401")))
	assert.Nil(t, PeriodsBetween(Period("202402"), Period("202401")))
}

func TestPeriodOrdering(t *testing.T) {
	// String comparison of YYYYMM must match chronological order, the cache
	// and merger rely on it.
	assert.True(t, Period("202312").Before(Period("202401")))
	assert.False(t, Period("202401").Before(Period("202312")))
	assert.False(t, Period("202401").Before(Period("202401")))
}

func TestSolvencyRatio(t *testing.T) {
	record := &CapitalRecord{
		CompanyID:        "CMP001",
		Period:           "202403",
		AvailableCapital: decimal.NewFromInt(215),
		RequiredCapital:  decimal.NewFromInt(100),
	}

	ratio, err := record.SolvencyRatio()
	assert.NoError(t, err)
	assert.True(t, ratio.Equal(decimal.NewFromInt(215)), "got %s", ratio)
}

func TestSolvencyRatioZeroRequiredCapital(t *testing.T) {
	record := &CapitalRecord{
		CompanyID:        "CMP001",
		Period:           "202403",
		AvailableCapital: decimal.NewFromInt(215),
		RequiredCapital:  decimal.Zero,
	}

	_, err := record.SolvencyRatio()
	assert.Error(t, err)

	var dqErr *DataQualityError
	assert.ErrorAs(t, err, &dqErr)
	assert.Equal(t, "CMP001", dqErr.CompanyID)
	assert.Equal(t, Period("202403"), dqErr.Period)
}
