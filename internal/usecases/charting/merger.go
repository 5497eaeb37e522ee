package charting

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmpark86/solvency-monitor-api/internal/domain"
)

// Merge aligns one company's capital records with a benchmark yield series.
// Records must arrive ordered by period with no duplicates, which is what the
// cache hands out; anything else is corrupted state and fails hard. Records
// with a zero required capital are excluded and reported as warnings. The
// rate attached to each point is the last observation dated at or before the
// period's end, or nil when no such observation exists.
func Merge(records []*domain.CapitalRecord, rates []domain.RateRecord) (domain.MergedSeries, []domain.SeriesWarning, error) {
	series := make(domain.MergedSeries, 0, len(records))
	warnings := make([]domain.SeriesWarning, 0)

	var previous domain.Period
	for i, record := range records {
		if i > 0 && record.Period <= previous {
			return nil, nil, &domain.InvariantViolation{
				Reason: fmt.Sprintf("periods not strictly increasing: %s after %s", record.Period, previous),
			}
		}
		previous = record.Period

		ratio, err := record.SolvencyRatio()
		if err != nil {
			if qualityErr, ok := err.(*domain.DataQualityError); ok {
				warnings = append(warnings, domain.SeriesWarning{
					CompanyID: qualityErr.CompanyID,
					Period:    qualityErr.Period,
					Reason:    qualityErr.Reason,
				})
				continue
			}
			return nil, nil, err
		}

		series = append(series, domain.MergedPoint{
			Period:        record.Period,
			SolvencyRatio: ratio,
			Rate:          rateAsOf(rates, record.Period.EndDate()),
		})
	}

	return series, warnings, nil
}

// rateAsOf finds the most recent observation dated at or before the cutoff.
// rates must be sorted ascending by date.
func rateAsOf(rates []domain.RateRecord, cutoff time.Time) *decimal.Decimal {
	idx := sort.Search(len(rates), func(i int) bool {
		return rates[i].Date.After(cutoff)
	})
	if idx == 0 {
		return nil
	}

	yield := rates[idx-1].Yield
	return &yield
}
