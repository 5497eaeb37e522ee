package charting

import (
	"github.com/jmpark86/solvency-monitor-api/internal/domain"
)

// Charter builds the merged solvency chart for a company. Acquisition happens
// on demand: building a chart first ensures the period cache covers the
// requested range.
type Charter interface {
	// BuildChart returns the merged series with axis ranges for one company
	// over an inclusive period range.
	BuildChart(companyID string, from, to domain.Period) (*domain.ChartResponse, error)

	// GetAvailablePeriods returns the reporting periods present in the cache,
	// for populating range selectors.
	GetAvailablePeriods() (*domain.AvailablePeriods, error)
}
