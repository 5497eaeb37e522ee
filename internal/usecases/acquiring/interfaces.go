package acquiring

import (
	"github.com/jmpark86/solvency-monitor-api/internal/domain"
)

// Acquirer coordinates on-demand acquisition of capital records into the
// period cache.
type Acquirer interface {
	// EnsurePeriods guarantees best-effort cache coverage for every period in
	// the inclusive range, fetching only the (company, period) keys not
	// already cached. Periods that were fully cached appear in neither list
	// of the result.
	EnsurePeriods(from, to domain.Period, companies []*domain.Company) (*domain.EnsureResult, error)
}
