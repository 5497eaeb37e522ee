package domain

import "github.com/shopspring/decimal"

// MergedPoint is one element of the chart series: a company's solvency ratio
// for a period, aligned with the benchmark yield in effect at that period's
// end. Rate is nil when no yield observation exists at or before the period
// end; it is never zero-filled.
type MergedPoint struct {
	Period        Period           `json:"period"`
	SolvencyRatio decimal.Decimal  `json:"solvency_ratio"`
	Rate          *decimal.Decimal `json:"rate,omitempty"`
}

// MergedSeries is ordered by period, strictly increasing.
type MergedSeries []MergedPoint

// SeriesWarning reports a record excluded from a merged series, so the caller
// can surface the exclusion instead of silently dropping data.
type SeriesWarning struct {
	CompanyID string `json:"company_id"`
	Period    Period `json:"period"`
	Reason    string `json:"reason"`
}

// EnsureResult is the outcome of an acquisition run over a period range:
// which periods were fetched from the remote source and which failed. Periods
// already fully cached appear in neither list.
type EnsureResult struct {
	Fetched []Period        `json:"fetched"`
	Failed  []PeriodFailure `json:"failed"`
}

// PeriodFailure records a per-period fetch failure. The error text is kept as
// a string so the result serializes for the API response.
type PeriodFailure struct {
	Period Period `json:"period"`
	Error  string `json:"error"`
}
