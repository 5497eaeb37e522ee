package domain

import (
	"fmt"
	"time"
)

// Period is a reporting period identifier in the canonical YYYYMM form.
// The string form sorts chronologically, so periods can be compared and
// ordered without conversion.
type Period string

const periodLayout = "200601"

// ParsePeriod validates and normalizes a YYYYMM string into a Period.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse(periodLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid period %q: expected YYYYMM: %w", s, err)
	}
	return Period(t.Format(periodLayout)), nil
}

// PeriodFromTime returns the Period containing the given instant.
func PeriodFromTime(t time.Time) Period {
	return Period(t.Format(periodLayout))
}

func (p Period) String() string {
	return string(p)
}

// Time returns midnight UTC on the first day of the period's month.
func (p Period) Time() time.Time {
	t, err := time.Parse(periodLayout, string(p))
	if err != nil {
		return time.Time{}
	}
	return t
}

// EndDate returns the last day of the period's month. Rate records dated at
// or before this day are candidates for the as-of join.
func (p Period) EndDate() time.Time {
	return p.Time().AddDate(0, 1, -1)
}

// Next returns the period one month after p.
func (p Period) Next() Period {
	return PeriodFromTime(p.Time().AddDate(0, 1, 0))
}

// Before reports whether p is chronologically before other.
func (p Period) Before(other Period) bool {
	return p < other
}

// PeriodsBetween enumerates every period from `from` to `to` inclusive, in
// ascending order. Returns nil when from is after to.
func PeriodsBetween(from, to Period) []Period {
	if from > to {
		return nil
	}

	periods := make([]Period, 0)
	for p := from; p <= to; p = p.Next() {
		periods = append(periods, p)
	}

	return periods
}
