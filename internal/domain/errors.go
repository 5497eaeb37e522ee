package domain

import (
	"errors"
	"fmt"
)

// ErrCacheUnavailable means the persistent period cache cannot be reached.
// Fatal for the current request: dedup correctness cannot be guaranteed, so
// no partial results are returned.
var ErrCacheUnavailable = errors.New("period cache unavailable")

// ErrCompanyNotFound means the requested company is not in the directory.
var ErrCompanyNotFound = errors.New("company not found")

// RemoteFetchError is a failed request to an external source for a single
// period. Recovered at per-period granularity; never fatal to the pipeline.
type RemoteFetchError struct {
	Source string
	Period Period
	Err    error
}

func (e *RemoteFetchError) Error() string {
	return fmt.Sprintf("fetch from %s failed for period %s: %v", e.Source, e.Period, e.Err)
}

func (e *RemoteFetchError) Unwrap() error {
	return e.Err
}

// DataQualityError marks a record that is structurally present but
// semantically invalid. Recovered by exclusion with a reported warning.
type DataQualityError struct {
	CompanyID string
	Period    Period
	Reason    string
}

func (e *DataQualityError) Error() string {
	return fmt.Sprintf("data quality: company %s period %s: %s", e.CompanyID, e.Period, e.Reason)
}

// InvariantViolation signals corrupted cache state such as duplicate or
// out-of-order periods. A programming or data-corruption defect: propagated
// as a hard failure, never retried.
type InvariantViolation struct {
	Reason string
}

func (e *InvariantViolation) Error() string {
	return "invariant violation: " + e.Reason
}
