package domain

import (
	"time"
)

// CompanySector distinguishes the two insurance sectors reported by the
// statistics API.
type CompanySector string

const (
	CompanySectorLife    CompanySector = "H"
	CompanySectorNonLife CompanySector = "I"
)

type CompanyStatus string

const (
	CompanyStatusActive   CompanyStatus = "ACTIVE"
	CompanyStatusInactive CompanyStatus = "INACTIVE"
)

// Company is an insurance company tracked in the local directory, synced from
// the remote statistics API. ExternalID is the upstream finance code.
type Company struct {
	ID         string        `json:"id"`
	ExternalID string        `json:"external_id"`
	Name       string        `json:"name"`
	Sector     CompanySector `json:"sector"`
	Status     CompanyStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

type SyncCompaniesResponse struct {
	Quantity int    `json:"quantity"`
	Message  string `json:"message"`
	Error    bool   `json:"error"`
}

// AvailablePeriods lists the reporting periods present in the capital cache.
type AvailablePeriods struct {
	Periods []string `json:"periods"`
	Years   []string `json:"years"`
	Months  []string `json:"months"`
}
