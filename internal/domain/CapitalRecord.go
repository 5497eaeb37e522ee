package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CapitalRecord is one company's regulatory-capital figures for one reporting
// period, as cached in the database.
type CapitalRecord struct {
	ID               int64           `json:"id"`
	CompanyID        string          `json:"company_id"`
	Period           Period          `json:"period"`
	AvailableCapital decimal.Decimal `json:"available_capital"`
	RequiredCapital  decimal.Decimal `json:"required_capital"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

var hundred = decimal.NewFromInt(100)

// SolvencyRatio returns available capital over required capital as a
// percentage. A zero required capital has no defined ratio and is reported as
// a DataQualityError instead of a zero or infinite value.
func (r *CapitalRecord) SolvencyRatio() (decimal.Decimal, error) {
	if r.RequiredCapital.IsZero() {
		return decimal.Decimal{}, &DataQualityError{
			CompanyID: r.CompanyID,
			Period:    r.Period,
			Reason:    "required capital is zero, solvency ratio undefined",
		}
	}

	return r.AvailableCapital.Div(r.RequiredCapital).Mul(hundred), nil
}
