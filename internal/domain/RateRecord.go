package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateRecord is one observation of the benchmark yield series. Yield is kept
// as a decimal because zero is a valid observation and must stay
// distinguishable from missing data downstream.
type RateRecord struct {
	Date  time.Time       `json:"date"`
	Yield decimal.Decimal `json:"yield"`
}
