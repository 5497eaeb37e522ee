package domain

import "github.com/shopspring/decimal"

// AxisRange holds padded chart axis bounds. Recomputed on every merge, never
// persisted. Min is always strictly below Max.
type AxisRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}
