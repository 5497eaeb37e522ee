package domain

// ChartResponse is the payload of the solvency chart endpoint: the merged
// series for one company plus the display ranges for both axes and everything
// that went wrong along the way.
type ChartResponse struct {
	CompanyID     string          `json:"company_id"`
	CompanyName   string          `json:"company_name"`
	From          Period          `json:"from"`
	To            Period          `json:"to"`
	Series        MergedSeries    `json:"series"`
	RatioAxis     AxisRange       `json:"ratio_axis"`
	RateAxis      AxisRange       `json:"rate_axis"`
	Warnings      []SeriesWarning `json:"warnings"`
	FailedPeriods []PeriodFailure `json:"failed_periods"`
}
