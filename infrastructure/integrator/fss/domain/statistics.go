package fssdomain

// StatisticRow is one row of the statisticsInfoSearch endpoint. The numeric
// value can arrive under different keys depending on the statement layout, so
// RawValue applies the documented priority.
type StatisticRow struct {
	BaseMonth   string `json:"base_month"`
	FinanceCd   string `json:"finance_cd"`
	AccountCd   string `json:"account_cd"`
	AccountNm   string `json:"account_nm"`
	UnitName    string `json:"unit_name"`
	A           string `json:"a"`
	Won         string `json:"won"`
	ColumnValue string `json:"column_value"`
}

// RawValue returns the statistic value, preferring column "a", then "won",
// then "column_value". Values may contain thousands separators.
func (r StatisticRow) RawValue() string {
	if r.A != "" {
		return r.A
	}
	if r.Won != "" {
		return r.Won
	}
	return r.ColumnValue
}

// StatisticsSearchResponse is the envelope returned by
// statisticsInfoSearch.json.
type StatisticsSearchResponse struct {
	Result struct {
		ResultHeader
		List []StatisticRow `json:"list"`
	} `json:"result"`
}
