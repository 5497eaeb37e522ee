package fssdomain

// Company is one row of the companySearch endpoint.
type Company struct {
	FinanceCd string `json:"finance_cd"`
	FinanceNm string `json:"finance_nm"`
}

// CompanySearchResponse is the envelope returned by companySearch.json.
type CompanySearchResponse struct {
	Result struct {
		ResultHeader
		List []Company `json:"list"`
	} `json:"result"`
}
