package ecosdomain

// StatisticRow is one observation of the StatisticSearch endpoint.
type StatisticRow struct {
	StatCode  string `json:"STAT_CODE"`
	ItemCode  string `json:"ITEM_CODE1"`
	Time      string `json:"TIME"`
	DataValue string `json:"DATA_VALUE"`
	UnitName  string `json:"UNIT_NAME"`
}

// StatisticSearchResponse is the success envelope of StatisticSearch. On
// failure ECOS returns a RESULT envelope instead, see ResultEnvelope.
type StatisticSearchResponse struct {
	StatisticSearch struct {
		ListTotalCount int            `json:"list_total_count"`
		Row            []StatisticRow `json:"row"`
	} `json:"StatisticSearch"`
}

// ResultEnvelope is the error shape of the API. Code "INFO-200" means the
// query matched no data and is not treated as a failure.
type ResultEnvelope struct {
	Result *struct {
		Code    string `json:"CODE"`
		Message string `json:"MESSAGE"`
	} `json:"RESULT"`
}

const NoDataCode = "INFO-200"
