package analytics

// Formato de requisição/resposta do endpoint :runReport

type dateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type namedField struct {
	Name string `json:"name"`
}

type stringFilter struct {
	MatchType string `json:"matchType"`
	Value     string `json:"value"`
}

type dimensionFilter struct {
	FieldName    string        `json:"fieldName"`
	StringFilter *stringFilter `json:"stringFilter,omitempty"`
}

type filterExpression struct {
	Filter *dimensionFilter `json:"filter,omitempty"`
}

type reportRequest struct {
	DateRanges      []dateRange       `json:"dateRanges"`
	Dimensions      []namedField      `json:"dimensions,omitempty"`
	Metrics         []namedField      `json:"metrics"`
	DimensionFilter *filterExpression `json:"dimensionFilter,omitempty"`
	Limit           int               `json:"limit,omitempty"`
}

type reportValue struct {
	Value string `json:"value"`
}

type reportRow struct {
	DimensionValues []reportValue `json:"dimensionValues,omitempty"`
	MetricValues    []reportValue `json:"metricValues,omitempty"`
}

type reportResponse struct {
	Rows     []reportRow `json:"rows,omitempty"`
	RowCount int         `json:"rowCount,omitempty"`
}
