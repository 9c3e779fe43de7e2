// file: model/request.go

package model

// ListQuery holds the query parameters of the listing endpoints.
// Page and PerPage are kept raw; the service applies the pagination policy.
type ListQuery struct {
	Search    string
	Month     string
	StartDate string
	EndDate   string
	Page      string
	PerPage   string

	// AllowAllMonths lets Month be "all" to disable month filtering.
	AllowAllMonths bool
}

// StatsQuery holds the query parameters of the statistics endpoint.
type StatsQuery struct {
	Month     string `validate:"required"`
	StartDate string
	EndDate   string
}

// BarChartQuery holds the query parameters of the bar-chart endpoint.
type BarChartQuery struct {
	Month string `validate:"required"`
}
