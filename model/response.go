// file: model/response.go

package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// PageResponse is the envelope returned by every listing endpoint.
type PageResponse struct {
	CurrentPage  int           `json:"currentPage" example:"1"`
	PerPage      int           `json:"perPage" example:"10"`
	TotalRecords int           `json:"totalRecords" example:"30"`
	Data         []Transaction `json:"data"`
}

// Statistics summarises sold and unsold transactions.
type Statistics struct {
	TotalSaleAmount   float64 `json:"totalSaleAmount" example:"3456.78"`
	TotalSoldItems    int     `json:"totalSoldItems" example:"12"`
	TotalNotSoldItems int     `json:"totalNotSoldItems" example:"4"`
}

// StatisticsResponse is the body of GET /api/statistics.
type StatisticsResponse struct {
	Month string `json:"month" example:"3"`
	Statistics
}

// BucketCount is the number of transactions in one price bucket.
type BucketCount struct {
	Label string
	Count int
}

// PriceRanges is an ordered price histogram. It marshals to a JSON object
// whose keys keep bucket order.
type PriceRanges []BucketCount

func (p PriceRanges) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, b := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(b.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(b.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Total is the sum of all bucket counts.
func (p PriceRanges) Total() int {
	total := 0
	for _, b := range p {
		total += b.Count
	}
	return total
}

// Count returns the count for label, or zero when there is no such bucket.
func (p PriceRanges) Count(label string) int {
	for _, b := range p {
		if b.Label == label {
			return b.Count
		}
	}
	return 0
}

// BarChartResponse is the body of GET /api/bar-chart.
type BarChartResponse struct {
	Month       string      `json:"month" example:"3"`
	PriceRanges PriceRanges `json:"priceRanges" swaggertype:"object,number"`
}
