package model

import (
	"encoding/json"
	"time"
)

// Transaction is one record of the product transaction dataset.
type Transaction struct {
	ID          int      `json:"id,omitempty"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Category    string   `json:"category,omitempty"`
	Image       string   `json:"image,omitempty"`
	Sold        bool     `json:"sold"`
	DateOfSale  SaleTime `json:"dateOfSale" swaggertype:"string" example:"2021-11-27T20:29:54+05:30"`
}

var saleTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// SaleTime keeps the raw dateOfSale text next to its parsed value, so
// responses echo the source unchanged even when it cannot be parsed.
type SaleTime struct {
	Raw   string
	Time  time.Time
	Valid bool
}

// ParseSaleTime accepts RFC 3339 timestamps, zone-less date-times and plain
// dates. Zone-less values are read as UTC.
func ParseSaleTime(raw string) SaleTime {
	st := SaleTime{Raw: raw}
	for _, layout := range saleTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			st.Time = t
			st.Valid = true
			break
		}
	}
	return st
}

// NewSaleTime builds a valid SaleTime from t, formatted as RFC 3339.
func NewSaleTime(t time.Time) SaleTime {
	return SaleTime{Raw: t.Format(time.RFC3339), Time: t, Valid: true}
}

func (s SaleTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Raw)
}

func (s *SaleTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		// Non-string values are kept as-is and never match a date predicate.
		*s = SaleTime{Raw: string(data)}
		return nil
	}
	*s = ParseSaleTime(raw)
	return nil
}
