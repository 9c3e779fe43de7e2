// file: service/filter.go

package service

import (
	"product-insights-api/model"
	"strconv"
	"strings"
	"time"
)

// MonthFilter selects transactions by calendar month. It is one of: all
// months, one month (1-12), or no month at all. The zero value matches all
// months.
type MonthFilter struct {
	month int
}

const noMonth = -1

// AllMonths disables month filtering.
func AllMonths() MonthFilter {
	return MonthFilter{}
}

// NoMonths matches nothing. Unusable request months resolve to it.
func NoMonths() MonthFilter {
	return MonthFilter{month: noMonth}
}

// SpecificMonth restricts results to a 1-based calendar month. Values
// outside 1-12 match nothing.
func SpecificMonth(month int) MonthFilter {
	if month < 1 || month > 12 {
		return NoMonths()
	}
	return MonthFilter{month: month}
}

// ParseMonthFilter parses a request month. An integer 1-12 selects that
// month. "all" (any case) disables the filter only when allowAll is set.
// Anything else, including an empty value, matches nothing.
func ParseMonthFilter(raw string, allowAll bool) MonthFilter {
	raw = strings.TrimSpace(raw)
	if allowAll && strings.EqualFold(raw, "all") {
		return AllMonths()
	}
	m, err := strconv.Atoi(raw)
	if err != nil {
		return NoMonths()
	}
	return SpecificMonth(m)
}

// IsAll reports whether the filter passes every month through.
func (f MonthFilter) IsAll() bool {
	return f.month == 0
}

// IsNone reports whether the filter matches nothing.
func (f MonthFilter) IsNone() bool {
	return f.month == noMonth
}

// Month returns the 1-based month, or 0 when the filter is not a single month.
func (f MonthFilter) Month() int {
	if f.month < 1 {
		return 0
	}
	return f.month
}

func (f MonthFilter) String() string {
	switch {
	case f.IsAll():
		return "all"
	case f.IsNone():
		return "none"
	default:
		return strconv.Itoa(f.month)
	}
}

// ByMonth keeps transactions sold in the filter's month. AllMonths returns
// the input unchanged and NoMonths returns an empty slice.
func ByMonth(txs []model.Transaction, f MonthFilter) []model.Transaction {
	if f.IsAll() {
		return txs
	}
	if f.IsNone() {
		return []model.Transaction{}
	}
	want := time.Month(f.month)
	return keep(txs, func(tx model.Transaction) bool {
		return tx.DateOfSale.Valid && tx.DateOfSale.Time.Month() == want
	})
}

// ByDateRange keeps transactions sold within [start, end], both inclusive.
// It is a no-op unless both bounds are given. A malformed bound matches nothing.
func ByDateRange(txs []model.Transaction, start, end string) []model.Transaction {
	if start == "" || end == "" {
		return txs
	}
	from := model.ParseSaleTime(start)
	to := model.ParseSaleTime(end)
	if !from.Valid || !to.Valid {
		return []model.Transaction{}
	}
	return keep(txs, func(tx model.Transaction) bool {
		if !tx.DateOfSale.Valid {
			return false
		}
		t := tx.DateOfSale.Time
		return !t.Before(from.Time) && !t.After(to.Time)
	})
}

// BySearch keeps transactions whose title, description or price contains
// term, ignoring case. An empty term matches everything.
func BySearch(txs []model.Transaction, term string) []model.Transaction {
	if term == "" {
		return txs
	}
	needle := strings.ToLower(term)
	return keep(txs, func(tx model.Transaction) bool {
		return strings.Contains(strings.ToLower(tx.Title), needle) ||
			strings.Contains(strings.ToLower(tx.Description), needle) ||
			strings.Contains(formatPrice(tx.Price), term)
	})
}

// formatPrice renders the shortest decimal form, e.g. 30 or 329.85.
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// Criteria groups the predicates of the filter stage.
type Criteria struct {
	Month     MonthFilter
	StartDate string
	EndDate   string
	Search    string
}

// Apply runs month, date range and search in that order.
func (c Criteria) Apply(txs []model.Transaction) []model.Transaction {
	out := ByMonth(txs, c.Month)
	out = ByDateRange(out, c.StartDate, c.EndDate)
	return BySearch(out, c.Search)
}

func keep(txs []model.Transaction, pred func(model.Transaction) bool) []model.Transaction {
	out := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if pred(tx) {
			out = append(out, tx)
		}
	}
	return out
}
