// file: service/paginate.go

package service

import (
	"product-insights-api/model"
	"strconv"
	"strings"
)

// Pagination normalises raw page parameters.
type Pagination struct {
	DefaultPerPage int
	MaxPerPage     int
}

// Resolve turns raw query values into an effective page and page size.
// Missing, non-numeric or non-positive values fall back to page 1 and the
// default page size; page sizes above MaxPerPage are clamped.
func (p Pagination) Resolve(rawPage, rawPerPage string) (page, perPage int) {
	page = positiveOr(rawPage, 1)
	perPage = positiveOr(rawPerPage, p.DefaultPerPage)
	if p.MaxPerPage > 0 && perPage > p.MaxPerPage {
		perPage = p.MaxPerPage
	}
	return page, perPage
}

func positiveOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// Paginate returns the 1-based page of txs and the unpaginated total.
// A page past the end yields an empty slice. page and perPage must be >= 1.
func Paginate(txs []model.Transaction, page, perPage int) ([]model.Transaction, int) {
	total := len(txs)
	if page < 1 || perPage < 1 {
		return []model.Transaction{}, total
	}
	start := (page - 1) * perPage
	if start >= total || start/perPage != page-1 {
		return []model.Transaction{}, total
	}
	end := start + perPage
	if end > total || end < start {
		end = total
	}
	return txs[start:end], total
}
