package service

import (
	"context"
	"errors"
	"fmt"
	"product-insights-api/logger"
	"product-insights-api/model"
	"product-insights-api/repository"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	ErrSourceUnavailable = errors.New("product data source unavailable")
	ErrMissingMonth      = errors.New("month is required")
)

// ProductService answers listing and report queries over the fetched dataset.
//
// When the source fails, every method still returns a result computed over an
// empty dataset together with an error wrapping ErrSourceUnavailable. The
// caller chooses between serving the empty result and failing the request.
type ProductService struct {
	repo       repository.IProductRepository
	pagination Pagination
}

func NewProductService(repo repository.IProductRepository, pagination Pagination) *ProductService {
	return &ProductService{repo: repo, pagination: pagination}
}

func (s *ProductService) load(ctx context.Context) ([]model.Transaction, error) {
	txs, err := s.repo.FetchAll(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("Product source unavailable, continuing with an empty dataset")
		return []model.Transaction{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return txs, nil
}

// ListProducts filters by month, date range and search, then paginates.
// "all" disables the month filter only when q.AllowAllMonths is set; any
// other month that is not 1-12, an empty one included, matches nothing.
func (s *ProductService) ListProducts(ctx context.Context, q model.ListQuery) (*model.PageResponse, error) {
	month := ParseMonthFilter(q.Month, q.AllowAllMonths)
	page, perPage := s.pagination.Resolve(q.Page, q.PerPage)

	log := logger.Log.WithFields(logrus.Fields{
		"month":    month.String(),
		"search":   q.Search,
		"page":     page,
		"per_page": perPage,
	})

	txs, srcErr := s.load(ctx)

	criteria := Criteria{Month: month, StartDate: q.StartDate, EndDate: q.EndDate, Search: q.Search}
	filtered := criteria.Apply(txs)
	data, total := Paginate(filtered, page, perPage)

	log.WithField("total_records", total).Debug("Listed product transactions")

	return &model.PageResponse{
		CurrentPage:  page,
		PerPage:      perPage,
		TotalRecords: total,
		Data:         data,
	}, srcErr
}

// Statistics reports the sale total and sold/unsold counts for a month,
// optionally narrowed to a date range. A month outside 1-12, "all" included,
// yields zero totals.
func (s *ProductService) Statistics(ctx context.Context, q model.StatsQuery) (*model.StatisticsResponse, error) {
	if strings.TrimSpace(q.Month) == "" {
		return nil, ErrMissingMonth
	}
	month := ParseMonthFilter(q.Month, false)

	txs, srcErr := s.load(ctx)
	filtered := Criteria{Month: month, StartDate: q.StartDate, EndDate: q.EndDate}.Apply(txs)

	logger.Log.WithFields(logrus.Fields{
		"month":      month.String(),
		"start_date": q.StartDate,
		"end_date":   q.EndDate,
		"matched":    len(filtered),
	}).Debug("Computed statistics")

	return &model.StatisticsResponse{
		Month:      q.Month,
		Statistics: Statistics(filtered),
	}, srcErr
}

// BarChart reports the price histogram for a month.
func (s *ProductService) BarChart(ctx context.Context, q model.BarChartQuery) (*model.BarChartResponse, error) {
	if strings.TrimSpace(q.Month) == "" {
		return nil, ErrMissingMonth
	}
	month := ParseMonthFilter(q.Month, false)

	txs, srcErr := s.load(ctx)

	return &model.BarChartResponse{
		Month:       q.Month,
		PriceRanges: PriceHistogram(ByMonth(txs, month)),
	}, srcErr
}
