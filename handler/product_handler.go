package handler

import (
	"errors"
	"net/http"
	"net/url"
	"product-insights-api/common"
	"product-insights-api/logger"
	"product-insights-api/model"
	"product-insights-api/service"
	"strings"
)

const (
	defaultProductsMonth    = "3"
	defaultAllProductsMonth = "all"
)

// ProductHandler holds dependencies for the product listing and report handlers.
type ProductHandler struct {
	service           *service.ProductService
	failOnSourceError bool
}

// NewProductHandler creates a new ProductHandler. With failOnSourceError set, an
// unavailable data source answers 502 instead of an empty 200 response.
func NewProductHandler(s *service.ProductService, failOnSourceError bool) *ProductHandler {
	return &ProductHandler{service: s, failOnSourceError: failOnSourceError}
}

// ListProducts godoc
// @Summary      List transactions of a month
// @Description  Lists transactions sold in the given month (default March), filtered by a case-insensitive search on title, description and price. A month outside 1-12 matches nothing.
// @Tags         products
// @Produce      json
// @Param        search   query  string  false  "Search term"
// @Param        month    query  string  false  "Month 1-12" default(3)
// @Param        page     query  int     false  "Page number" default(1)
// @Param        perPage  query  int     false  "Page size" default(10)
// @Success      200  {object}  model.PageResponse
// @Failure      502  {object}  common.AppError "Data source unavailable (only when fail_on_error is enabled)"
// @Router       /api/products [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.list(w, r, defaultProductsMonth, false)
}

// ListAllProducts godoc
// @Summary      List transactions of every month
// @Description  Same as /api/products but the month may be 'all', the default, which disables month filtering.
// @Tags         products
// @Produce      json
// @Param        search   query  string  false  "Search term"
// @Param        month    query  string  false  "Month 1-12 or 'all'" default(all)
// @Param        page     query  int     false  "Page number" default(1)
// @Param        perPage  query  int     false  "Page size" default(10)
// @Success      200  {object}  model.PageResponse
// @Failure      502  {object}  common.AppError "Data source unavailable (only when fail_on_error is enabled)"
// @Router       /api/allproducts [get]
func (h *ProductHandler) ListAllProducts(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.list(w, r, defaultAllProductsMonth, true)
}

// ListProductsByMonthAndDate godoc
// @Summary      List transactions of a month within a date range
// @Description  The date range applies only when both startDate and endDate are given. A malformed date, or a missing or invalid month, matches nothing.
// @Tags         products
// @Produce      json
// @Param        month      query  string  true   "Month 1-12"
// @Param        startDate  query  string  false  "Inclusive lower bound (RFC 3339 or YYYY-MM-DD)"
// @Param        endDate    query  string  false  "Inclusive upper bound (RFC 3339 or YYYY-MM-DD)"
// @Param        search     query  string  false  "Search term"
// @Param        page       query  int     false  "Page number" default(1)
// @Param        perPage    query  int     false  "Page size" default(10)
// @Success      200  {object}  model.PageResponse
// @Failure      502  {object}  common.AppError "Data source unavailable (only when fail_on_error is enabled)"
// @Router       /api/products/month-date [get]
func (h *ProductHandler) ListProductsByMonthAndDate(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.list(w, r, "", false)
}

// list serves the three listing endpoints. A month that is not 1-12 (or
// "all" where allowAll is set) is not an error; it matches nothing.
func (h *ProductHandler) list(w http.ResponseWriter, r *http.Request, defaultMonth string, allowAll bool) *common.AppError {
	q := r.URL.Query()
	query := model.ListQuery{
		Search:    q.Get("search"),
		Month:     valueOr(q, "month", defaultMonth),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
		Page:      q.Get("page"),
		PerPage:   q.Get("perPage"),

		AllowAllMonths: allowAll,
	}

	resp, err := h.service.ListProducts(r.Context(), query)
	return h.respond(w, r, resp, err)
}

// Statistics godoc
// @Summary      Sales statistics of a month
// @Description  Total sale amount of sold items plus sold and unsold counts, optionally within a date range.
// @Tags         reports
// @Produce      json
// @Param        month      query  string  true   "Month 1-12; any other value yields zero totals"
// @Param        startDate  query  string  false  "Inclusive lower bound"
// @Param        endDate    query  string  false  "Inclusive upper bound"
// @Success      200  {object}  model.StatisticsResponse
// @Failure      400  {object}  common.AppError "Month is required"
// @Failure      502  {object}  common.AppError "Data source unavailable (only when fail_on_error is enabled)"
// @Router       /api/statistics [get]
func (h *ProductHandler) Statistics(w http.ResponseWriter, r *http.Request) *common.AppError {
	q := r.URL.Query()
	query := model.StatsQuery{
		Month:     strings.TrimSpace(q.Get("month")),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}
	if appErr := common.ValidateQuery(&query); appErr != nil {
		return appErr
	}

	logger.Log.WithField("month", query.Month).Info("Statistics request received")

	resp, err := h.service.Statistics(r.Context(), query)
	return h.respond(w, r, resp, err)
}

// BarChart godoc
// @Summary      Price histogram of a month
// @Description  Counts transactions in five fixed price ranges.
// @Tags         reports
// @Produce      json
// @Param        month  query  string  true  "Month 1-12; any other value yields empty ranges"
// @Success      200  {object}  model.BarChartResponse
// @Failure      400  {object}  common.AppError "Month is required"
// @Failure      502  {object}  common.AppError "Data source unavailable (only when fail_on_error is enabled)"
// @Router       /api/bar-chart [get]
func (h *ProductHandler) BarChart(w http.ResponseWriter, r *http.Request) *common.AppError {
	query := model.BarChartQuery{Month: strings.TrimSpace(r.URL.Query().Get("month"))}
	if appErr := common.ValidateQuery(&query); appErr != nil {
		return appErr
	}

	logger.Log.WithField("month", query.Month).Info("Bar chart request received")

	resp, err := h.service.BarChart(r.Context(), query)
	return h.respond(w, r, resp, err)
}

// respond maps service errors to HTTP errors. A source failure is served as
// the empty result unless the handler is configured to fail.
func (h *ProductHandler) respond(w http.ResponseWriter, r *http.Request, payload interface{}, err error) *common.AppError {
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSourceUnavailable):
			if h.failOnSourceError {
				return common.NewAppError(http.StatusBadGateway, "Product data source unavailable", err)
			}
			logger.Log.WithField("path", r.URL.Path).Warn("Serving empty result because the data source is unavailable")
		case errors.Is(err, service.ErrMissingMonth):
			return common.NewAppError(http.StatusBadRequest, "Month is required", nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not process request", err)
		}
	}

	common.WriteJSON(w, http.StatusOK, payload)
	return nil
}

// valueOr returns the trimmed query value, or fallback when it is absent or blank.
func valueOr(q url.Values, key, fallback string) string {
	if v := strings.TrimSpace(q.Get(key)); v != "" {
		return v
	}
	return fallback
}
