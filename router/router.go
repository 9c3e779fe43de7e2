package router

import (
	"net/http"
	"product-insights-api/handler"

	_ "product-insights-api/docs"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(productHandler *handler.ProductHandler) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler).Methods(http.MethodGet)

	if productHandler != nil {
		api := r.PathPrefix("/api").Subrouter()
		api.Handle("/products", handler.ErrorHandlingMiddleware(productHandler.ListProducts)).Methods(http.MethodGet)
		api.Handle("/products/month-date", handler.ErrorHandlingMiddleware(productHandler.ListProductsByMonthAndDate)).Methods(http.MethodGet)
		api.Handle("/allproducts", handler.ErrorHandlingMiddleware(productHandler.ListAllProducts)).Methods(http.MethodGet)
		api.Handle("/statistics", handler.ErrorHandlingMiddleware(productHandler.Statistics)).Methods(http.MethodGet)
		api.Handle("/bar-chart", handler.ErrorHandlingMiddleware(productHandler.BarChart)).Methods(http.MethodGet)
	}

	// Outside the mux so preflight requests never hit its method matching.
	return handler.RequestLoggingMiddleware(handler.CORS()(r))
}
