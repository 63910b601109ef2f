package salesdashboard

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	// Регистрация swagger-документа.
	_ "github.com/magabrotheeeer/sales-dashboard/docs"
	"github.com/magabrotheeeer/sales-dashboard/internal/http/handlers/dashboard"
	"github.com/magabrotheeeer/sales-dashboard/internal/http/handlers/health"
	"github.com/magabrotheeeer/sales-dashboard/internal/http/handlers/proxy/getdata"
	"github.com/magabrotheeeer/sales-dashboard/internal/http/handlers/transactions/barchart"
	"github.com/magabrotheeeer/sales-dashboard/internal/http/handlers/transactions/list"
	"github.com/magabrotheeeer/sales-dashboard/internal/http/handlers/transactions/query"
	"github.com/magabrotheeeer/sales-dashboard/internal/http/handlers/transactions/statistics"
	"github.com/magabrotheeeer/sales-dashboard/internal/http/middlewarectx"
)

// Deps содержит зависимости обработчиков.
type Deps struct {
	Fetcher getdata.Fetcher
	Dataset health.Dataset
	Builder *query.Builder
	Limiter *rate.Limiter
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, deps Deps) error {
	page, err := dashboard.New(logger, deps.Builder)
	if err != nil {
		return err
	}

	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
	)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"*"},
			MaxAge:         300,
		}))
		r.Use(middlewarectx.RateLimitMiddleware(logger, deps.Limiter))

		r.Get("/getdata", getdata.New(logger, deps.Fetcher).ServeHTTP)
		r.Get("/transactions", list.New(logger, deps.Builder).ServeHTTP)
		r.Get("/statistics", statistics.New(logger, deps.Builder).ServeHTTP)
		r.Get("/bar-chart", barchart.New(logger, deps.Builder).ServeHTTP)
	})

	r.Get("/", page.ServeHTTP)
	r.Get("/health", health.New(logger, deps.Dataset).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
	return nil
}
