// Package salesdashboard собирает зависимости и HTTP-сервер дашборда продаж.
package salesdashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/sales-dashboard/internal/cache"
	"github.com/magabrotheeeer/sales-dashboard/internal/config"
	"github.com/magabrotheeeer/sales-dashboard/internal/http/handlers/transactions/query"
	"github.com/magabrotheeeer/sales-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/sales-dashboard/internal/services/dataset"
	"github.com/magabrotheeeer/sales-dashboard/internal/upstream"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	server *http.Server
	logger *slog.Logger
	cache  *cache.Cache
}

// New загружает датасет и готовит сервер. Неудачная загрузка датасета
// не является ошибкой: дашборд обслуживается с пустыми данными.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.salesdashboard.New"

	loc, err := cfg.View.TimeLocation()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	client := upstream.NewClient(cfg.UpstreamURL, cfg.UpstreamTimeout)

	var (
		redisCache   *cache.Cache
		datasetCache dataset.Cache = cache.Noop{}
	)
	if cfg.CacheEnabled() {
		redisCache, err = cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			logger.Warn("redis unavailable, snapshot cache disabled", sl.Err(err))
		} else {
			datasetCache = redisCache
		}
	}

	datasetService := dataset.NewService(client, datasetCache, cfg.TTL, logger)
	if err := datasetService.Load(ctx); err != nil {
		logger.Error("failed to load dataset, serving empty dashboard", sl.Err(err))
	}

	router := chi.NewRouter()
	err = RegisterRoutes(router, logger, Deps{
		Fetcher: client,
		Dataset: datasetService,
		Builder: query.NewBuilder(datasetService, cfg.PageSize, loc),
		Limiter: rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		cache:  redisCache,
	}, nil
}

// Run обслуживает запросы до отмены ctx, затем корректно останавливает сервер.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.closeCache()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.closeCache()
		return err
	}
}

func (a *App) closeCache() {
	if a.cache == nil {
		return
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Warn("failed to close redis client", sl.Err(err))
	}
}
