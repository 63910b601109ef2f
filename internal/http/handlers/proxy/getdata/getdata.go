// Package getdata реализует прокси-эндпоинт датасета: каждый запрос выполняет
// одно обращение к внешнему источнику и возвращает его тело без изменений.
package getdata

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/sales-dashboard/internal/http/response"
	"github.com/magabrotheeeer/sales-dashboard/internal/lib/sl"
)

// Fetcher описывает получение сырого датасета.
type Fetcher interface {
	FetchDataset(ctx context.Context) (json.RawMessage, error)
}

// Handler проксирует датасет внешнего источника.
type Handler struct {
	log     *slog.Logger
	fetcher Fetcher
}

// New создаёт новый Handler.
func New(log *slog.Logger, fetcher Fetcher) *Handler {
	return &Handler{
		log:     log,
		fetcher: fetcher,
	}
}

// ServeHTTP godoc
// @Summary      Raw dataset
// @Description  Fetches the transaction dataset from the upstream URL and returns it verbatim
// @Tags         proxy
// @Produce      json
// @Success      200  {array}   models.Transaction
// @Failure      500  {object}  response.FetchError
// @Router       /api/getdata [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.proxy.getdata"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	body, err := h.fetcher.FetchDataset(r.Context())
	if err != nil {
		log.Error("failed to fetch dataset", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Fetch(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error("failed to write response", sl.Err(err))
		return
	}
	log.Debug("dataset proxied", slog.Int("bytes", len(body)))
}
