// Package barchart реализует HTTP-обработчик гистограммы цен отфильтрованных
// транзакций по 10 фиксированным диапазонам.
package barchart

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/sales-dashboard/internal/http/handlers/transactions/query"
	"github.com/magabrotheeeer/sales-dashboard/internal/http/response"
	"github.com/magabrotheeeer/sales-dashboard/internal/lib/sl"
)

// DatasetLabel подпись набора данных гистограммы.
const DatasetLabel = "Number of Items"

// Chart содержит подписи диапазонов и количества в том же порядке.
type Chart struct {
	Label  string   `json:"label"`
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

type Handler struct {
	log      *slog.Logger
	builder  *query.Builder
	validate *validator.Validate
}

func New(log *slog.Logger, builder *query.Builder) *Handler {
	return &Handler{
		log:      log,
		builder:  builder,
		validate: query.NewValidator(),
	}
}

// ServeHTTP godoc
// @Summary      Price distribution
// @Description  Count of filtered transactions per fixed price range; empty ranges are reported as 0
// @Tags         transactions
// @Produce      json
// @Param        search  query     string  false  "Case-insensitive text in title or description"
// @Param        month   query     string  false  "English month name of dateOfSale"
// @Success      200     {object}  response.Response{data=Chart}
// @Failure      400     {object}  response.ErrorResponse
// @Router       /api/bar-chart [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.transactions.barchart"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q, err := query.Parse(r, h.validate)
	if err != nil {
		log.Warn("invalid query parameters", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	buckets := h.builder.Build(q).PriceBuckets()
	chart := Chart{
		Label:  DatasetLabel,
		Labels: make([]string, len(buckets)),
		Counts: make([]int, len(buckets)),
	}
	for i, b := range buckets {
		chart.Labels[i] = b.Label
		chart.Counts[i] = b.Count
	}

	render.JSON(w, r, response.StatusOKWithData(chart))
}
