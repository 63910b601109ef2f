// Package statistics реализует HTTP-обработчик сводной статистики продаж
// по отфильтрованным транзакциям: сумма продаж, количество проданных и непроданных.
package statistics

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

// Summary содержит данные ответа со статистикой.
type Summary struct {
	TotalSales        float64 `json:"total_sales"`
	TotalSalesDisplay string  `json:"total_sales_display"`
	SoldCount         int     `json:"sold_count"`
	NotSoldCount      int     `json:"not_sold_count"`
}

// Handler управляет HTTP-запросами на подсчёт статистики.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	builder  *query.Builder      // Построитель состояния модели представления
	validate *validator.Validate // Валидатор параметров запроса
}

// New создаёт новый Handler с переданным логгером и построителем представления.
func New(log *slog.Logger, builder *query.Builder) *Handler {
	return &Handler{
		log:      log,
		builder:  builder,
		validate: query.NewValidator(),
	}
}

// ServeHTTP godoc
// @Summary      Sales statistics
// @Description  Total sales of sold items and sold/not sold counts for the filtered set
// @Tags         transactions
// @Produce      json
// @Param        search  query     string  false  "Case-insensitive text in title or description"
// @Param        month   query     string  false  "English month name of dateOfSale"
// @Success      200     {object}  response.Response{data=Summary}
// @Failure      400     {object}  response.ErrorResponse
// @Router       /api/statistics [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.transactions.statistics"

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

	stats := h.builder.Build(q).Statistics()

	log.Debug("computed statistics", slog.Float64("total_sales", stats.TotalSales))
	render.JSON(w, r, response.StatusOKWithData(Summary{
		TotalSales:        stats.TotalSales,
		TotalSalesDisplay: stats.TotalSalesDisplay(),
		SoldCount:         stats.SoldCount,
		NotSoldCount:      stats.NotSoldCount,
	}))
}
