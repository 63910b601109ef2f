// Package list реализует HTTP-обработчик постраничного списка транзакций
// с фильтрацией по тексту и месяцу.
package list

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/sales-dashboard/internal/http/handlers/transactions/query"
	"github.com/magabrotheeeer/sales-dashboard/internal/http/response"
	"github.com/magabrotheeeer/sales-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/sales-dashboard/internal/models"
)

// Page содержит данные ответа со страницей транзакций.
type Page struct {
	Items      []models.Transaction `json:"items"`
	Page       int                  `json:"page"`
	PerPage    int                  `json:"per_page"`
	TotalPages int                  `json:"total_pages"`
	TotalCount int                  `json:"total_count"`
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
// @Summary      List transactions
// @Description  Filtered and paginated transactions of the loaded dataset
// @Tags         transactions
// @Produce      json
// @Param        search  query     string  false  "Case-insensitive text in title or description"
// @Param        month   query     string  false  "English month name of dateOfSale"
// @Param        page    query     int     false  "Page number, clamped to the available range"
// @Success      200     {object}  response.Response{data=Page}
// @Failure      400     {object}  response.ErrorResponse
// @Router       /api/transactions [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.transactions.list"

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

	state := h.builder.Build(q)
	items := state.CurrentPageItems()

	log.Debug("list transactions", slog.Int("count", len(items)), slog.Int("page", state.Page()))
	render.JSON(w, r, response.StatusOKWithData(Page{
		Items:      items,
		Page:       state.Page(),
		PerPage:    state.PageSize(),
		TotalPages: state.TotalPages(),
		TotalCount: len(state.Filtered()),
	}))
}
