package health

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/sales-dashboard/internal/http/response"
	"github.com/magabrotheeeer/sales-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/sales-dashboard/internal/models"
)

// Dataset описывает состояние загруженного датасета.
type Dataset interface {
	Loaded() bool
	Snapshot() []models.Transaction
}

// Status тело ответа проверки живости.
type Status struct {
	Status        string `json:"status"`
	DatasetLoaded bool   `json:"dataset_loaded"`
	Records       int    `json:"records"`
}

type Handler struct {
	log     *slog.Logger
	dataset Dataset
}

func New(log *slog.Logger, dataset Dataset) *Handler {
	return &Handler{
		log:     log,
		dataset: dataset,
	}
}

// ServeHTTP godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response{data=Status}
// @Router       /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	status := Status{
		Status:        "ok",
		DatasetLoaded: h.dataset.Loaded(),
		Records:       len(h.dataset.Snapshot()),
	}

	h.log.Debug("health check",
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.Bool("dataset_loaded", status.DatasetLoaded),
	)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response.StatusOKWithData(status))
}
