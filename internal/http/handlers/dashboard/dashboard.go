// Package dashboard отдаёт HTML-страницу дашборда: поиск, выбор месяца,
// карточки статистики, постраничную таблицу и гистограмму цен.
package dashboard

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/sales-dashboard/internal/http/handlers/transactions/barchart"
	"github.com/magabrotheeeer/sales-dashboard/internal/http/handlers/transactions/query"
	"github.com/magabrotheeeer/sales-dashboard/internal/http/response"
	"github.com/magabrotheeeer/sales-dashboard/internal/lib/month"
	"github.com/magabrotheeeer/sales-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/sales-dashboard/internal/models"
	"github.com/magabrotheeeer/sales-dashboard/internal/viewmodel"
	"github.com/magabrotheeeer/sales-dashboard/web"
)

const pageTemplate = "dashboard_page"

type monthOption struct {
	Name     string
	Selected bool
}

type pageLink struct {
	Number   int
	URL      string
	Active   bool
	Disabled bool
}

type bar struct {
	Label   string
	Count   int
	Percent int
}

type pageData struct {
	Search       string
	Months       []monthOption
	TotalSales   string
	SoldCount    int
	NotSoldCount int
	Items        []models.Transaction
	First        pageLink
	Last         pageLink
	Pages        []pageLink
	ChartLabel   string
	Bars         []bar
}

type Handler struct {
	log       *slog.Logger
	builder   *query.Builder
	validate  *validator.Validate
	templates *template.Template
}

// New разбирает встроенные шаблоны и создаёт Handler.
func New(log *slog.Logger, builder *query.Builder) (*Handler, error) {
	const op = "handlers.dashboard.New"

	t, err := template.New("dashboard").
		Funcs(template.FuncMap{"price": formatPrice}).
		ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Handler{
		log:       log,
		builder:   builder,
		validate:  query.NewValidator(),
		templates: t,
	}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q, err := query.Parse(r, h.validate)
	if err != nil {
		log.Warn("invalid query parameters", sl.Err(err))
		resp := response.ValidationError(err.(validator.ValidationErrors))
		http.Error(w, resp.Error, http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, pageTemplate, newPageData(q, h.builder.Build(q))); err != nil {
		log.Error("failed to render dashboard", sl.Err(err))
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error("failed to write response", sl.Err(err))
	}
}

func newPageData(q query.Query, state viewmodel.State) pageData {
	stats := state.Statistics()
	selected := q.MonthValue()

	months := make([]monthOption, 0, 12)
	for i, name := range month.Names() {
		months = append(months, monthOption{Name: name, Selected: int(selected) == i+1})
	}

	total := state.TotalPages()
	page := state.Page()
	last := max(total, 1)

	pages := make([]pageLink, 0, total)
	for n := 1; n <= total; n++ {
		pages = append(pages, pageLink{Number: n, URL: pageURL(q, n), Active: n == page})
	}

	return pageData{
		Search:       q.Search,
		Months:       months,
		TotalSales:   stats.TotalSalesDisplay(),
		SoldCount:    stats.SoldCount,
		NotSoldCount: stats.NotSoldCount,
		Items:        state.CurrentPageItems(),
		First:        pageLink{Number: 1, URL: pageURL(q, 1), Disabled: page == 1},
		Last:         pageLink{Number: last, URL: pageURL(q, last), Disabled: page == last},
		Pages:        pages,
		ChartLabel:   barchart.DatasetLabel,
		Bars:         bars(state.PriceBuckets()),
	}
}

// pageURL сохраняет текущие фильтры в ссылке на страницу n.
func pageURL(q query.Query, n int) string {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Month != "" {
		v.Set("month", q.Month)
	}
	v.Set("page", strconv.Itoa(n))
	return "/?" + v.Encode()
}

func bars(buckets []viewmodel.PriceBucket) []bar {
	peak := 0
	for _, b := range buckets {
		peak = max(peak, b.Count)
	}

	out := make([]bar, 0, len(buckets))
	for _, b := range buckets {
		percent := 0
		if peak > 0 {
			percent = b.Count * 100 / peak
		}
		out = append(out, bar{Label: b.Label, Count: b.Count, Percent: percent})
	}
	return out
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
