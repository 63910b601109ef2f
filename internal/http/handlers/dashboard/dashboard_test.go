package dashboard

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/sales-dashboard/internal/http/handlers/transactions/query"
	"github.com/magabrotheeeer/sales-dashboard/internal/models"
)

type staticSource []models.Transaction

func (s staticSource) Snapshot() []models.Transaction { return s }

func newHandler(t *testing.T, src staticSource) *Handler {
	t.Helper()
	h, err := New(slog.New(slog.NewTextHandler(io.Discard, nil)), query.NewBuilder(src, 5, time.UTC))
	require.NoError(t, err)
	return h
}

func render(t *testing.T, h *Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestDashboard_EmptyDataset(t *testing.T) {
	w := render(t, newHandler(t, nil), "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "No data available")
	assert.Contains(t, body, "Select Month")
	assert.Contains(t, body, "$0.00")
	assert.Equal(t, 10, strings.Count(body, `class="bar"`))
}

func TestDashboard_RendersRowsAndStatistics(t *testing.T) {
	src := staticSource{
		{ID: 1, Title: "Fjallraven Backpack", Description: "daily bag", Price: 329.85, Category: "bags", Sold: true, DateOfSale: "2021-11-27T20:29:54+05:30", Image: "https://example.com/1.jpg"},
		{ID: 2, Title: "Slim Fit T-Shirt", Description: "cotton", Price: 22.3, Category: "clothing", DateOfSale: "2021-10-27T20:29:54+05:30"},
	}

	w := render(t, newHandler(t, src), "/")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Fjallraven Backpack")
	assert.Contains(t, body, "$329.85")
	assert.Contains(t, body, "$22.3<")
	assert.Contains(t, body, `<p class="card-text">$329.85</p>`)
	assert.Contains(t, body, `src="https://example.com/1.jpg"`)
	assert.Contains(t, body, "No Image")
	assert.NotContains(t, body, "No data available")
}

func TestDashboard_FiltersAndPagination(t *testing.T) {
	src := make(staticSource, 0, 12)
	for i := 1; i <= 12; i++ {
		src = append(src, models.Transaction{
			ID:         i,
			Title:      fmt.Sprintf("Item %02d", i),
			Price:      10,
			DateOfSale: "2022-03-10T10:00:00Z",
		})
	}

	w := render(t, newHandler(t, src), "/?search=item&month=march&page=9")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	// Страница ограничивается последней, на ней остаются элементы 11 и 12.
	assert.Contains(t, body, "Item 11")
	assert.Contains(t, body, "Item 12")
	assert.NotContains(t, body, "Item 10")
	assert.Contains(t, body, `<option value="March" selected>March</option>`)
	assert.Contains(t, body, `href="/?month=march&amp;page=3&amp;search=item"`)
	assert.Contains(t, body, `page-item active"><a class="page-link" href="/?month=march&amp;page=3&amp;search=item">3</a>`)
}

func TestDashboard_EscapesContent(t *testing.T) {
	src := staticSource{{ID: 1, Title: "<script>alert(1)</script>", DateOfSale: "2022-03-10T10:00:00Z"}}

	body := render(t, newHandler(t, src), "/").Body.String()
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestDashboard_BadQuery(t *testing.T) {
	w := render(t, newHandler(t, nil), "/?month=Mars")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "field Month must be an English month name")
}

func TestBars(t *testing.T) {
	src := staticSource{
		{Price: 50, DateOfSale: "2022-03-10T10:00:00Z"},
		{Price: 60, DateOfSale: "2022-03-10T10:00:00Z"},
		{Price: 150, DateOfSale: "2022-03-10T10:00:00Z"},
	}
	state := query.NewBuilder(src, 5, time.UTC).Build(query.Query{})

	got := bars(state.PriceBuckets())
	require.Len(t, got, 10)
	assert.Equal(t, bar{Label: "0-100", Count: 2, Percent: 100}, got[0])
	assert.Equal(t, bar{Label: "101-200", Count: 1, Percent: 50}, got[1])
	assert.Equal(t, bar{Label: "901+", Count: 0, Percent: 0}, got[9])
}
