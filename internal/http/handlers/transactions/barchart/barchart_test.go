package barchart

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/sales-dashboard/internal/http/handlers/transactions/query"
	"github.com/magabrotheeeer/sales-dashboard/internal/models"
)

type staticSource []models.Transaction

func (s staticSource) Snapshot() []models.Transaction { return s }

const labels = `["0-100","101-200","201-300","301-400","401-500","501-600","601-700","701-800","801-900","901+"]`

func TestBarChartHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	src := staticSource{
		{ID: 1, Title: "A", Price: 50, Sold: true, DateOfSale: "2022-01-15T10:00:00Z"},
		{ID: 2, Title: "B", Price: 150, DateOfSale: "2022-03-10T10:00:00Z"},
		{ID: 3, Title: "C", Price: 999.99, DateOfSale: "2022-03-20T10:00:00Z"},
	}
	handler := New(logger, query.NewBuilder(src, 5, time.UTC))

	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "all transactions",
			target:         "/api/bar-chart",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"label":"Number of Items","labels":` + labels + `,"counts":[1,1,0,0,0,0,0,0,0,1]}}`,
		},
		{
			name:           "march only",
			target:         "/api/bar-chart?month=March",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"label":"Number of Items","labels":` + labels + `,"counts":[0,1,0,0,0,0,0,0,0,1]}}`,
		},
		{
			name:           "no matches keeps every range",
			target:         "/api/bar-chart?search=nothing",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"label":"Number of Items","labels":` + labels + `,"counts":[0,0,0,0,0,0,0,0,0,0]}}`,
		},
		{
			name:           "bad month",
			target:         "/api/bar-chart?month=Mars",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Month must be an English month name"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
