package salesdashboard

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/sales-dashboard/internal/cache"
	"github.com/magabrotheeeer/sales-dashboard/internal/http/handlers/transactions/query"
	"github.com/magabrotheeeer/sales-dashboard/internal/services/dataset"
	"github.com/magabrotheeeer/sales-dashboard/internal/upstream"
)

const upstreamBody = `[
  {"id":1,"title":"Mens Casual Shirt","description":"slim fit","price":40,"category":"men","sold":true,"dateOfSale":"2022-03-10T10:00:00Z","image":"https://example.com/1.jpg"},
  {"id":2,"title":"Gold Ring","description":"jewelery","price":950,"category":"jewelery","sold":false,"dateOfSale":"2022-07-10T10:00:00Z","image":""},
  {"id":3,"title":"Broken","price":-1,"dateOfSale":"2022-07-10T10:00:00Z"}
]`

func newTestRouter(t *testing.T, upstreamURL string) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client := upstream.NewClient(upstreamURL, time.Second)
	svc := dataset.NewService(client, cache.Noop{}, time.Minute, logger)
	_ = svc.Load(context.Background())

	router := chi.NewRouter()
	err := RegisterRoutes(router, logger, Deps{
		Fetcher: client,
		Dataset: svc,
		Builder: query.NewBuilder(svc, 5, time.UTC),
		Limiter: rate.NewLimiter(rate.Inf, 1),
	})
	require.NoError(t, err)
	return router
}

func TestRoutes(t *testing.T) {
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(upstreamBody))
	}))
	t.Cleanup(up.Close)

	router := newTestRouter(t, up.URL)

	tests := []struct {
		name           string
		target         string
		expectedStatus int
		check          func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name:           "proxy passes body through",
			target:         "/api/getdata",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, upstreamBody, w.Body.String())
			},
		},
		{
			name:           "statistics over valid records",
			target:         "/api/statistics",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"status":"OK","data":{"total_sales":40,"total_sales_display":"40.00","sold_count":1,"not_sold_count":1}}`, w.Body.String())
			},
		},
		{
			name:           "transactions filtered by month",
			target:         "/api/transactions?month=july",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				var body struct {
					Data struct {
						Items []struct {
							ID int `json:"id"`
						} `json:"items"`
						TotalCount int `json:"total_count"`
					} `json:"data"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				require.Len(t, body.Data.Items, 1)
				assert.Equal(t, 2, body.Data.Items[0].ID)
				assert.Equal(t, 1, body.Data.TotalCount)
			},
		},
		{
			name:           "bar chart",
			target:         "/api/bar-chart",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), `"counts":[1,0,0,0,0,0,0,0,0,1]`)
			},
		},
		{
			name:           "dashboard page",
			target:         "/?search=shirt",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), "Mens Casual Shirt")
				assert.NotContains(t, w.Body.String(), "Gold Ring")
			},
		},
		{
			name:           "health",
			target:         "/health",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"status":"OK","data":{"status":"ok","dataset_loaded":true,"records":2}}`, w.Body.String())
			},
		},
		{
			name:           "metrics",
			target:         "/metrics",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), "dashboard_upstream_fetch_total")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, tt.expectedStatus, w.Code)
			tt.check(t, w)
		})
	}
}

func TestRoutes_CORS(t *testing.T) {
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(up.Close)

	router := newTestRouter(t, up.URL)

	t.Run("simple request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/getdata", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/getdata", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Less(t, w.Code, http.StatusMultipleChoices)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRoutes_UpstreamDown(t *testing.T) {
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(up.Close)

	router := newTestRouter(t, up.URL)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/getdata", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Error fetching data"`)

	// Неудачная загрузка при старте оставляет дашборд пустым.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No data available")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Contains(t, w.Body.String(), `"dataset_loaded":false`)
}
