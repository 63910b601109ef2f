// Package upstream реализует клиент внешнего источника датасета транзакций.
// Клиент выполняет ровно один GET на каждый вызов и возвращает тело ответа
// без изменений: без повторов, без кеша и без проверки схемы.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/magabrotheeeer/sales-dashboard/internal/lib/metrics"
)

// DefaultURL адрес статического датасета по умолчанию.
const DefaultURL = "https://s3.amazonaws.com/roxiler.com/product_transaction.json"

var (
	// ErrUpstream общая ошибка получения датасета.
	ErrUpstream = errors.New("error fetching data")
	// ErrMalformedJSON возвращается, если тело ответа не является JSON.
	ErrMalformedJSON = errors.New("upstream returned malformed JSON")
)

// Client получает датасет по фиксированному адресу.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient создаёт клиент для url. Нулевой timeout означает отсутствие ограничения.
func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// URL возвращает адрес источника.
func (c *Client) URL() string {
	return c.url
}

// FetchDataset выполняет один GET и возвращает тело ответа как есть.
// Любая ошибка сети, статус не 2xx или невалидный JSON оборачиваются в ErrUpstream.
func (c *Client) FetchDataset(ctx context.Context) (json.RawMessage, error) {
	const op = "upstream.FetchDataset"

	body, err := c.fetch(ctx)
	if err != nil {
		metrics.UpstreamFetches.WithLabelValues(metrics.ResultError).Inc()
		return nil, fmt.Errorf("%s: %w: %w", op, ErrUpstream, err)
	}
	metrics.UpstreamFetches.WithLabelValues(metrics.ResultOK).Inc()
	return body, nil
}

func (c *Client) fetch(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.New("unexpected status: " + resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if !json.Valid(body) {
		return nil, ErrMalformedJSON
	}
	return body, nil
}
