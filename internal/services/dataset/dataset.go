// Package dataset содержит бизнес-логику загрузки датасета транзакций:
// получение из внешнего источника, валидацию записей и кеширование снимка.
package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/sales-dashboard/internal/lib/metrics"
	"github.com/magabrotheeeer/sales-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/sales-dashboard/internal/models"
)

// CacheKey ключ, под которым снимок датасета хранится в кеше.
const CacheKey = "dataset:transactions"

// ErrNotArray возвращается, если датасет не является JSON-массивом.
var ErrNotArray = errors.New("dataset is not a JSON array")

// Fetcher описывает получение сырого датасета из внешнего источника.
type Fetcher interface {
	// FetchDataset возвращает тело ответа источника без изменений.
	FetchDataset(ctx context.Context) (json.RawMessage, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(ctx context.Context, key string) error
}

// Service хранит провалидированный датасет и отдаёт его копии обработчикам.
type Service struct {
	fetcher  Fetcher
	cache    Cache
	ttl      time.Duration
	log      *slog.Logger
	validate *validator.Validate

	mu           sync.RWMutex
	transactions []models.Transaction
	loaded       bool
}

// NewService создает новый экземпляр Service.
func NewService(fetcher Fetcher, cache Cache, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		fetcher:  fetcher,
		cache:    cache,
		ttl:      ttl,
		log:      log,
		validate: NewValidator(),
	}
}

// NewValidator возвращает валидатор записей датасета с тегом rfc3339.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("rfc3339", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(time.RFC3339, fl.Field().String())
		return err == nil
	})
	return v
}

// Load получает датасет один раз: сначала из кеша, затем из внешнего источника.
// При ошибке текущий датасет не меняется.
func (s *Service) Load(ctx context.Context) error {
	const op = "services.dataset.Load"
	log := s.log.With(slog.String("op", op))

	var cached []models.Transaction
	found, err := s.cache.Get(ctx, CacheKey, &cached)
	if err != nil {
		log.Warn("failed to read dataset from cache", sl.Err(err))
	}
	if found {
		s.store(cached)
		log.Info("dataset loaded from cache", slog.Int("count", len(cached)))
		return nil
	}

	raw, err := s.fetcher.FetchDataset(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	accepted, rejected, err := Ingest(raw, s.validate)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	metrics.DatasetRecords.WithLabelValues("accepted").Set(float64(len(accepted)))
	metrics.DatasetRecords.WithLabelValues("rejected").Set(float64(rejected))
	if rejected > 0 {
		log.Warn("dropped malformed records", slog.Int("rejected", rejected))
	}

	s.store(accepted)
	log.Info("dataset loaded from upstream", slog.Int("count", len(accepted)))

	// Пустой снимок не кешируется, чтобы следующий старт снова обратился к источнику.
	if len(accepted) == 0 {
		if err := s.cache.Invalidate(ctx, CacheKey); err != nil {
			log.Warn("failed to invalidate cached dataset", slog.String("key", CacheKey), sl.Err(err))
		}
		return nil
	}
	if err := s.cache.Set(ctx, CacheKey, accepted, s.ttl); err != nil {
		log.Warn("failed to cache dataset", slog.String("key", CacheKey), sl.Err(err))
	}
	return nil
}

// Snapshot возвращает копию загруженного датасета.
func (s *Service) Snapshot() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.transactions)
}

// Loaded сообщает, был ли датасет успешно загружен хотя бы раз.
func (s *Service) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *Service) store(transactions []models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = transactions
	s.loaded = true
}

// Ingest разбирает JSON-массив транзакций и отбрасывает записи, которые не
// декодируются или не проходят валидацию. Возвращает принятые записи в
// исходном порядке и количество отброшенных.
func Ingest(raw json.RawMessage, validate *validator.Validate) ([]models.Transaction, int, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrNotArray, err)
	}

	accepted := make([]models.Transaction, 0, len(items))
	rejected := 0
	for _, item := range items {
		var d models.DummyTransaction
		if err := json.Unmarshal(item, &d); err != nil {
			rejected++
			continue
		}
		if err := validate.Struct(d); err != nil {
			rejected++
			continue
		}
		accepted = append(accepted, d.Transaction())
	}
	return accepted, rejected, nil
}
