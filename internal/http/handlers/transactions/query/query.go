// Package query разбирает параметры запроса представления транзакций
// (search, month, page) и строит по ним состояние модели представления.
package query

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/sales-dashboard/internal/lib/metrics"
	"github.com/magabrotheeeer/sales-dashboard/internal/lib/month"
	"github.com/magabrotheeeer/sales-dashboard/internal/models"
	"github.com/magabrotheeeer/sales-dashboard/internal/viewmodel"
)

// Query содержит параметры запроса до преобразования в действия редьюсера.
type Query struct {
	Search string
	Month  string `validate:"omitempty,month"`
	Page   string `validate:"omitempty,number"`
}

// NewValidator возвращает валидатор с зарегистрированным тегом month.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("month", func(fl validator.FieldLevel) bool {
		_, err := month.Parse(fl.Field().String())
		return err == nil
	})
	return v
}

// Parse читает search, month и page из строки запроса и валидирует их.
// Возвращаемая ошибка имеет тип validator.ValidationErrors.
func Parse(r *http.Request, v *validator.Validate) (Query, error) {
	values := r.URL.Query()
	q := Query{
		Search: values.Get("search"),
		Month:  values.Get("month"),
		Page:   values.Get("page"),
	}
	if err := v.Struct(q); err != nil {
		return Query{}, err
	}
	return q, nil
}

// MonthValue возвращает выбранный месяц или 0.
func (q Query) MonthValue() time.Month {
	m, _ := month.Parse(q.Month)
	return m
}

// PageValue возвращает запрошенную страницу; по умолчанию первая.
// Слишком большое число превращается в math.MaxInt и ограничивается последней страницей.
func (q Query) PageValue() int {
	p, err := strconv.Atoi(q.Page)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt
	}
	if err != nil {
		return 1
	}
	return p
}

// Source отдаёт текущий снимок датасета.
type Source interface {
	Snapshot() []models.Transaction
}

// Builder строит состояние модели представления для каждого запроса.
type Builder struct {
	source Source
	opts   []viewmodel.Option
}

// NewBuilder создаёт Builder с заданным размером страницы и локацией.
func NewBuilder(source Source, pageSize int, loc *time.Location) *Builder {
	return &Builder{
		source: source,
		opts:   []viewmodel.Option{viewmodel.WithPageSize(pageSize), viewmodel.WithLocation(loc)},
	}
}

// Build применяет к свежему состоянию действия Load, SetSearchTerm, SetMonth и SetPage.
func (b *Builder) Build(q Query) viewmodel.State {
	start := time.Now()
	defer func() { metrics.ViewBuild.Observe(time.Since(start).Seconds()) }()

	return viewmodel.New(b.opts...).
		Load(b.source.Snapshot()).
		SetSearchTerm(q.Search).
		SetMonth(q.MonthValue()).
		SetPage(q.PageValue())
}
