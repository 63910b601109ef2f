// Package viewmodel реализует модель представления дашборда продаж:
// неизменяемое состояние ViewState и чистый редьюсер (State, Action) -> State.
//
// Отфильтрованный список, статистика и гистограмма цен всегда являются
// функцией от (датасет, поисковая строка, месяц) и пересчитываются вместе.
// Номер страницы сбрасывается на первую при каждом изменении фильтра и
// может меняться отдельно в пределах [1, TotalPages].
package viewmodel

import (
	"slices"
	"time"

	"github.com/magabrotheeeer/sales-dashboard/internal/models"
)

// DefaultPageSize количество транзакций на одной странице по умолчанию.
const DefaultPageSize = 5

// State хранит снимок модели представления. Значение неизменяемо, любое действие
// возвращает новый State, не трогая исходный.
type State struct {
	dataset    []models.Transaction
	searchTerm string
	month      time.Month
	page       int
	pageSize   int
	location   *time.Location

	filtered []models.Transaction
	stats    Statistics
	buckets  []PriceBucket
}

// Option настраивает начальное состояние.
type Option func(*State)

// WithPageSize задаёт размер страницы; значения меньше единицы игнорируются.
func WithPageSize(n int) Option {
	return func(s *State) {
		if n >= 1 {
			s.pageSize = n
		}
	}
}

// WithLocation задаёт локацию, в которой дата продажи переводится в месяц.
func WithLocation(loc *time.Location) Option {
	return func(s *State) {
		if loc != nil {
			s.location = loc
		}
	}
}

// New создаёт пустое состояние: без данных и фильтров, на первой странице.
func New(opts ...Option) State {
	s := State{
		page:     1,
		pageSize: DefaultPageSize,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s.recompute()
}

func (s State) criteria() Criteria {
	return Criteria{Search: s.searchTerm, Month: s.month, Location: s.location}
}

// recompute пересчитывает отфильтрованный список, статистику и гистограмму
// и сбрасывает страницу на первую.
func (s State) recompute() State {
	s.filtered = Filter(s.dataset, s.criteria())
	s.stats = ComputeStatistics(s.filtered)
	s.buckets = BucketPrices(s.filtered)
	s.page = 1
	return s
}

// Load заменяет датасет. Эквивалентно Reduce(s, Load{...}).
func (s State) Load(transactions []models.Transaction) State {
	return Reduce(s, Load{Transactions: transactions})
}

// SetSearchTerm задаёт поисковую строку. Эквивалентно Reduce(s, SetSearchTerm{...}).
func (s State) SetSearchTerm(text string) State {
	return Reduce(s, SetSearchTerm{Text: text})
}

// SetMonth задаёт месяц (0 означает все месяцы). Эквивалентно Reduce(s, SetMonth{...}).
func (s State) SetMonth(m time.Month) State {
	return Reduce(s, SetMonth{Month: m})
}

// SetPage переключает страницу. Эквивалентно Reduce(s, SetPage{...}).
func (s State) SetPage(n int) State {
	return Reduce(s, SetPage{Page: n})
}

// SearchTerm возвращает текущую поисковую строку в нижнем регистре.
func (s State) SearchTerm() string { return s.searchTerm }

// Month возвращает выбранный месяц или 0.
func (s State) Month() time.Month { return s.month }

// Page возвращает текущую страницу (с единицы).
func (s State) Page() int { return s.page }

// PageSize возвращает размер страницы.
func (s State) PageSize() int { return s.pageSize }

// Dataset возвращает копию полного датасета.
func (s State) Dataset() []models.Transaction { return slices.Clone(s.dataset) }

// Filtered возвращает копию отфильтрованного списка.
func (s State) Filtered() []models.Transaction { return slices.Clone(s.filtered) }

// Statistics возвращает статистику по отфильтрованному списку.
func (s State) Statistics() Statistics { return s.stats }

// PriceBuckets возвращает копию гистограммы цен.
func (s State) PriceBuckets() []PriceBucket { return slices.Clone(s.buckets) }

// TotalPages возвращает количество страниц отфильтрованного списка.
func (s State) TotalPages() int { return TotalPages(len(s.filtered), s.pageSize) }

// CurrentPageItems возвращает транзакции текущей страницы.
func (s State) CurrentPageItems() []models.Transaction {
	return Paginate(s.filtered, s.page, s.pageSize)
}
