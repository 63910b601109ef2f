package viewmodel

import (
	"slices"
	"strings"
	"time"

	"github.com/magabrotheeeer/sales-dashboard/internal/models"
)

// Action описывает действие пользователя или загрузки данных, применяемое редьюсером.
type Action interface {
	apply(State) State
}

// Load заменяет полный датасет.
type Load struct {
	Transactions []models.Transaction
}

// SetSearchTerm задаёт поисковую строку; она приводится к нижнему регистру.
type SetSearchTerm struct {
	Text string
}

// SetMonth задаёт месяц фильтра; 0 снимает фильтр по месяцу.
type SetMonth struct {
	Month time.Month
}

// SetPage переключает страницу без пересчёта фильтра.
type SetPage struct {
	Page int
}

// Reduce применяет действие к состоянию и возвращает новое состояние.
// Nil action возвращает состояние без изменений.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

func (a Load) apply(s State) State {
	s.dataset = slices.Clone(a.Transactions)
	return s.recompute()
}

func (a SetSearchTerm) apply(s State) State {
	s.searchTerm = strings.ToLower(a.Text)
	return s.recompute()
}

func (a SetMonth) apply(s State) State {
	if a.Month < 0 || a.Month > time.December {
		a.Month = 0
	}
	s.month = a.Month
	return s.recompute()
}

// apply ограничивает номер страницы диапазоном [1, TotalPages]; пустой список
// всегда остаётся на первой странице.
func (a SetPage) apply(s State) State {
	last := max(s.TotalPages(), 1)
	s.page = min(max(a.Page, 1), last)
	return s
}
