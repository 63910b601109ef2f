// Package month содержит вспомогательные функции для работы с названиями
// календарных месяцев, по которым фильтруются транзакции.
package month

import (
	"errors"
	"strings"
	"time"
)

// ErrUnknownMonth возвращается, если строка не является английским названием месяца.
var ErrUnknownMonth = errors.New("unknown month name")

// Names возвращает 12 полных английских названий месяцев по порядку.
func Names() []string {
	names := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		names = append(names, m.String())
	}
	return names
}

// Parse переводит название месяца в time.Month без учёта регистра.
// Пустая строка означает "все месяцы" и возвращает 0 без ошибки.
func Parse(name string) (time.Month, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, nil
	}
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(m.String(), name) {
			return m, nil
		}
	}
	return 0, ErrUnknownMonth
}

// Of возвращает календарный месяц даты продажи в указанной локации.
// Второе значение false, если дата не разбирается как RFC 3339.
func Of(dateOfSale string, loc *time.Location) (time.Month, bool) {
	t, err := time.Parse(time.RFC3339, dateOfSale)
	if err != nil {
		return 0, false
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Month(), true
}
