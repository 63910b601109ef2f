package viewmodel

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/magabrotheeeer/sales-dashboard/internal/lib/month"
	"github.com/magabrotheeeer/sales-dashboard/internal/models"
)

// Criteria описывает предикат фильтрации: поиск по тексту и выбранный месяц.
type Criteria struct {
	Search   string         // Поисковая строка, пустая означает "все"
	Month    time.Month     // Выбранный месяц, 0 означает "все месяцы"
	Location *time.Location // Локация, в которой вычисляется месяц даты продажи
}

// Match сообщает, проходит ли транзакция оба условия фильтра.
func (c Criteria) Match(t models.Transaction) bool {
	return c.matchSearch(t) && c.matchMonth(t)
}

func (c Criteria) matchSearch(t models.Transaction) bool {
	term := strings.ToLower(c.Search)
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), term) ||
		strings.Contains(strings.ToLower(t.Description), term)
}

func (c Criteria) matchMonth(t models.Transaction) bool {
	if c.Month == 0 {
		return true
	}
	m, ok := month.Of(t.DateOfSale, c.Location)
	return ok && m == c.Month
}

// Filter возвращает новые транзакции, удовлетворяющие критериям, сохраняя исходный порядок.
func Filter(transactions []models.Transaction, c Criteria) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if c.Match(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Statistics содержит сводку по отфильтрованным транзакциям.
type Statistics struct {
	TotalSales   float64 `json:"total_sales"`    // Сумма цен проданных товаров
	SoldCount    int     `json:"sold_count"`     // Количество проданных товаров
	NotSoldCount int     `json:"not_sold_count"` // Количество непроданных товаров
}

// TotalSalesDisplay форматирует сумму продаж с двумя знаками после запятой.
// Внутреннее значение TotalSales не округляется.
func (s Statistics) TotalSalesDisplay() string {
	return strconv.FormatFloat(s.TotalSales, 'f', 2, 64)
}

// ComputeStatistics считает сумму продаж и количество проданных и непроданных товаров.
func ComputeStatistics(transactions []models.Transaction) Statistics {
	var s Statistics
	for _, t := range transactions {
		if t.Sold {
			s.TotalSales += t.Price
			s.SoldCount++
		}
	}
	s.NotSoldCount = len(transactions) - s.SoldCount
	return s
}

// PriceBucket описывает один столбец гистограммы цен.
type PriceBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type priceRange struct {
	label string
	upper float64
}

// priceRanges упорядочены по возрастанию, верхняя граница включительно.
var priceRanges = []priceRange{
	{label: "0-100", upper: 100},
	{label: "101-200", upper: 200},
	{label: "201-300", upper: 300},
	{label: "301-400", upper: 400},
	{label: "401-500", upper: 500},
	{label: "501-600", upper: 600},
	{label: "601-700", upper: 700},
	{label: "701-800", upper: 800},
	{label: "801-900", upper: 900},
	{label: "901+", upper: math.Inf(1)},
}

// BucketLabels возвращает подписи всех 10 ценовых диапазонов по порядку.
func BucketLabels() []string {
	labels := make([]string, len(priceRanges))
	for i, r := range priceRanges {
		labels[i] = r.label
	}
	return labels
}

// BucketPrices раскладывает транзакции по фиксированным ценовым диапазонам.
// Пустые диапазоны возвращаются с нулевым счётчиком.
func BucketPrices(transactions []models.Transaction) []PriceBucket {
	buckets := make([]PriceBucket, len(priceRanges))
	for i, r := range priceRanges {
		buckets[i].Label = r.label
	}
	for _, t := range transactions {
		for i, r := range priceRanges {
			if t.Price <= r.upper {
				buckets[i].Count++
				break
			}
		}
	}
	return buckets
}

// TotalPages возвращает количество страниц для n элементов; 0 для пустого списка.
func TotalPages(n, pageSize int) int {
	if n <= 0 || pageSize <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

// Paginate возвращает копию страницы page (с единицы) размером не больше pageSize.
func Paginate(transactions []models.Transaction, page, pageSize int) []models.Transaction {
	if page < 1 || pageSize <= 0 {
		return []models.Transaction{}
	}
	start := (page - 1) * pageSize
	if start >= len(transactions) {
		return []models.Transaction{}
	}
	end := min(start+pageSize, len(transactions))
	items := make([]models.Transaction, end-start)
	copy(items, transactions[start:end])
	return items
}
