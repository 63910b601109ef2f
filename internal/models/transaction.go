// Package models содержит доменные структуры, описывающие транзакцию продажи,
// а также вспомогательные типы для приёма данных из внешнего источника (JSON-датасет).
package models

// Transaction представляет одну запись о продаже в том виде, в котором её
// использует дашборд. Все поля приходят из внешнего датасета как есть.
type Transaction struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Sold        bool    `json:"sold"`
	DateOfSale  string  `json:"dateOfSale"`
	Image       string  `json:"image,omitempty"`
}

// DummyTransaction используется для приёма записи из JSON-датасета,
// прежде чем конвертировать её в Transaction.
// Цена приходит указателем, чтобы отличать отсутствующее поле от нулевой цены.
type DummyTransaction struct {
	ID          int      `json:"id"`
	Title       string   `json:"title" validate:"required"`              // Название товара
	Description string   `json:"description"`                            // Описание
	Price       *float64 `json:"price" validate:"required,gte=0"`        // Цена (>=0)
	Category    string   `json:"category"`                               // Категория
	Sold        bool     `json:"sold"`                                   // Продан ли товар
	DateOfSale  string   `json:"dateOfSale" validate:"required,rfc3339"` // Дата продажи в RFC 3339
	Image       string   `json:"image"`                                  // Ссылка на изображение
}

// Transaction конвертирует провалидированную запись в Transaction.
func (d DummyTransaction) Transaction() Transaction {
	var price float64
	if d.Price != nil {
		price = *d.Price
	}
	return Transaction{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Price:       price,
		Category:    d.Category,
		Sold:        d.Sold,
		DateOfSale:  d.DateOfSale,
		Image:       d.Image,
	}
}
