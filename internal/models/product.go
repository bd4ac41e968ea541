package models

import "time"

// Product представляет товар, привязанный к владельцу и категории.
// Пара (user, barcode) уникальна.
type Product struct {
	ID          string    `json:"id"` // Уникальный идентификатор товара
	UserUID     string    `json:"-"`  // Владелец; наружу не отдаётся
	Barcode     string    `json:"barcode"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DummyProduct используется для приёма данных о новом товаре из JSON-запроса,
// прежде чем конвертировать их в Product. Поля с умолчаниями приходят указателями,
// чтобы отличать отсутствующее значение от нулевого.
type DummyProduct struct {
	Barcode     string   `json:"barcode" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"` // По умолчанию 0
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"` // По умолчанию "Uncategorized"
}

// UpdateProduct описывает частичное обновление товара: меняются только поля,
// явно присутствующие в запросе, остальные сохраняют прежние значения.
type UpdateProduct struct {
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
}

// ProductFilter задаёт параметры выборки товаров пользователя.
// Пустая категория или "all" означает отсутствие фильтра по категории.
type ProductFilter struct {
	Category string
	Search   string
}
