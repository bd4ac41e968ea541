package models

import "time"

// DefaultCategory — зарезервированная категория по умолчанию.
// Существует для каждого пользователя виртуально, без строки в хранилище,
// и не может быть удалена.
const DefaultCategory = "Uncategorized"

// Category представляет пользовательскую категорию товаров.
// Пара (user, name) уникальна.
type Category struct {
	ID        int       `json:"id"`
	UserUID   string    `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// DummyCategory используется для приёма данных о новой категории из JSON-запроса.
type DummyCategory struct {
	Name string `json:"name" validate:"required,max=50"`
}
