package models

import "time"

// Stats агрегирует статистику каталога пользователя для экрана аналитики.
type Stats struct {
	TotalProducts  int             `json:"totalProducts"`
	CategoryCounts map[string]int  `json:"categoryCounts"`
	RecentProducts []RecentProduct `json:"recentProducts"` // Последние 5 по дате создания
}

// RecentProduct — сокращённое представление товара в списке недавних.
type RecentProduct struct {
	ID        string    `json:"id"`
	Barcode   string    `json:"barcode"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}
