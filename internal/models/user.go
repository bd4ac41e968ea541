// Package models содержит доменные структуры каталога: пользователей,
// товары и категории, а также вспомогательные типы для приёма JSON-запросов.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
// PasswordHash никогда не сериализуется наружу.
type User struct {
	UID             string     `json:"id"`       // Уникальный идентификатор пользователя
	Username        string     `json:"username"` // Имя пользователя (уникальное, в нижнем регистре)
	Email           *string    `json:"email,omitempty"`
	PasswordHash    string     `json:"-"`
	IsEmailVerified bool       `json:"isEmailVerified"`
	OTPCode         *string    `json:"-"` // Код подтверждения email, nil если не запрошен
	OTPExpiresAt    *time.Time `json:"-"` // Срок действия кода подтверждения
	CreatedAt       time.Time  `json:"createdAt"`
}
