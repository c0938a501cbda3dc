package models

import "time"

// User представляет пользователя в системе
type User struct {
	ID           string    `json:"id"`         // UUID пользователя
	Username     string    `json:"username"`   // уникальный username
	PasswordHash string    `json:"-"`          // argon2id хеш пароля (PHC формат), никогда не отдается наружу
	CreatedAt    time.Time `json:"created_at"` // время создания
}
