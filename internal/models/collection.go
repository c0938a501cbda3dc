package models

import "time"

// Collection представляет коллекцию закладок пользователя
type Collection struct {
	ID        string    `json:"id"`         // UUID коллекции
	Title     string    `json:"title"`      // название коллекции
	UserID    string    `json:"user_id"`    // UUID владельца
	CreatedAt time.Time `json:"created_at"` // время создания
}

// Item представляет закладку внутри коллекции
type Item struct {
	ID           string    `json:"id"`              // UUID закладки
	Title        string    `json:"title"`           // название
	Link         string    `json:"link,omitempty"`  // внешняя ссылка (может быть пустой)
	Notes        string    `json:"notes,omitempty"` // заметки (могут быть пустыми)
	CollectionID string    `json:"collection_id"`   // UUID коллекции
	CreatedAt    time.Time `json:"created_at"`      // время создания
}
