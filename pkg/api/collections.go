package api

// CreateCollectionRequest представляет запрос на создание коллекции
type CreateCollectionRequest struct {
	Title string `json:"title"` // название коллекции (1-100 символов)
}

// CollectionResponse представляет коллекцию закладок
type CollectionResponse struct {
	ID     string `json:"id"`      // UUID коллекции
	Title  string `json:"title"`   // название
	UserID string `json:"user_id"` // UUID владельца
}

// CreateItemRequest представляет запрос на создание закладки в коллекции
type CreateItemRequest struct {
	Title string `json:"title"`           // название закладки (1-100 символов)
	Link  string `json:"link,omitempty"`  // внешняя ссылка (опционально)
	Notes string `json:"notes,omitempty"` // заметки (опционально)
}

// ItemResponse представляет закладку
type ItemResponse struct {
	ID           string `json:"id"`              // UUID закладки
	Title        string `json:"title"`           // название
	Link         string `json:"link,omitempty"`  // внешняя ссылка
	Notes        string `json:"notes,omitempty"` // заметки
	CollectionID string `json:"collection_id"`   // UUID коллекции
}
