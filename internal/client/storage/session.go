package storage

import (
	"context"
	"time"
)

// Session представляет сохраненную сессию пользователя на клиенте
// Токен не продлевается при использовании: когда истечет срок жизни
// или idle timeout, сервер ответит 401 и потребуется новый login
type Session struct {
	Username    string    `json:"username"`     // username пользователя
	AccessToken string    `json:"access_token"` // session token сервера
	SavedAt     time.Time `json:"saved_at"`     // время сохранения сессии
}

// SessionStorage defines interface for local session persistence
type SessionStorage interface {
	// SaveSession stores session, replacing any existing one
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves stored session
	// Returns ErrSessionNotFound if no session is stored
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes stored session
	// Deleting a missing session is not an error
	DeleteSession(ctx context.Context) error
}
