package handlers

import (
	"context"

	"github.com/iudanet/linkkeeper/internal/models"
)

// contextKey тип для ключей контекста
type contextKey string

// UserKey ключ для хранения аутентифицированного пользователя в контексте
const UserKey contextKey = "user"

// GetUser извлекает пользователя из контекста запроса
// Пользователь устанавливается auth middleware
func GetUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserKey).(*models.User)
	return user, ok
}
