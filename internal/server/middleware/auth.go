package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/linkkeeper/internal/server/handlers"
	"github.com/iudanet/linkkeeper/internal/server/storage"
	"github.com/iudanet/linkkeeper/internal/server/token"
)

// AuthMiddleware создает middleware для проверки session токена.
// Токен валидируется, затем subject резолвится в пользователя через storage.
// Любой отказ (нет заголовка, битый токен, истекшая сессия, удаленный
// пользователь) дает один и тот же 401 ответ - причины не различимы снаружи.
func AuthMiddleware(logger *slog.Logger, tokens *token.Service, userStorage storage.UserStorage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.WarnContext(ctx, "missing Authorization header")
				handlers.WriteUnauthorized(logger, w)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.WarnContext(ctx, "invalid Authorization header format")
				handlers.WriteUnauthorized(logger, w)
				return
			}

			subject, err := tokens.Validate(parts[1])
			if err != nil {
				// Причина (подпись, expiry, idle timeout) остается в логах
				logger.WarnContext(ctx, "token validation failed", slog.Any("error", err))
				handlers.WriteUnauthorized(logger, w)
				return
			}

			// Пользователь мог быть удален после выпуска токена -
			// это тоже отказ аутентификации, а не not found
			user, err := userStorage.GetUserByUsername(ctx, subject)
			if err != nil {
				if errors.Is(err, storage.ErrUserNotFound) {
					logger.WarnContext(ctx, "token subject not found", slog.String("username", subject))
					handlers.WriteUnauthorized(logger, w)
					return
				}
				logger.ErrorContext(ctx, "failed to resolve token subject", slog.Any("error", err))
				handlers.WriteError(logger, w, "internal_error", "internal server error", http.StatusInternalServerError)
				return
			}

			logger.DebugContext(ctx, "user authenticated",
				slog.String("user_id", user.ID),
				slog.String("username", user.Username))

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, handlers.UserKey, user)))
		})
	}
}
