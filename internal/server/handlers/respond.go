package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/linkkeeper/pkg/api"
)

// Единый ответ на любую ошибку аутентификации.
// Тело и статус одинаковы для неизвестного пользователя, неверного пароля
// и невалидного токена - клиент не должен различать причины.
const (
	UnauthorizedCode    = "unauthorized"
	UnauthorizedMessage = "Invalid credentials"
)

// WriteJSON отправляет JSON ответ
func WriteJSON(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// WriteError отправляет ошибку в едином формате {"error":{"code","message"}}
func WriteError(logger *slog.Logger, w http.ResponseWriter, code, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error: api.ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
	WriteJSON(logger, w, resp, statusCode)
}

// WriteUnauthorized отправляет унифицированный 401 ответ
// Используется и хендлером логина, и auth middleware, чтобы тела
// были байт-в-байт одинаковыми для всех причин отказа
func WriteUnauthorized(logger *slog.Logger, w http.ResponseWriter) {
	WriteError(logger, w, UnauthorizedCode, UnauthorizedMessage, http.StatusUnauthorized)
}
