package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/linkkeeper/internal/crypto"
	"github.com/iudanet/linkkeeper/internal/models"
	"github.com/iudanet/linkkeeper/internal/server/ratelimit"
	"github.com/iudanet/linkkeeper/internal/server/storage"
	"github.com/iudanet/linkkeeper/internal/server/token"
	"github.com/iudanet/linkkeeper/internal/validation"
	"github.com/iudanet/linkkeeper/pkg/api"
)

// AuthHandler обрабатывает запросы регистрации и аутентификации
type AuthHandler struct {
	logger      *slog.Logger
	userStorage storage.UserStorage
	tokens      *token.Service
	limiter     *ratelimit.Limiter
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, tokens *token.Service, limiter *ratelimit.Limiter) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		userStorage: userStorage,
		tokens:      tokens,
		limiter:     limiter,
	}
}

// Register обрабатывает POST /api/v1/auth/register
// Регистрация нового пользователя
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		WriteError(h.logger, w, "invalid_request", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateUsername(req.Username); err != nil {
		h.logger.WarnContext(ctx, "invalid username", slog.String("username", req.Username), slog.Any("error", err))
		WriteError(h.logger, w, "invalid_request", err.Error(), http.StatusBadRequest)
		return
	}

	if err := validation.ValidatePassword(req.Password); err != nil {
		h.logger.WarnContext(ctx, "invalid password", slog.String("username", req.Username), slog.Any("error", err))
		WriteError(h.logger, w, "invalid_request", err.Error(), http.StatusBadRequest)
		return
	}

	// Хешируем пароль, plaintext нигде не сохраняется
	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		WriteError(h.logger, w, "internal_error", "internal server error", http.StatusInternalServerError)
		return
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("username", req.Username))
			WriteError(h.logger, w, "user_exists", "User already exists or bad request", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		WriteError(h.logger, w, "internal_error", "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully",
		slog.String("username", user.Username),
		slog.String("user_id", user.ID))

	resp := api.UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}

	WriteJSON(h.logger, w, resp, http.StatusCreated)
}

// Login обрабатывает POST /api/v1/auth/login
// Каждая попытка, успешная или нет, проходит через rate limiter до
// любой работы с учетными данными
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		WriteError(h.logger, w, "invalid_request", "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.Password == "" {
		WriteError(h.logger, w, "invalid_request", "username and password are required", http.StatusBadRequest)
		return
	}

	if err := h.limiter.CheckAndRecord(ctx, req.Username); err != nil {
		var rlErr *ratelimit.Error
		if errors.As(err, &rlErr) {
			WriteError(h.logger, w, rlErr.Code, rlErr.Error(), http.StatusTooManyRequests)
			return
		}
		h.logger.ErrorContext(ctx, "rate limiter failed", slog.Any("error", err))
		WriteError(h.logger, w, "internal_error", "internal server error", http.StatusInternalServerError)
		return
	}

	// Причина отказа (нет пользователя / неверный пароль) логируется,
	// но наружу уходит единый ответ
	user, err := h.userStorage.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("username", req.Username))
			WriteUnauthorized(h.logger, w)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		WriteError(h.logger, w, "internal_error", "internal server error", http.StatusInternalServerError)
		return
	}

	ok, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("username", req.Username))
		WriteUnauthorized(h.logger, w)
		return
	}

	accessToken, _, err := h.tokens.Issue(user.Username)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue access token", slog.Any("error", err))
		WriteError(h.logger, w, "internal_error", "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user logged in successfully",
		slog.String("username", user.Username),
		slog.String("user_id", user.ID))

	resp := api.LoginResponse{
		Message:     "Login successful",
		AccessToken: accessToken,
		TokenType:   "bearer",
	}

	WriteJSON(h.logger, w, resp, http.StatusOK)
}
