package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/linkkeeper/internal/models"
	"github.com/iudanet/linkkeeper/internal/server/storage"
	"github.com/iudanet/linkkeeper/internal/validation"
	"github.com/iudanet/linkkeeper/pkg/api"
)

// CollectionsHandler обрабатывает запросы к коллекциям закладок
type CollectionsHandler struct {
	logger      *slog.Logger
	collections storage.CollectionStorage
}

// NewCollectionsHandler создает новый handler для коллекций
func NewCollectionsHandler(logger *slog.Logger, collections storage.CollectionStorage) *CollectionsHandler {
	return &CollectionsHandler{
		logger:      logger,
		collections: collections,
	}
}

// List обрабатывает GET /api/v1/collections?sort_order=asc|desc
// Возвращает только коллекции аутентифицированного пользователя
func (h *CollectionsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := GetUser(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user not found in context")
		WriteUnauthorized(h.logger, w)
		return
	}

	// Сортировка применяется только для известных значений
	var order storage.SortOrder
	switch r.URL.Query().Get("sort_order") {
	case "desc":
		order = storage.SortDesc
	case "", "asc":
		order = storage.SortAsc
	default:
		order = storage.SortNone
	}

	collections, err := h.collections.ListCollections(ctx, user.ID, order)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list collections", slog.Any("error", err))
		WriteError(h.logger, w, "internal_error", "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.CollectionResponse, 0, len(collections))
	for _, collection := range collections {
		resp = append(resp, api.CollectionResponse{
			ID:     collection.ID,
			Title:  collection.Title,
			UserID: collection.UserID,
		})
	}

	WriteJSON(h.logger, w, resp, http.StatusOK)
}

// Create обрабатывает POST /api/v1/collections
func (h *CollectionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := GetUser(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user not found in context")
		WriteUnauthorized(h.logger, w)
		return
	}

	var req api.CreateCollectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode create collection request", slog.Any("error", err))
		WriteError(h.logger, w, "invalid_request", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		h.logger.WarnContext(ctx, "invalid collection title", slog.Any("error", err))
		WriteError(h.logger, w, "invalid_request", err.Error(), http.StatusBadRequest)
		return
	}

	collection := &models.Collection{
		ID:        uuid.New().String(),
		Title:     req.Title,
		UserID:    user.ID,
		CreatedAt: time.Now(),
	}

	if err := h.collections.CreateCollection(ctx, collection); err != nil {
		h.logger.ErrorContext(ctx, "failed to create collection", slog.Any("error", err))
		WriteError(h.logger, w, "internal_error", "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "collection created",
		slog.String("collection_id", collection.ID),
		slog.String("user_id", user.ID))

	resp := api.CollectionResponse{
		ID:     collection.ID,
		Title:  collection.Title,
		UserID: collection.UserID,
	}

	WriteJSON(h.logger, w, resp, http.StatusCreated)
}
