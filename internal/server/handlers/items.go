package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/linkkeeper/internal/models"
	"github.com/iudanet/linkkeeper/internal/server/linkcheck"
	"github.com/iudanet/linkkeeper/internal/server/storage"
	"github.com/iudanet/linkkeeper/internal/validation"
	"github.com/iudanet/linkkeeper/pkg/api"
)

// ItemsHandler обрабатывает запросы к закладкам внутри коллекций
type ItemsHandler struct {
	logger      *slog.Logger
	collections storage.CollectionStorage
	items       storage.ItemStorage
	links       *linkcheck.Checker
}

// NewItemsHandler создает новый handler для закладок
func NewItemsHandler(logger *slog.Logger, collections storage.CollectionStorage, items storage.ItemStorage, links *linkcheck.Checker) *ItemsHandler {
	return &ItemsHandler{
		logger:      logger,
		collections: collections,
		items:       items,
		links:       links,
	}
}

// Create обрабатывает POST /api/v1/collections/{id}/items
// Если указана ссылка, она проверяется на доступность до сохранения
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := GetUser(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user not found in context")
		WriteUnauthorized(h.logger, w)
		return
	}

	collectionID := r.PathValue("id")
	if collectionID == "" {
		WriteError(h.logger, w, "invalid_request", "collection id is required", http.StatusBadRequest)
		return
	}

	var req api.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode create item request", slog.Any("error", err))
		WriteError(h.logger, w, "invalid_request", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		h.logger.WarnContext(ctx, "invalid item title", slog.Any("error", err))
		WriteError(h.logger, w, "invalid_request", err.Error(), http.StatusBadRequest)
		return
	}

	if req.Link != "" {
		if err := h.links.Check(ctx, req.Link); err != nil {
			h.writeLinkError(w, err)
			return
		}
	}

	// Коллекция чужого пользователя неотличима от несуществующей
	if _, err := h.collections.GetUserCollection(ctx, collectionID, user.ID); err != nil {
		if errors.Is(err, storage.ErrCollectionNotFound) {
			h.logger.WarnContext(ctx, "collection not found or access denied",
				slog.String("collection_id", collectionID),
				slog.String("user_id", user.ID))
			WriteError(h.logger, w, "not_found_or_access_denied", "Collection not found or access denied", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get collection", slog.Any("error", err))
		WriteError(h.logger, w, "internal_error", "internal server error", http.StatusInternalServerError)
		return
	}

	item := &models.Item{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Link:         req.Link,
		Notes:        req.Notes,
		CollectionID: collectionID,
		CreatedAt:    time.Now(),
	}

	if err := h.items.CreateItem(ctx, item); err != nil {
		h.logger.ErrorContext(ctx, "failed to create item", slog.Any("error", err))
		WriteError(h.logger, w, "internal_error", "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "item created",
		slog.String("item_id", item.ID),
		slog.String("collection_id", collectionID))

	resp := api.ItemResponse{
		ID:           item.ID,
		Title:        item.Title,
		Link:         item.Link,
		Notes:        item.Notes,
		CollectionID: item.CollectionID,
	}

	WriteJSON(h.logger, w, resp, http.StatusCreated)
}

// List обрабатывает GET /api/v1/collections/{id}/items
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := GetUser(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user not found in context")
		WriteUnauthorized(h.logger, w)
		return
	}

	collectionID := r.PathValue("id")
	if collectionID == "" {
		WriteError(h.logger, w, "invalid_request", "collection id is required", http.StatusBadRequest)
		return
	}

	if _, err := h.collections.GetUserCollection(ctx, collectionID, user.ID); err != nil {
		if errors.Is(err, storage.ErrCollectionNotFound) {
			WriteError(h.logger, w, "not_found_or_access_denied", "Collection not found or access denied", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get collection", slog.Any("error", err))
		WriteError(h.logger, w, "internal_error", "internal server error", http.StatusInternalServerError)
		return
	}

	items, err := h.items.ListItems(ctx, collectionID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list items", slog.Any("error", err))
		WriteError(h.logger, w, "internal_error", "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, api.ItemResponse{
			ID:           item.ID,
			Title:        item.Title,
			Link:         item.Link,
			Notes:        item.Notes,
			CollectionID: item.CollectionID,
		})
	}

	WriteJSON(h.logger, w, resp, http.StatusOK)
}

// writeLinkError отображает ошибку проверки ссылки в код ответа
func (h *ItemsHandler) writeLinkError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, linkcheck.ErrTimeout):
		WriteError(h.logger, w, linkcheck.CodeTimeout, "External link check timed out", http.StatusBadRequest)
	case errors.Is(err, linkcheck.ErrUnreachable):
		WriteError(h.logger, w, linkcheck.CodeUnreachable, "External link is unreachable or returned error status", http.StatusBadRequest)
	default:
		WriteError(h.logger, w, linkcheck.CodeInvalidFormat, "Link format is invalid or check failed", http.StatusBadRequest)
	}
}
