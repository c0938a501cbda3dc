package storage

import (
	"context"

	"github.com/iudanet/linkkeeper/internal/models"
)

// SortOrder задает порядок сортировки коллекций по названию
type SortOrder string

const (
	// SortNone - без явной сортировки
	SortNone SortOrder = ""
	// SortAsc - по возрастанию названия
	SortAsc SortOrder = "asc"
	// SortDesc - по убыванию названия
	SortDesc SortOrder = "desc"
)

// CollectionStorage defines interface for collection persistence
type CollectionStorage interface {
	// CreateCollection creates a new collection
	CreateCollection(ctx context.Context, collection *models.Collection) error

	// GetUserCollection retrieves collection by ID scoped to its owner
	// Returns ErrCollectionNotFound if collection doesn't exist
	// or belongs to another user
	GetUserCollection(ctx context.Context, collectionID, userID string) (*models.Collection, error)

	// ListCollections retrieves all collections of a user
	// Returns empty slice if user has no collections
	ListCollections(ctx context.Context, userID string, order SortOrder) ([]*models.Collection, error)
}

// ItemStorage defines interface for item persistence
type ItemStorage interface {
	// CreateItem creates a new item in a collection
	CreateItem(ctx context.Context, item *models.Item) error

	// ListItems retrieves all items of a collection
	// Returns empty slice if collection has no items
	ListItems(ctx context.Context, collectionID string) ([]*models.Item, error)
}
