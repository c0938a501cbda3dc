package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/linkkeeper/internal/models"
	"github.com/iudanet/linkkeeper/internal/server/storage"
)

// CreateCollection creates a new collection
func (s *Storage) CreateCollection(ctx context.Context, collection *models.Collection) error {
	query := `
		INSERT INTO collections (id, title, user_id, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		collection.ID,
		collection.Title,
		collection.UserID,
		collection.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert collection: %w", err)
	}

	return nil
}

// GetUserCollection retrieves collection by ID scoped to its owner
// Коллекция другого пользователя неотличима от несуществующей
func (s *Storage) GetUserCollection(ctx context.Context, collectionID, userID string) (*models.Collection, error) {
	query := `
		SELECT id, title, user_id, created_at
		FROM collections
		WHERE id = ? AND user_id = ?
	`

	collection := &models.Collection{}

	err := s.db.QueryRowContext(ctx, query, collectionID, userID).Scan(
		&collection.ID,
		&collection.Title,
		&collection.UserID,
		&collection.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrCollectionNotFound
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}

	return collection, nil
}

// ListCollections retrieves all collections of a user
func (s *Storage) ListCollections(ctx context.Context, userID string, order storage.SortOrder) ([]*models.Collection, error) {
	query := `
		SELECT id, title, user_id, created_at
		FROM collections
		WHERE user_id = ?
	`

	// Порядок подставляется только из фиксированного набора значений
	switch order {
	case storage.SortAsc:
		query += " ORDER BY title ASC"
	case storage.SortDesc:
		query += " ORDER BY title DESC"
	}

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query collections: %w", err)
	}
	defer rows.Close()

	collections := make([]*models.Collection, 0)
	for rows.Next() {
		collection := &models.Collection{}
		if err := rows.Scan(
			&collection.ID,
			&collection.Title,
			&collection.UserID,
			&collection.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan collection: %w", err)
		}
		collections = append(collections, collection)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate collections: %w", err)
	}

	return collections, nil
}
