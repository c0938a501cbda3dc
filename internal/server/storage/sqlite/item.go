package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iudanet/linkkeeper/internal/models"
)

// CreateItem creates a new item in a collection
func (s *Storage) CreateItem(ctx context.Context, item *models.Item) error {
	query := `
		INSERT INTO items (id, title, link, notes, collection_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		item.ID,
		item.Title,
		nullString(item.Link),
		nullString(item.Notes),
		item.CollectionID,
		item.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	return nil
}

// ListItems retrieves all items of a collection
func (s *Storage) ListItems(ctx context.Context, collectionID string) ([]*models.Item, error) {
	query := `
		SELECT id, title, link, notes, collection_id, created_at
		FROM items
		WHERE collection_id = ?
	`

	rows, err := s.db.QueryContext(ctx, query, collectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := make([]*models.Item, 0)
	for rows.Next() {
		item := &models.Item{}
		var link, notes sql.NullString

		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&link,
			&notes,
			&item.CollectionID,
			&item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}

		item.Link = link.String
		item.Notes = notes.String
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return items, nil
}

// nullString конвертирует пустую строку в NULL
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
