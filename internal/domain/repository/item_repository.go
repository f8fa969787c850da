package repository

import (
	"context"
	"errors"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrItemNotFound is returned when an item lookup matches no record.
var ErrItemNotFound = errors.New("item not found")

// ItemRepository defines the persistence operations for catalog items.
type ItemRepository interface {
	// List returns a page of items ordered by creation time.
	List(ctx context.Context, offset, limit int) ([]*entity.Item, error)

	// FindByID retrieves a single item by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// Create persists a new item. The store assigns ID and CreatedAt.
	Create(ctx context.Context, item *entity.Item) error

	// Replace overwrites all mutable fields of an existing item.
	// Returns ErrItemNotFound when no row matched.
	Replace(ctx context.Context, item *entity.Item) error

	// Delete removes an item. Returns ErrItemNotFound when no row matched.
	Delete(ctx context.Context, id uuid.UUID) error
}
