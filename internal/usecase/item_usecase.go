package usecase

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// ListItemsInput carries the paging window for item listing.
type ListItemsInput struct {
	Skip  int
	Limit int
}

// ItemInput defines the full mutable state of an item, used for both create
// and replace. IsActive is a pointer so an omitted field defaults to true.
type ItemInput struct {
	Name        string
	Price       float64
	Description string
	SKU         string
	Quantity    int
	Category    string
	IsActive    *bool
}

// ItemUsecase defines the interface for catalog item operations.
type ItemUsecase interface {
	List(ctx context.Context, input *ListItemsInput) ([]*entity.Item, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	Create(ctx context.Context, input *ItemInput) (*entity.Item, error)
	Replace(ctx context.Context, id uuid.UUID, input *ItemInput) (*entity.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
