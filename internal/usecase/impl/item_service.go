package impl

import (
	"context"
	"log/slog"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// itemService implements the ItemUsecase interface.
type itemService struct {
	itemRepo        repository.ItemRepository
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// ItemServiceParams holds dependencies for itemService, injected by Fx.
type ItemServiceParams struct {
	fx.In

	ItemRepo repository.ItemRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewItemService is the constructor for itemService.
func NewItemService(params ItemServiceParams) usecase.ItemUsecase {
	defaultPageSize := 50
	maxPageSize := 100
	if params.Config != nil && params.Config.Items != nil {
		defaultPageSize = params.Config.Items.DefaultPageSize
		maxPageSize = params.Config.Items.MaxPageSize
	}

	return &itemService{
		itemRepo:        params.ItemRepo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          params.Logger,
	}
}

func (srv *itemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns a page of items. Out-of-range paging values are clamped
// rather than rejected.
func (srv *itemService) List(ctx context.Context, input *usecase.ListItemsInput) ([]*entity.Item, error) {
	skip := input.Skip
	if skip < 0 {
		skip = 0
	}

	limit := input.Limit
	if limit <= 0 {
		limit = srv.defaultPageSize
	}
	if limit > srv.maxPageSize {
		limit = srv.maxPageSize
	}

	items, err := srv.itemRepo.List(ctx, skip, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list items", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list items")
	}

	return items, nil
}

// Get retrieves a single item by ID.
func (srv *itemService) Get(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := srv.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound.WrapMessage("item does not exist")
		}
		srv.log(ctx).Error("Failed to load item", slog.Any("itemID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load item")
	}

	return item, nil
}

// Create persists a new item.
func (srv *itemService) Create(ctx context.Context, input *usecase.ItemInput) (*entity.Item, error) {
	item := itemFromInput(input)

	if err := srv.itemRepo.Create(ctx, item); err != nil {
		srv.log(ctx).Error("Failed to create item", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create item")
	}
	srv.log(ctx).Debug("Item created", slog.Any("itemID", item.ID))

	return item, nil
}

// Replace overwrites all mutable fields of an existing item and returns the
// updated state.
func (srv *itemService) Replace(ctx context.Context, id uuid.UUID, input *usecase.ItemInput) (*entity.Item, error) {
	item := itemFromInput(input)
	item.ID = id

	if err := srv.itemRepo.Replace(ctx, item); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound.WrapMessage("item does not exist")
		}
		srv.log(ctx).Error("Failed to replace item", slog.Any("itemID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to replace item")
	}

	// Reload to return store-managed timestamps.
	updated, err := srv.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload item after replace")
	}
	srv.log(ctx).Debug("Item replaced", slog.Any("itemID", id))

	return updated, nil
}

// Delete removes an item by ID.
func (srv *itemService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.itemRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return domainerrors.ErrItemNotFound.WrapMessage("item does not exist")
		}
		srv.log(ctx).Error("Failed to delete item", slog.Any("itemID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete item")
	}
	srv.log(ctx).Debug("Item deleted", slog.Any("itemID", id))

	return nil
}

// itemFromInput maps an input DTO to a fresh entity. IsActive defaults to
// true when the caller omitted it.
func itemFromInput(input *usecase.ItemInput) *entity.Item {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	return &entity.Item{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		SKU:         input.SKU,
		Quantity:    input.Quantity,
		Category:    input.Category,
		IsActive:    isActive,
	}
}
