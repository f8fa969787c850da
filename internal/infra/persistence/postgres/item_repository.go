package postgres

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// itemRepository implements the domain.ItemRepository interface using GORM.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

// List returns a page of items ordered by creation time, newest first.
func (repo *itemRepository) List(ctx context.Context, offset, limit int) ([]*entity.Item, error) {
	var itemMs []model.ItemModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&itemMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	items := make([]*entity.Item, 0, len(itemMs))
	for i := range itemMs {
		items = append(items, toItemDomain(&itemMs[i]))
	}

	return items, nil
}

// FindByID retrieves a single item by its unique ID.
func (repo *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var itemM model.ItemModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item by id")
	}

	return toItemDomain(&itemM), nil
}

// Create persists a new item and writes the store-generated ID and timestamps
// back onto the entity.
func (repo *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Replace overwrites all mutable fields of an existing item.
func (repo *itemRepository) Replace(ctx context.Context, item *entity.Item) error {
	// Select lists the columns explicitly so zero values (price 0,
	// is_active false) are written rather than skipped.
	result := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("id = ?", item.ID).
		Select("name", "price", "description", "sku", "quantity", "category", "is_active").
		Updates(fromItemDomain(item))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to replace item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// Delete removes an item by ID.
func (repo *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// toItemDomain maps the persistence model back to a pure domain entity.
func toItemDomain(itemM *model.ItemModel) *entity.Item {
	return &entity.Item{
		ID:          itemM.ID,
		Name:        itemM.Name,
		Price:       itemM.Price,
		Description: itemM.Description,
		SKU:         itemM.SKU,
		Quantity:    itemM.Quantity,
		Category:    itemM.Category,
		IsActive:    itemM.IsActive,
		CreatedAt:   itemM.CreatedAt,
		UpdatedAt:   itemM.UpdatedAt,
	}
}

// fromItemDomain maps a domain entity to its GORM persistence model.
func fromItemDomain(item *entity.Item) *model.ItemModel {
	return &model.ItemModel{
		ID:          item.ID,
		Name:        item.Name,
		Price:       item.Price,
		Description: item.Description,
		SKU:         item.SKU,
		Quantity:    item.Quantity,
		Category:    item.Category,
		IsActive:    item.IsActive,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
