package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	mockRepo "catalog/internal/mocks/repository"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// itemServiceFixtures holds all test dependencies for item service tests.
type itemServiceFixtures struct {
	service  usecase.ItemUsecase
	itemRepo *mockRepo.MockItemRepository
}

func createTestItemService(t *testing.T) itemServiceFixtures {
	itemRepo := mockRepo.NewMockItemRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Nil config falls back to the default paging bounds (50/100).
	service := NewItemService(ItemServiceParams{
		ItemRepo: itemRepo,
		Logger:   logger,
	})

	return itemServiceFixtures{
		service:  service,
		itemRepo: itemRepo,
	}
}

func TestItemService_List_DefaultPaging(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	items := []*entity.Item{{ID: uuid.New(), Name: "Widget"}}

	fx.itemRepo.On("List", ctx, 0, 50).Return(items, nil)

	result, err := fx.service.List(ctx, &usecase.ListItemsInput{})

	require.NoError(t, err)
	assert.Equal(t, items, result)
}

func TestItemService_List_ClampsPaging(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	// Negative skip clamps to zero, oversized limit clamps to the max.
	fx.itemRepo.On("List", ctx, 0, 100).Return([]*entity.Item{}, nil)

	result, err := fx.service.List(ctx, &usecase.ListItemsInput{Skip: -5, Limit: 500})

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestItemService_List_PassesWindowThrough(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.itemRepo.On("List", ctx, 20, 10).Return([]*entity.Item{}, nil)

	_, err := fx.service.List(ctx, &usecase.ListItemsInput{Skip: 20, Limit: 10})

	require.NoError(t, err)
}

func TestItemService_Get_NotFound(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.itemRepo.On("FindByID", ctx, id).Return(nil, repository.ErrItemNotFound)

	_, err := fx.service.Get(ctx, id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrItemNotFound))
}

func TestItemService_Create_DefaultsIsActive(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.itemRepo.On("Create", ctx, mock.AnythingOfType("*entity.Item")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Item).ID = uuid.New()
		}).
		Return(nil)

	item, err := fx.service.Create(ctx, &usecase.ItemInput{
		Name:  "Widget",
		Price: 9.99,
	})

	require.NoError(t, err)
	assert.True(t, item.IsActive)
}

func TestItemService_Create_ExplicitInactive(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	inactive := false

	fx.itemRepo.On("Create", ctx, mock.AnythingOfType("*entity.Item")).Return(nil)

	item, err := fx.service.Create(ctx, &usecase.ItemInput{
		Name:     "Widget",
		Price:    9.99,
		IsActive: &inactive,
	})

	require.NoError(t, err)
	assert.False(t, item.IsActive)
}

func TestItemService_Replace_Success(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	id := uuid.New()
	stored := &entity.Item{ID: id, Name: "Widget v2", Price: 19.99, IsActive: true}

	fx.itemRepo.On("Replace", ctx, mock.AnythingOfType("*entity.Item")).Return(nil)
	fx.itemRepo.On("FindByID", ctx, id).Return(stored, nil)

	item, err := fx.service.Replace(ctx, id, &usecase.ItemInput{
		Name:  "Widget v2",
		Price: 19.99,
	})

	require.NoError(t, err)
	assert.Equal(t, stored, item)
}

func TestItemService_Replace_NotFound(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.itemRepo.On("Replace", ctx, mock.AnythingOfType("*entity.Item")).
		Return(repository.ErrItemNotFound)

	_, err := fx.service.Replace(ctx, id, &usecase.ItemInput{Name: "Widget", Price: 1})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrItemNotFound))
}

func TestItemService_Delete_NotFound(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.itemRepo.On("Delete", ctx, id).Return(repository.ErrItemNotFound)

	err := fx.service.Delete(ctx, id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrItemNotFound))
}

func TestItemService_Delete_Success(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.itemRepo.On("Delete", ctx, id).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, id))
}
