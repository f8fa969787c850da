// Package usecase contains hand-maintained testify mocks for the usecase
// interfaces.
package usecase

import (
	"context"
	"testing"

	"catalog/internal/domain/entity"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockItemUsecase is a mock implementation of usecase.ItemUsecase.
type MockItemUsecase struct {
	mock.Mock
}

func NewMockItemUsecase(t *testing.T) *MockItemUsecase {
	m := &MockItemUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockItemUsecase) List(ctx context.Context, input *usecase.ListItemsInput) ([]*entity.Item, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Item), args.Error(1)
}

func (m *MockItemUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Item), args.Error(1)
}

func (m *MockItemUsecase) Create(ctx context.Context, input *usecase.ItemInput) (*entity.Item, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Item), args.Error(1)
}

func (m *MockItemUsecase) Replace(ctx context.Context, id uuid.UUID, input *usecase.ItemInput) (*entity.Item, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Item), args.Error(1)
}

func (m *MockItemUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
