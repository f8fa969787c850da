package usecase

import (
	"context"
	"testing"

	"catalog/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockOAuthUsecase is a mock implementation of usecase.OAuthUsecase.
type MockOAuthUsecase struct {
	mock.Mock
}

func NewMockOAuthUsecase(t *testing.T) *MockOAuthUsecase {
	m := &MockOAuthUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOAuthUsecase) GoogleAuthURL() string {
	args := m.Called()

	return args.String(0)
}

func (m *MockOAuthUsecase) GoogleCallback(ctx context.Context, input *usecase.GoogleCallbackInput) (*usecase.TokenOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.TokenOutput), args.Error(1)
}
