package service

import (
	"context"
	"testing"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockOAuthFlow is a mock implementation of service.OAuthFlow.
type MockOAuthFlow struct {
	mock.Mock
}

func NewMockOAuthFlow(t *testing.T) *MockOAuthFlow {
	m := &MockOAuthFlow{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOAuthFlow) BuildAuthorizationURL() string {
	args := m.Called()

	return args.String(0)
}

func (m *MockOAuthFlow) ValidateState(state string) bool {
	args := m.Called(state)

	return args.Bool(0)
}

func (m *MockOAuthFlow) ExchangeCode(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)

	return args.String(0), args.Error(1)
}

// MockOAuthVerifier is a mock implementation of service.OAuthVerifier.
type MockOAuthVerifier struct {
	mock.Mock
}

func NewMockOAuthVerifier(t *testing.T) *MockOAuthVerifier {
	m := &MockOAuthVerifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOAuthVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthProfile, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.OAuthProfile), args.Error(1)
}

func (m *MockOAuthVerifier) Provider() entity.Provider {
	args := m.Called()

	return args.Get(0).(entity.Provider)
}
