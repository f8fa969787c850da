package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	mockRepo "catalog/internal/mocks/repository"
	mockService "catalog/internal/mocks/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// oauthServiceFixtures holds all test dependencies for oauth service tests.
type oauthServiceFixtures struct {
	service   usecase.OAuthUsecase
	txManager *mockRepo.MockTransactionManager
	flow      *mockService.MockOAuthFlow
	verifier  *mockService.MockOAuthVerifier
	tokenSvc  *mockService.MockTokenService
}

func createTestOAuthService(t *testing.T) oauthServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	flow := mockService.NewMockOAuthFlow(t)
	verifier := mockService.NewMockOAuthVerifier(t)
	tokenSvc := mockService.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewOAuthService(OAuthServiceParams{
		TxManager:    txManager,
		Flow:         flow,
		Verifier:     verifier,
		TokenService: tokenSvc,
		Logger:       logger,
	})

	return oauthServiceFixtures{
		service:   svc,
		txManager: txManager,
		flow:      flow,
		verifier:  verifier,
		tokenSvc:  tokenSvc,
	}
}

func TestOAuthService_GoogleAuthURL(t *testing.T) {
	fx := createTestOAuthService(t)

	fx.flow.On("BuildAuthorizationURL").Return("https://accounts.google.com/o/oauth2/v2/auth?state=abc")

	assert.Equal(t, "https://accounts.google.com/o/oauth2/v2/auth?state=abc", fx.service.GoogleAuthURL())
}

func TestOAuthService_GoogleCallback_CreatesAccountOnFirstSignIn(t *testing.T) {
	fx := createTestOAuthService(t)
	ctx := context.Background()
	newID := uuid.New()
	profile := &service.OAuthProfile{
		ID:            "google-sub-1",
		Email:         "new@example.com",
		Name:          "New User",
		EmailVerified: true,
	}

	fx.flow.On("ValidateState", "state-1").Return(true)
	fx.flow.On("ExchangeCode", ctx, "code-1").Return("id-token", nil)
	fx.verifier.On("VerifyIDToken", ctx, "id-token").Return(profile, nil)
	fx.verifier.On("Provider").Return(entity.ProviderGoogle)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.On("UserRepo").Return(txUserRepo)
	txUserRepo.On("FindByProviderIdentity", ctx, entity.ProviderGoogle, "google-sub-1").
		Return(nil, repository.ErrUserNotFound)
	txUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = newID
		}).
		Return(nil)

	fx.txManager.On("Execute", ctx, mock.Anything).Return(factory)
	fx.tokenSvc.On("Issue", newID, "new@example.com").Return("signed-token", nil)

	output, err := fx.service.GoogleCallback(ctx, &usecase.GoogleCallbackInput{
		State: "state-1",
		Code:  "code-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, newID, output.User.ID)
	assert.Equal(t, entity.ProviderGoogle, output.User.Provider)
	assert.Equal(t, "google-sub-1", output.User.ProviderID)
	assert.Equal(t, "New User", output.User.DisplayName)
}

func TestOAuthService_GoogleCallback_ResolvesExistingIdentity(t *testing.T) {
	fx := createTestOAuthService(t)
	ctx := context.Background()
	existing := &entity.User{
		ID:         uuid.New(),
		Email:      "known@example.com",
		Provider:   entity.ProviderGoogle,
		ProviderID: "google-sub-1",
	}
	profile := &service.OAuthProfile{ID: "google-sub-1", Email: "known@example.com"}

	fx.flow.On("ValidateState", "state-1").Return(true)
	fx.flow.On("ExchangeCode", ctx, "code-1").Return("id-token", nil)
	fx.verifier.On("VerifyIDToken", ctx, "id-token").Return(profile, nil)
	fx.verifier.On("Provider").Return(entity.ProviderGoogle)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.On("UserRepo").Return(txUserRepo)
	// A second sign-in with the same identity resolves to the same record.
	txUserRepo.On("FindByProviderIdentity", ctx, entity.ProviderGoogle, "google-sub-1").
		Return(existing, nil)

	fx.txManager.On("Execute", ctx, mock.Anything).Return(factory)
	fx.tokenSvc.On("Issue", existing.ID, "known@example.com").Return("signed-token", nil)

	output, err := fx.service.GoogleCallback(ctx, &usecase.GoogleCallbackInput{
		State: "state-1",
		Code:  "code-1",
	})

	require.NoError(t, err)
	assert.Equal(t, existing, output.User)
}

func TestOAuthService_GoogleCallback_BadState(t *testing.T) {
	fx := createTestOAuthService(t)
	ctx := context.Background()

	fx.flow.On("ValidateState", "replayed").Return(false)

	_, err := fx.service.GoogleCallback(ctx, &usecase.GoogleCallbackInput{
		State: "replayed",
		Code:  "code-1",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthFailed))
}

func TestOAuthService_GoogleCallback_ExchangeFails(t *testing.T) {
	fx := createTestOAuthService(t)
	ctx := context.Background()

	fx.flow.On("ValidateState", "state-1").Return(true)
	fx.flow.On("ExchangeCode", ctx, "bad-code").Return("", errors.New("token endpoint returned status 400"))

	_, err := fx.service.GoogleCallback(ctx, &usecase.GoogleCallbackInput{
		State: "state-1",
		Code:  "bad-code",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthFailed))
}

func TestOAuthService_GoogleCallback_ProfileWithoutEmail(t *testing.T) {
	fx := createTestOAuthService(t)
	ctx := context.Background()
	profile := &service.OAuthProfile{ID: "google-sub-1"}

	fx.flow.On("ValidateState", "state-1").Return(true)
	fx.flow.On("ExchangeCode", ctx, "code-1").Return("id-token", nil)
	fx.verifier.On("VerifyIDToken", ctx, "id-token").Return(profile, nil)

	_, err := fx.service.GoogleCallback(ctx, &usecase.GoogleCallbackInput{
		State: "state-1",
		Code:  "code-1",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthIdentityIncomplete))
}
