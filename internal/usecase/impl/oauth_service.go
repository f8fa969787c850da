package impl

import (
	"context"
	"log/slog"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// oauthService implements the OAuthUsecase interface for Google sign-in.
type oauthService struct {
	txManager    repository.TransactionManager
	flow         service.OAuthFlow
	verifier     service.OAuthVerifier
	tokenService service.TokenService
	logger       *slog.Logger
}

// OAuthServiceParams holds dependencies for oauthService, injected by Fx.
type OAuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Flow         service.OAuthFlow
	Verifier     service.OAuthVerifier
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewOAuthService is the constructor for oauthService.
func NewOAuthService(params OAuthServiceParams) usecase.OAuthUsecase {
	return &oauthService{
		txManager:    params.TxManager,
		flow:         params.Flow,
		verifier:     params.Verifier,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *oauthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GoogleAuthURL builds the consent-screen URL carrying a fresh CSRF state.
func (srv *oauthService) GoogleAuthURL() string {
	return srv.flow.BuildAuthorizationURL()
}

// GoogleCallback completes the sign-in: validates the CSRF state, exchanges
// the authorization code, verifies the ID token and links or creates the
// account identified by the (provider, subject) pair.
func (srv *oauthService) GoogleCallback(ctx context.Context, input *usecase.GoogleCallbackInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Info("Handling Google callback")

	if !srv.flow.ValidateState(input.State) {
		srv.log(ctx).Warn("Google callback rejected: bad state parameter")

		return nil, domainerrors.ErrOAuthFailed.WrapMessage("state parameter is missing, expired or replayed")
	}

	idToken, err := srv.flow.ExchangeCode(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Warn("Google code exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed.WrapMessage("authorization code exchange failed")
	}

	profile, err := srv.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed.WrapMessage("id token verification failed")
	}

	user, err := srv.linkOrCreate(ctx, profile)
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after Google sign-in", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token after google sign-in")
	}
	srv.log(ctx).Debug("Google sign-in completed", slog.Any("userID", user.ID))

	return &usecase.TokenOutput{Token: token, User: user}, nil
}

// linkOrCreate resolves the OAuth identity to an account, creating one on
// first sign-in. Repeated sign-ins with the same identity resolve to the same
// record; a password account sharing the email is never merged.
func (srv *oauthService) linkOrCreate(ctx context.Context, profile *service.OAuthProfile) (*entity.User, error) {
	if profile.Email == "" {
		srv.log(ctx).Warn("Google profile carried no email", slog.String("subject", profile.ID))

		return nil, domainerrors.ErrOAuthIdentityIncomplete.WrapMessage("provider reported no email address")
	}

	provider := srv.verifier.Provider()

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		existing, findErr := userRepo.FindByProviderIdentity(ctx, provider, profile.ID)
		if findErr == nil {
			user = existing

			return nil
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to look up oauth identity")
		}

		srv.log(ctx).Info("OAuth identity not found, creating account",
			slog.String("provider", string(provider)),
			slog.String("email", profile.Email))

		newUser := &entity.User{
			Email:       profile.Email,
			Provider:    provider,
			ProviderID:  profile.ID,
			DisplayName: profile.Name,
		}
		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create oauth account")
		}
		user = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("OAuth account resolution failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute oauth account transaction")
	}

	return user, nil
}
