package google

import (
	"context"
	"log/slog"

	"catalog/config"
	"catalog/internal/domain/entity"
	"catalog/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// verifier validates Google ID tokens against the configured client id.
type verifier struct {
	clientID string
	logger   *slog.Logger
}

// NewVerifier creates the Google ID token verifier.
func NewVerifier(cfg *config.Config, logger *slog.Logger) (service.OAuthVerifier, error) {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		return nil, errors.New("google oauth client id must be provided")
	}

	return &verifier{
		clientID: cfg.GoogleOAuth.ClientID,
		logger:   logger,
	}, nil
}

// VerifyIDToken verifies signature, issuer, audience and expiry of a Google
// ID token and extracts the asserted profile.
func (v *verifier) VerifyIDToken(ctx context.Context, token string) (*service.OAuthProfile, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, errors.Wrap(err, "google id token validation failed")
	}

	profile := &service.OAuthProfile{
		ID:    payload.Subject,
		Email: claimString(payload.Claims, "email"),
		Name:  claimString(payload.Claims, "name"),
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		profile.EmailVerified = verified
	}

	v.logger.Debug("Google ID token verified",
		slog.String("subject", profile.ID),
		slog.String("email", profile.Email))

	return profile, nil
}

// Provider returns the provider this verifier speaks for.
func (v *verifier) Provider() entity.Provider {
	return entity.ProviderGoogle
}

func claimString(claims map[string]any, key string) string {
	s, _ := claims[key].(string)

	return s
}
