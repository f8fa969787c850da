package service

import (
	"context"

	"catalog/internal/domain/entity"
)

// OAuthProfile is the identity an external provider reports after its
// redirect-based handshake.
type OAuthProfile struct {
	ID            string // Provider-specific subject identifier (e.g. Google's 'sub' claim)
	Email         string // Email address reported by the provider; may be empty
	Name          string // Display name reported by the provider
	EmailVerified bool   // Whether the provider vouches for the email
}

// OAuthFlow drives the server side of the authorization-code handshake.
type OAuthFlow interface {
	// BuildAuthorizationURL returns the provider consent URL including a
	// freshly minted CSRF state parameter.
	BuildAuthorizationURL() string

	// ValidateState consumes a state parameter previously handed out by
	// BuildAuthorizationURL. A state validates at most once.
	ValidateState(state string) bool

	// ExchangeCode trades an authorization code for the provider's ID token.
	ExchangeCode(ctx context.Context, code string) (string, error)
}

// OAuthVerifier validates provider ID tokens and extracts the profile.
type OAuthVerifier interface {
	// VerifyIDToken verifies an OAuth ID token and returns the asserted profile.
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthProfile, error)

	// Provider returns the provider this verifier speaks for.
	Provider() entity.Provider
}
