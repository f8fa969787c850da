package usecase

import (
	"context"
)

// GoogleCallbackInput carries the query parameters Google appends to the
// redirect URI.
type GoogleCallbackInput struct {
	State string
	Code  string
}

// OAuthUsecase defines the interface for the Google sign-in flow.
type OAuthUsecase interface {
	// GoogleAuthURL builds the consent-screen URL carrying a fresh CSRF state.
	GoogleAuthURL() string

	// GoogleCallback completes the flow: validates state, exchanges the
	// code, verifies the ID token and links or creates the account.
	GoogleCallback(ctx context.Context, input *GoogleCallbackInput) (*TokenOutput, error)
}
