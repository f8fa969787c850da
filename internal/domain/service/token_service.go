package service

import "github.com/google/uuid"

// Identity is the verified content of a bearer token: the subject the token
// asserts plus the email embedded at issue time.
type Identity struct {
	SubjectID uuid.UUID
	Email     string
}

// TokenService issues and verifies signed, self-contained bearer tokens.
// Verification is stateless; there is no revocation, a token stays valid for
// its full lifetime regardless of later account changes.
type TokenService interface {
	// Issue produces a signed token embedding the subject id and email,
	// with issued-at and expiry claims.
	Issue(subjectID uuid.UUID, email string) (string, error)

	// Verify checks signature and expiry and returns the embedded identity.
	// Unverified claims are never returned.
	Verify(token string) (*Identity, error)
}
