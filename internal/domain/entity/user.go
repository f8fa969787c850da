// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Provider identifies the origin of an external credential.
type Provider string

const (
	// ProviderGoogle marks accounts created through Google Sign-In.
	ProviderGoogle Provider = "google"
)

// User is a single principal. A record carries either a password credential
// (PasswordHash set) or an external OAuth identity (Provider/ProviderID set).
// The schema does not forbid both, but normal flows never produce that shape.
type User struct {
	ID           uuid.UUID // Store-generated identifier, immutable after creation.
	Email        string    // Primary contact and login identifier.
	PasswordHash string    // bcrypt hash; empty for OAuth-only accounts.
	Provider     Provider  // External identity provider; empty for password accounts.
	ProviderID   string    // The provider's subject identifier (e.g. Google's 'sub' claim).
	DisplayName  string    // Display name reported by the OAuth provider.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// HasPassword reports whether the account can authenticate with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
