// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the single-document operations of the credential
// store. Each method is keyed by a unique field.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByProviderIdentity retrieves the user owning an external OAuth
	// identity, keyed by the (provider, providerID) pair.
	FindByProviderIdentity(ctx context.Context, provider entity.Provider, providerID string) (*entity.User, error)

	// Create persists a new user record. The store assigns ID and CreatedAt.
	Create(ctx context.Context, user *entity.User) error

	// UpdateEmail replaces the email of an existing record in place.
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error

	// UpdatePasswordHash replaces the stored password hash of an existing record.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error

	// Delete removes a record. Returns ErrUserNotFound when no row matched.
	Delete(ctx context.Context, id uuid.UUID) error
}
