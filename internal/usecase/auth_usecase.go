// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new password account.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ChangeEmailInput defines the data required to change the account email.
type ChangeEmailInput struct {
	UserID   uuid.UUID
	NewEmail string
}

// ChangePasswordInput defines the data required to rotate the account password.
// The current password is re-verified even though the caller holds a valid token.
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// TokenOutput returns a signed bearer token together with the account it
// represents.
type TokenOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the interface for account and credential operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*TokenOutput, error)
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)
	ChangeEmail(ctx context.Context, input *ChangeEmailInput) error
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error

	// DeleteAccount removes the caller's record. Deleting an already
	// deleted account succeeds.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
