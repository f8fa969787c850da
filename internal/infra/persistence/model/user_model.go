// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
//
// Email carries a plain (non-unique) index: duplicate prevention is a
// lookup-before-insert check in the use case layer, because an OAuth account
// may legitimately share an email with a password account. The OAuth identity
// pair, by contrast, is unique at the schema level. Provider columns are
// nullable so password accounts (both NULL) never collide on that index.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);not null;index"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	Provider     *string   `gorm:"type:varchar(50);uniqueIndex:idx_users_provider_identity"`
	ProviderID   *string   `gorm:"type:varchar(255);uniqueIndex:idx_users_provider_identity"`
	DisplayName  string    `gorm:"type:varchar(100)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
