package model

import (
	"time"

	"github.com/google/uuid"
)

// ItemModel mirrors the 'items' table.
type ItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Price       float64   `gorm:"not null"`
	Description string    `gorm:"type:text"`
	SKU         string    `gorm:"type:varchar(100)"`
	Quantity    int       `gorm:"not null;default:0"`
	Category    string    `gorm:"type:varchar(100);index"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}
