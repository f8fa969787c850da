package entity

import (
	"time"

	"github.com/google/uuid"
)

// Item is a catalog entry. Listing and lookup are public; mutation requires
// an authenticated caller.
type Item struct {
	ID          uuid.UUID
	Name        string
	Price       float64
	Description string
	SKU         string
	Quantity    int
	Category    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
