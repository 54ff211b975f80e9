package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("product not found")

// Category is the menu section a product belongs to.
type Category string

const (
	CategoryIced Category = "iced"
	CategoryHot  Category = "hot"
)

// Product represents a catalog item.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Category    Category
	Price       int64 // Price in cents
	ItemSold    int64 // Cumulative units sold, mutated only by checkout
	ImagePath   string
	UserID      *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}
