package product

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/brewhub/internal/product"
)

type productResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    product.Category `json:"category"`
	Price       int64            `json:"price"`
	ItemSold    int64            `json:"item_sold"`
	ImagePath   string           `json:"image_path,omitempty"`
	UserID      *uuid.UUID       `json:"user_id,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(p *product.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		ItemSold:    p.ItemSold,
		ImagePath:   p.ImagePath,
		UserID:      p.UserID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toResponseList(ps []*product.Product) []productResponse {
	resp := make([]productResponse, len(ps))
	for i, p := range ps {
		resp[i] = toResponse(p)
	}

	return resp
}
