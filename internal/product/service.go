package product

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=product
type Repository interface {
	CreateProduct(ctx context.Context, p *Product) error
	CreateProducts(ctx context.Context, ps []*Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	ListProducts(ctx context.Context, filter ListFilter) ([]*Product, error)
	BestSelling(ctx context.Context, userID *uuid.UUID, limit int) ([]*Product, error)
}

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type CreateParams struct {
	Name        string   `validate:"required,max=100"`
	Description string   `validate:"required,max=500"`
	Category    Category `validate:"required,oneof=iced hot"`
	Price       int64    `validate:"gte=0"`
	ImagePath   string
	UserID      *uuid.UUID
}

type ListFilter struct {
	Category *Category
	Search   string
	UserID   *uuid.UUID
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Product, error) {
	if err := s.validate.Struct(params); err != nil {
		return nil, fmt.Errorf("invalid product: %w", err)
	}

	p := &Product{
		Name:        params.Name,
		Description: params.Description,
		Category:    params.Category,
		Price:       params.Price,
		ImagePath:   params.ImagePath,
		UserID:      params.UserID,
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// CreateBatch validates and persists a set of products together.
// Used by the menu CSV import; either all rows land or none do.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Product, error) {
	if len(params) == 0 {
		return nil, nil
	}

	ps := make([]*Product, len(params))

	for i, p := range params {
		if err := s.validate.Struct(p); err != nil {
			return nil, fmt.Errorf("invalid product %q: %w", p.Name, err)
		}

		ps[i] = &Product{
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
			Price:       p.Price,
			ImagePath:   p.ImagePath,
			UserID:      p.UserID,
		}
	}

	if err := s.repo.CreateProducts(ctx, ps); err != nil {
		return nil, fmt.Errorf("create products: %w", err)
	}

	return ps, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *Service) Update(ctx context.Context, p *Product) error {
	params := CreateParams{
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
	}
	if err := s.validate.Struct(params); err != nil {
		return fmt.Errorf("invalid product: %w", err)
	}

	return s.repo.UpdateProduct(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteProduct(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Product, error) {
	return s.repo.ListProducts(ctx, filter)
}

// BestSelling returns the top products by units sold, the home screen ranking.
func (s *Service) BestSelling(ctx context.Context, userID *uuid.UUID, limit int) ([]*Product, error) {
	if limit <= 0 {
		limit = 5
	}

	return s.repo.BestSelling(ctx, userID, limit)
}
