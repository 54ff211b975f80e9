package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/brewhub/internal/product"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanProduct reads a product row from the scanner.
// Expected column order: id, name, description, category, price, item_sold, image_path, user_id, created_at, updated_at, deleted_at
func scanProduct(s scanner) (*product.Product, error) {
	var p product.Product

	var categoryStr string

	var imagePath sql.NullString

	var userID *uuid.UUID

	if err := s.Scan(
		&p.ID, &p.Name, &p.Description, &categoryStr, &p.Price, &p.ItemSold,
		&imagePath, &userID, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	); err != nil {
		return nil, err
	}

	p.Category = product.Category(categoryStr)
	p.ImagePath = imagePath.String
	p.UserID = userID

	return &p, nil
}

const selectProductColumns = `
	p.id, p.name, p.description, p.category, p.price, p.item_sold,
	p.image_path, p.user_id, p.created_at, p.updated_at, p.deleted_at
`

func (s *Store) CreateProduct(ctx context.Context, p *product.Product) error {
	query := `
		INSERT INTO products (name, description, category, price, image_path, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.Name,
		p.Description,
		p.Category,
		p.Price,
		p.ImagePath,
		p.UserID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating product: %w", err)
	}

	return nil
}

// CreateProducts inserts all products in one database transaction.
func (s *Store) CreateProducts(ctx context.Context, ps []*product.Product) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO products (name, description, category, price, image_path, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	for _, p := range ps {
		err := dbTx.QueryRowContext(ctx, query,
			p.Name,
			p.Description,
			p.Category,
			p.Price,
			p.ImagePath,
			p.UserID,
		).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("creating product: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) GetProduct(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	query := `SELECT ` + selectProductColumns + `
		FROM products p
		WHERE p.id = $1 AND p.deleted_at IS NULL`

	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, product.ErrNotFound
		}

		return nil, fmt.Errorf("getting product: %w", err)
	}

	return p, nil
}

func (s *Store) ListProducts(ctx context.Context, filter product.ListFilter) ([]*product.Product, error) {
	query := `SELECT ` + selectProductColumns + `
		FROM products p
		WHERE p.deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.Category != nil {
		query += fmt.Sprintf(" AND p.category = $%d", argIdx)

		args = append(args, *filter.Category)
		argIdx++
	}

	if filter.Search != "" {
		query += fmt.Sprintf(" AND (p.name ILIKE '%%' || $%d || '%%' OR p.description ILIKE '%%' || $%d || '%%')", argIdx, argIdx)

		args = append(args, filter.Search)
		argIdx++
	}

	if filter.UserID != nil {
		query += fmt.Sprintf(" AND p.user_id = $%d", argIdx)

		args = append(args, *filter.UserID)
		argIdx++
	}

	query += " ORDER BY p.category ASC, p.name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var ps []*product.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		ps = append(ps, p)
	}

	return ps, rows.Err()
}

func (s *Store) BestSelling(ctx context.Context, userID *uuid.UUID, limit int) ([]*product.Product, error) {
	query := `SELECT ` + selectProductColumns + `
		FROM products p
		WHERE p.deleted_at IS NULL AND p.user_id IS NOT DISTINCT FROM $1
		ORDER BY p.item_sold DESC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing best sellers: %w", err)
	}
	defer rows.Close()

	var ps []*product.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		ps = append(ps, p)
	}

	return ps, rows.Err()
}

func (s *Store) UpdateProduct(ctx context.Context, p *product.Product) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, category = $3, price = $4, image_path = NULLIF($5, ''), updated_at = NOW()
		WHERE id = $6 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		p.Name,
		p.Description,
		p.Category,
		p.Price,
		p.ImagePath,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE products
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	return nil
}
