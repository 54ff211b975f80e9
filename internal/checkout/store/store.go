package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/brewhub/internal/checkout"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// checkoutLockKey derives the advisory lock key that serializes checkouts
// per owner. Anonymous checkouts share one key.
func checkoutLockKey(userID *uuid.UUID) int64 {
	h := fnv.New64a()

	if userID != nil {
		h.Write(userID[:])
	} else {
		h.Write([]byte("anonymous"))
	}

	return int64(h.Sum64())
}

type checkoutTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context, userID *uuid.UUID) (checkout.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning checkout tx: %w", err)
	}

	lockKey := checkoutLockKey(userID)
	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring checkout lock: %w", err)
	}

	return &checkoutTx{tx: dbTx}, nil
}

func (t *checkoutTx) Commit() error   { return t.tx.Commit() }
func (t *checkoutTx) Rollback() error { return t.tx.Rollback() }

func (t *checkoutTx) CreateCustomer(ctx context.Context) (uuid.UUID, error) {
	query := `
		INSERT INTO customers (created_at)
		VALUES (NOW())
		RETURNING id
	`

	var id uuid.UUID
	if err := t.tx.QueryRowContext(ctx, query).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("creating customer: %w", err)
	}

	return id, nil
}

func (t *checkoutTx) CreateOrder(ctx context.Context, customerID uuid.UUID, userID *uuid.UUID, total int64) (uuid.UUID, error) {
	query := `
		INSERT INTO orders (customer_id, user_id, order_date, total)
		VALUES ($1, $2, NOW(), $3)
		RETURNING id
	`

	var id uuid.UUID
	if err := t.tx.QueryRowContext(ctx, query, customerID, userID, total).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("creating order: %w", err)
	}

	return id, nil
}

func (t *checkoutTx) AddItems(ctx context.Context, orderID uuid.UUID, lines []checkout.Line) error {
	// The INSERT...SELECT snapshots the product's current name and
	// description into the order item. Zero rows means the product is
	// gone (or soft-deleted), which fails the whole checkout.
	itemQuery := `
		INSERT INTO order_items (order_id, product_id, name, description, unit_price, quantity)
		SELECT $1, p.id, p.name, p.description, $3, $4
		FROM products p
		WHERE p.id = $2 AND p.deleted_at IS NULL
	`

	counterQuery := `
		UPDATE products
		SET item_sold = item_sold + $1
		WHERE id = $2
	`

	for _, line := range lines {
		res, err := t.tx.ExecContext(ctx, itemQuery, orderID, line.ProductID, line.UnitPrice, line.Quantity)
		if err != nil {
			return fmt.Errorf("creating order item: %w", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("creating order item: %w", err)
		}

		if n == 0 {
			return fmt.Errorf("product %s: %w", line.ProductID, checkout.ErrProductNotFound)
		}

		if _, err := t.tx.ExecContext(ctx, counterQuery, line.Quantity, line.ProductID); err != nil {
			return fmt.Errorf("updating units sold: %w", err)
		}
	}

	return nil
}

func (t *checkoutTx) CreatePayment(ctx context.Context, orderID uuid.UUID, tendered, change, totalPaid int64) (uuid.UUID, error) {
	query := `
		INSERT INTO payment_transactions (order_id, amount, change, total_paid, payment_date)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`

	var id uuid.UUID
	if err := t.tx.QueryRowContext(ctx, query, orderID, tendered, change, totalPaid).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("creating payment: %w", err)
	}

	return id, nil
}

func (t *checkoutTx) LatestGeneralTotal(ctx context.Context, userID *uuid.UUID) (int64, bool, error) {
	query := `
		SELECT general_tot_sales
		FROM sales_reports
		WHERE user_id IS NOT DISTINCT FROM $1
		ORDER BY sales_date DESC
		LIMIT 1
	`

	var total int64

	err := t.tx.QueryRowContext(ctx, query, userID).Scan(&total)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}

		return 0, false, fmt.Errorf("reading latest sales report: %w", err)
	}

	return total, true, nil
}

func (t *checkoutTx) CreateSalesReport(ctx context.Context, userID *uuid.UUID, paymentID uuid.UUID, dailyTotal, generalTotal int64) (uuid.UUID, error) {
	query := `
		INSERT INTO sales_reports (user_id, payment_transaction_id, daily_tot_sales, general_tot_sales, sales_date)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`

	var id uuid.UUID
	if err := t.tx.QueryRowContext(ctx, query, userID, paymentID, dailyTotal, generalTotal).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("creating sales report: %w", err)
	}

	return id, nil
}

func (s *Store) GetOrder(ctx context.Context, id uuid.UUID) (*checkout.Order, error) {
	query := `
		SELECT o.id, o.customer_id, o.user_id, o.order_date, o.total
		FROM orders o
		WHERE o.id = $1
	`

	var o checkout.Order

	err := s.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.CustomerID, &o.UserID, &o.OrderDate, &o.Total)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, checkout.ErrNotFound
		}

		return nil, fmt.Errorf("getting order: %w", err)
	}

	return &o, nil
}

func (s *Store) GetPaymentByOrder(ctx context.Context, orderID uuid.UUID) (*checkout.Payment, error) {
	query := `
		SELECT pt.id, pt.order_id, pt.amount, pt.change, pt.total_paid, pt.payment_date
		FROM payment_transactions pt
		WHERE pt.order_id = $1
		ORDER BY pt.payment_date DESC
		LIMIT 1
	`

	var p checkout.Payment

	err := s.db.QueryRowContext(ctx, query, orderID).Scan(&p.ID, &p.OrderID, &p.Amount, &p.Change, &p.TotalPaid, &p.PaymentDate)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, checkout.ErrNotFound
		}

		return nil, fmt.Errorf("getting payment: %w", err)
	}

	return &p, nil
}

func (s *Store) ListOrderItems(ctx context.Context, orderID uuid.UUID) ([]*checkout.Item, error) {
	query := `
		SELECT i.id, i.order_id, i.product_id, i.name, i.description, i.unit_price, i.quantity
		FROM order_items i
		WHERE i.order_id = $1
		ORDER BY i.name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("listing order items: %w", err)
	}
	defer rows.Close()

	var items []*checkout.Item

	for rows.Next() {
		var i checkout.Item
		if err := rows.Scan(&i.ID, &i.OrderID, &i.ProductID, &i.Name, &i.Description, &i.UnitPrice, &i.Quantity); err != nil {
			return nil, fmt.Errorf("scanning order item: %w", err)
		}

		items = append(items, &i)
	}

	return items, rows.Err()
}
