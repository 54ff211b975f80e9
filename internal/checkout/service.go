package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/brewhub/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=checkout
type Repository interface {
	// Begin opens a checkout transaction. Checkouts for the same owner are
	// serialized so the running sales total cannot lose increments.
	Begin(ctx context.Context, userID *uuid.UUID) (Tx, error)

	GetOrder(ctx context.Context, id uuid.UUID) (*Order, error)
	GetPaymentByOrder(ctx context.Context, orderID uuid.UUID) (*Payment, error)
	ListOrderItems(ctx context.Context, orderID uuid.UUID) ([]*Item, error)
}

// Tx is a single checkout unit of work. Every write a checkout performs
// happens inside one Tx; either all of it commits or none of it does.
type Tx interface {
	CreateCustomer(ctx context.Context) (uuid.UUID, error)
	CreateOrder(ctx context.Context, customerID uuid.UUID, userID *uuid.UUID, total int64) (uuid.UUID, error)
	// AddItems inserts one order item per line, snapshotting the product's
	// name, description and charged price, and bumps each product's
	// units-sold counter by the line quantity in place.
	AddItems(ctx context.Context, orderID uuid.UUID, lines []Line) error
	CreatePayment(ctx context.Context, orderID uuid.UUID, tendered, change, totalPaid int64) (uuid.UUID, error)
	// LatestGeneralTotal returns the running total carried by the owner's
	// most recent sales report. The bool reports whether one exists.
	LatestGeneralTotal(ctx context.Context, userID *uuid.UUID) (int64, bool, error)
	CreateSalesReport(ctx context.Context, userID *uuid.UUID, paymentID uuid.UUID, dailyTotal, generalTotal int64) (uuid.UUID, error)
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Params struct {
	UserID   *uuid.UUID // nil for unauthenticated checkouts
	Lines    []Line
	Tendered string // raw payment input, e.g. "200.00"
}

type Result struct {
	OrderID      uuid.UUID
	PaymentID    uuid.UUID
	ReportID     uuid.UUID
	Total        int64
	Tendered     int64
	Change       int64
	GeneralTotal int64
}

// Checkout records a sale: customer stub, order, order items with
// units-sold counter bumps, payment, and the sales report carrying the
// owner's running total. Validation failures return before anything is
// written; after that, all writes commit in one transaction.
func (s *Service) Checkout(ctx context.Context, params Params) (*Result, error) {
	if len(params.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	tendered, err := money.Parse(params.Tendered)
	if err != nil || tendered < 0 {
		return nil, ErrInvalidAmount
	}

	lines := mergeLines(params.Lines)

	var total int64

	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}

		total += l.UnitPrice * l.Quantity
	}

	if tendered < total {
		return nil, ErrInsufficientPayment
	}

	tx, err := s.repo.Begin(ctx, params.UserID)
	if err != nil {
		return nil, fmt.Errorf("begin checkout: %w", err)
	}
	defer tx.Rollback()

	customerID, err := tx.CreateCustomer(ctx)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	orderID, err := tx.CreateOrder(ctx, customerID, params.UserID, total)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err := tx.AddItems(ctx, orderID, lines); err != nil {
		return nil, fmt.Errorf("add order items: %w", err)
	}

	change := tendered - total

	paymentID, err := tx.CreatePayment(ctx, orderID, tendered, change, total)
	if err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	generalTotal := total

	prior, found, err := tx.LatestGeneralTotal(ctx, params.UserID)
	if err != nil {
		return nil, fmt.Errorf("read running total: %w", err)
	}

	if found {
		generalTotal = prior + total
	}

	reportID, err := tx.CreateSalesReport(ctx, params.UserID, paymentID, total, generalTotal)
	if err != nil {
		return nil, fmt.Errorf("create sales report: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit checkout: %w", err)
	}

	return &Result{
		OrderID:      orderID,
		PaymentID:    paymentID,
		ReportID:     reportID,
		Total:        total,
		Tendered:     tendered,
		Change:       change,
		GeneralTotal: generalTotal,
	}, nil
}

// Receipt reconstructs the display data for a completed order. A missing
// order, payment, or item set makes the whole receipt unavailable; a
// partial receipt is never returned.
func (s *Service) Receipt(ctx context.Context, orderID uuid.UUID) (*Receipt, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, receiptErr(err)
	}

	payment, err := s.repo.GetPaymentByOrder(ctx, orderID)
	if err != nil {
		return nil, receiptErr(err)
	}

	items, err := s.repo.ListOrderItems(ctx, orderID)
	if err != nil {
		return nil, receiptErr(err)
	}

	if len(items) == 0 {
		return nil, ErrReceiptUnavailable
	}

	receipt := &Receipt{
		OrderID: order.ID,
		Date:    order.OrderDate,
		Lines:   make([]ReceiptLine, len(items)),
		Total:   order.Total,
		Cash:    payment.Amount,
		Change:  payment.Change,
	}

	for i, item := range items {
		receipt.Lines[i] = ReceiptLine{
			Name:        item.Name,
			Description: item.Description,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		}
	}

	return receipt, nil
}

func receiptErr(err error) error {
	if errors.Is(err, ErrNotFound) {
		return ErrReceiptUnavailable
	}

	return err
}

// mergeLines collapses duplicate product lines into one, summing quantities.
// Callers normally merge in the cart already; this keeps the batch invariant
// of one order item per distinct product regardless.
func mergeLines(lines []Line) []Line {
	idx := make(map[uuid.UUID]int, len(lines))
	merged := make([]Line, 0, len(lines))

	for _, l := range lines {
		if i, ok := idx[l.ProductID]; ok {
			merged[i].Quantity += l.Quantity
			continue
		}

		idx[l.ProductID] = len(merged)
		merged = append(merged, l)
	}

	return merged
}
