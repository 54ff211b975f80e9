package checkout

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInvalidAmount       = errors.New("invalid payment amount")
	ErrInvalidQuantity     = errors.New("invalid line quantity")
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrProductNotFound     = errors.New("product not found")
	ErrNotFound            = errors.New("not found")
	ErrReceiptUnavailable  = errors.New("receipt unavailable")
)

// Line is a cart line ready for checkout: a product, the price it is
// being charged at, and the requested quantity.
type Line struct {
	ProductID uuid.UUID
	UnitPrice int64 // cents
	Quantity  int64
}

// Order is a completed sale. Immutable once created.
type Order struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	UserID     *uuid.UUID
	OrderDate  time.Time
	Total      int64 // cents
}

// Item is one order line, carrying a point-in-time snapshot of the
// product so receipts survive later catalog edits.
type Item struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	Name        string
	Description string
	UnitPrice   int64
	Quantity    int64
}

// Payment records the cash taken for an order.
type Payment struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	Amount      int64 // cents tendered
	Change      int64
	TotalPaid   int64
	PaymentDate time.Time
}

// Receipt is the flat read-side view of a completed sale.
type Receipt struct {
	OrderID uuid.UUID
	Date    time.Time
	Lines   []ReceiptLine
	Total   int64
	Cash    int64
	Change  int64
}

type ReceiptLine struct {
	Name        string
	Description string
	UnitPrice   int64
	Quantity    int64
}
