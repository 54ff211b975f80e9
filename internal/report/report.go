package report

import (
	"time"

	"github.com/google/uuid"
)

// Report is one sales report row, written per checkout. GeneralTotSales
// carries the owner's running total forward.
type Report struct {
	ID                   uuid.UUID
	UserID               *uuid.UUID
	PaymentTransactionID uuid.UUID
	DailyTotSales        int64 // cents
	GeneralTotSales      int64 // cents
	SalesDate            time.Time
}

// DailySummary lists one day's sales newest first, with the day's total.
type DailySummary struct {
	Day     time.Time
	Reports []*Report
	Total   int64
}

type MonthlySummary struct {
	Year  int
	Month time.Month
	Total int64
	Count int
}

type YearlySummary struct {
	Year  int
	Total int64
	Count int
}

// PaymentRecord is one entry in the transaction history screen.
type PaymentRecord struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	Amount      int64 // cents tendered
	Change      int64
	TotalPaid   int64
	PaymentDate time.Time
}
