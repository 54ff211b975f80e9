package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/brewhub/internal/report"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListReports(ctx context.Context, filter report.ListFilter) ([]*report.Report, error) {
	query := `
		SELECT r.id, r.user_id, r.payment_transaction_id, r.daily_tot_sales, r.general_tot_sales, r.sales_date
		FROM sales_reports r
		WHERE r.user_id IS NOT DISTINCT FROM $1`

	args := []any{filter.UserID}

	argIdx := 2

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND r.sales_date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND r.sales_date < $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY r.sales_date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sales reports: %w", err)
	}
	defer rows.Close()

	var reports []*report.Report

	for rows.Next() {
		var r report.Report
		if err := rows.Scan(&r.ID, &r.UserID, &r.PaymentTransactionID, &r.DailyTotSales, &r.GeneralTotSales, &r.SalesDate); err != nil {
			return nil, fmt.Errorf("scanning sales report: %w", err)
		}

		reports = append(reports, &r)
	}

	return reports, rows.Err()
}

func (s *Store) ListPayments(ctx context.Context, userID *uuid.UUID) ([]*report.PaymentRecord, error) {
	query := `
		SELECT pt.id, pt.order_id, pt.amount, pt.change, pt.total_paid, pt.payment_date
		FROM payment_transactions pt
		JOIN orders o ON o.id = pt.order_id
		WHERE o.user_id IS NOT DISTINCT FROM $1
		ORDER BY pt.payment_date DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	var payments []*report.PaymentRecord

	for rows.Next() {
		var p report.PaymentRecord
		if err := rows.Scan(&p.ID, &p.OrderID, &p.Amount, &p.Change, &p.TotalPaid, &p.PaymentDate); err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		payments = append(payments, &p)
	}

	return payments, rows.Err()
}
