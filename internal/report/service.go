package report

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=report
type Repository interface {
	// ListReports returns matching sales reports ordered by sales date,
	// newest first.
	ListReports(ctx context.Context, filter ListFilter) ([]*Report, error)
	ListPayments(ctx context.Context, userID *uuid.UUID) ([]*PaymentRecord, error)
}

type ListFilter struct {
	UserID    *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Daily returns the sales recorded on the given calendar day.
func (s *Service) Daily(ctx context.Context, userID *uuid.UUID, day time.Time) (*DailySummary, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	reports, err := s.repo.ListReports(ctx, ListFilter{
		UserID:    userID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, err
	}

	summary := &DailySummary{Day: start, Reports: reports}
	for _, r := range reports {
		summary.Total += r.DailyTotSales
	}

	return summary, nil
}

// Monthly groups the owner's sales history into month buckets, newest first.
func (s *Service) Monthly(ctx context.Context, userID *uuid.UUID) ([]*MonthlySummary, error) {
	reports, err := s.repo.ListReports(ctx, ListFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	type key struct {
		year  int
		month time.Month
	}

	buckets := make(map[key]*MonthlySummary)

	for _, r := range reports {
		k := key{year: r.SalesDate.Year(), month: r.SalesDate.Month()}

		b, ok := buckets[k]
		if !ok {
			b = &MonthlySummary{Year: k.year, Month: k.month}
			buckets[k] = b
		}

		b.Total += r.DailyTotSales
		b.Count++
	}

	summaries := make([]*MonthlySummary, 0, len(buckets))
	for _, b := range buckets {
		summaries = append(summaries, b)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Year != summaries[j].Year {
			return summaries[i].Year > summaries[j].Year
		}

		return summaries[i].Month > summaries[j].Month
	})

	return summaries, nil
}

// Yearly groups the owner's sales history into year buckets, newest first.
func (s *Service) Yearly(ctx context.Context, userID *uuid.UUID) ([]*YearlySummary, error) {
	reports, err := s.repo.ListReports(ctx, ListFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	buckets := make(map[int]*YearlySummary)

	for _, r := range reports {
		year := r.SalesDate.Year()

		b, ok := buckets[year]
		if !ok {
			b = &YearlySummary{Year: year}
			buckets[year] = b
		}

		b.Total += r.DailyTotSales
		b.Count++
	}

	summaries := make([]*YearlySummary, 0, len(buckets))
	for _, b := range buckets {
		summaries = append(summaries, b)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Year > summaries[j].Year
	})

	return summaries, nil
}

// Transactions returns the owner's payment history, newest first.
func (s *Service) Transactions(ctx context.Context, userID *uuid.UUID) ([]*PaymentRecord, error) {
	return s.repo.ListPayments(ctx, userID)
}
