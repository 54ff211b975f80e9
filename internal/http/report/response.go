package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/brewhub/internal/money"
	"github.com/MrJamesThe3rd/brewhub/internal/report"
)

type reportResponse struct {
	ID              uuid.UUID `json:"id"`
	DailyTotSales   string    `json:"daily_tot_sales"`
	GeneralTotSales string    `json:"general_tot_sales"`
	SalesDate       time.Time `json:"sales_date"`
}

type dailyResponse struct {
	Day     string           `json:"day"`
	Reports []reportResponse `json:"reports"`
	Total   string           `json:"total"`
}

func toDailyResponse(s *report.DailySummary) dailyResponse {
	resp := dailyResponse{
		Day:     s.Day.Format("2006-01-02"),
		Reports: make([]reportResponse, len(s.Reports)),
		Total:   money.Format(s.Total),
	}

	for i, rep := range s.Reports {
		resp.Reports[i] = reportResponse{
			ID:              rep.ID,
			DailyTotSales:   money.Format(rep.DailyTotSales),
			GeneralTotSales: money.Format(rep.GeneralTotSales),
			SalesDate:       rep.SalesDate,
		}
	}

	return resp
}

type monthlyResponse struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Total string `json:"total"`
	Count int    `json:"count"`
}

func toMonthlyResponseList(summaries []*report.MonthlySummary) []monthlyResponse {
	resp := make([]monthlyResponse, len(summaries))

	for i, s := range summaries {
		resp[i] = monthlyResponse{
			Year:  s.Year,
			Month: int(s.Month),
			Total: money.Format(s.Total),
			Count: s.Count,
		}
	}

	return resp
}

type yearlyResponse struct {
	Year  int    `json:"year"`
	Total string `json:"total"`
	Count int    `json:"count"`
}

func toYearlyResponseList(summaries []*report.YearlySummary) []yearlyResponse {
	resp := make([]yearlyResponse, len(summaries))

	for i, s := range summaries {
		resp[i] = yearlyResponse{
			Year:  s.Year,
			Total: money.Format(s.Total),
			Count: s.Count,
		}
	}

	return resp
}

type paymentResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"order_id"`
	Amount      string    `json:"amount"`
	Change      string    `json:"change"`
	TotalPaid   string    `json:"total_paid"`
	PaymentDate time.Time `json:"payment_date"`
}

func toPaymentResponseList(records []*report.PaymentRecord) []paymentResponse {
	resp := make([]paymentResponse, len(records))

	for i, rec := range records {
		resp[i] = paymentResponse{
			ID:          rec.ID,
			OrderID:     rec.OrderID,
			Amount:      money.Format(rec.Amount),
			Change:      money.Format(rec.Change),
			TotalPaid:   money.Format(rec.TotalPaid),
			PaymentDate: rec.PaymentDate,
		}
	}

	return resp
}
