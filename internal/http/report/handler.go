package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/brewhub/internal/http/auth"
	"github.com/MrJamesThe3rd/brewhub/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/daily", h.daily)
	r.Get("/monthly", h.monthly)
	r.Get("/yearly", h.yearly)
	r.Get("/transactions", h.transactions)
}

func (h *Handler) daily(w http.ResponseWriter, r *http.Request) {
	day := time.Now()

	if s := r.URL.Query().Get("date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		day = parsed
	}

	summary, err := h.svc.Daily(r.Context(), auth.UserID(r.Context()), day)
	if err != nil {
		slog.Error("daily report failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toDailyResponse(summary)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.Monthly(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		slog.Error("monthly report failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toMonthlyResponseList(summaries)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) yearly(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.Yearly(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		slog.Error("yearly report failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toYearlyResponseList(summaries)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) transactions(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.Transactions(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		slog.Error("transaction history failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPaymentResponseList(records)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
