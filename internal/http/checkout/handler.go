package checkout

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/brewhub/internal/checkout"
	"github.com/MrJamesThe3rd/brewhub/internal/http/auth"
)

type Handler struct {
	svc *checkout.Service
}

func NewHandler(svc *checkout.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.checkout)
}

func (h *Handler) ReceiptRoutes(r chi.Router) {
	r.Get("/{orderID}", h.receipt)
}

type checkoutRequest struct {
	Tendered string        `json:"tendered"`
	Lines    []lineRequest `json:"lines"`
}

type lineRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  int64     `json:"quantity"`
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	lines := make([]checkout.Line, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = checkout.Line{
			ProductID: l.ProductID,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		}
	}

	res, err := h.svc.Checkout(r.Context(), checkout.Params{
		UserID:   auth.UserID(r.Context()),
		Lines:    lines,
		Tendered: req.Tendered,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart),
			errors.Is(err, checkout.ErrInvalidAmount),
			errors.Is(err, checkout.ErrInvalidQuantity),
			errors.Is(err, checkout.ErrInsufficientPayment):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, checkout.ErrProductNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			slog.Error("checkout failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toCheckoutResponse(res)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) receipt(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Receipt(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, checkout.ErrReceiptUnavailable) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		slog.Error("receipt lookup failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toReceiptResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
