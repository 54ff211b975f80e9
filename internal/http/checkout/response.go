package checkout

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/brewhub/internal/checkout"
	"github.com/MrJamesThe3rd/brewhub/internal/money"
)

type checkoutResponse struct {
	OrderID      uuid.UUID `json:"order_id"`
	PaymentID    uuid.UUID `json:"payment_id"`
	ReportID     uuid.UUID `json:"report_id"`
	Total        string    `json:"total"`
	Tendered     string    `json:"tendered"`
	Change       string    `json:"change"`
	GeneralTotal string    `json:"general_total"`
}

func toCheckoutResponse(res *checkout.Result) checkoutResponse {
	return checkoutResponse{
		OrderID:      res.OrderID,
		PaymentID:    res.PaymentID,
		ReportID:     res.ReportID,
		Total:        money.Format(res.Total),
		Tendered:     money.Format(res.Tendered),
		Change:       money.Format(res.Change),
		GeneralTotal: money.Format(res.GeneralTotal),
	}
}

type receiptResponse struct {
	OrderID uuid.UUID             `json:"order_id"`
	Date    time.Time             `json:"date"`
	Lines   []receiptLineResponse `json:"lines"`
	Total   string                `json:"total"`
	Cash    string                `json:"cash"`
	Change  string                `json:"change"`
}

type receiptLineResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int64  `json:"quantity"`
}

func toReceiptResponse(rec *checkout.Receipt) receiptResponse {
	resp := receiptResponse{
		OrderID: rec.OrderID,
		Date:    rec.Date,
		Lines:   make([]receiptLineResponse, len(rec.Lines)),
		Total:   money.Format(rec.Total),
		Cash:    money.Format(rec.Cash),
		Change:  money.Format(rec.Change),
	}

	for i, l := range rec.Lines {
		resp.Lines[i] = receiptLineResponse{
			Name:        l.Name,
			Description: l.Description,
			UnitPrice:   money.Format(l.UnitPrice),
			Quantity:    l.Quantity,
		}
	}

	return resp
}
