package menuimport

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/brewhub/internal/http/auth"
	"github.com/MrJamesThe3rd/brewhub/internal/importer"
	"github.com/MrJamesThe3rd/brewhub/internal/money"
	"github.com/MrJamesThe3rd/brewhub/internal/product"
)

type Handler struct {
	importSvc  *importer.Service
	productSvc *product.Service
}

func NewHandler(importSvc *importer.Service, productSvc *product.Service) *Handler {
	return &Handler{
		importSvc:  importSvc,
		productSvc: productSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importMenu)
}

type productResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    product.Category `json:"category"`
	Price       string           `json:"price"`
	CreatedAt   time.Time        `json:"created_at"`
}

type importSuccessResponse struct {
	Imported int               `json:"imported"`
	Products []productResponse `json:"products"`
}

func (h *Handler) importMenu(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		http.Error(w, "format field is required", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	userID := auth.UserID(r.Context())
	for i := range params {
		params[i].UserID = userID
	}

	products, err := h.productSvc.CreateBatch(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toSuccessResponse(products)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toSuccessResponse(products []*product.Product) importSuccessResponse {
	responses := make([]productResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, productResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
			Price:       money.Format(p.Price),
			CreatedAt:   p.CreatedAt,
		})
	}

	return importSuccessResponse{
		Imported: len(responses),
		Products: responses,
	}
}
