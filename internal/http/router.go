package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/brewhub/internal/http/auth"
	checkoutHandler "github.com/MrJamesThe3rd/brewhub/internal/http/checkout"
	"github.com/MrJamesThe3rd/brewhub/internal/http/menuimport"
	productHandler "github.com/MrJamesThe3rd/brewhub/internal/http/product"
	reportHandler "github.com/MrJamesThe3rd/brewhub/internal/http/report"
)

func New(
	authSecret string,
	productsV1 *productHandler.Handler,
	checkoutV1 *checkoutHandler.Handler,
	reportsV1 *reportHandler.Handler,
	importV1 *menuimport.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))
	router.Use(auth.Middleware(authSecret))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			productsV1.Routes(r)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			checkoutV1.Routes(r)
		})

		r.Route("/receipts", checkoutV1.ReceiptRoutes)

		r.Route("/reports", func(r chi.Router) {
			reportsV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)
	})

	return router
}
