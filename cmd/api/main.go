package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/MrJamesThe3rd/brewhub/internal/checkout"
	checkoutStore "github.com/MrJamesThe3rd/brewhub/internal/checkout/store"
	"github.com/MrJamesThe3rd/brewhub/internal/config"
	"github.com/MrJamesThe3rd/brewhub/internal/database"
	brewhubHttp "github.com/MrJamesThe3rd/brewhub/internal/http"
	checkoutHandler "github.com/MrJamesThe3rd/brewhub/internal/http/checkout"
	"github.com/MrJamesThe3rd/brewhub/internal/http/menuimport"
	productHandler "github.com/MrJamesThe3rd/brewhub/internal/http/product"
	reportHandler "github.com/MrJamesThe3rd/brewhub/internal/http/report"
	"github.com/MrJamesThe3rd/brewhub/internal/importer"
	"github.com/MrJamesThe3rd/brewhub/internal/product"
	productStore "github.com/MrJamesThe3rd/brewhub/internal/product/store"
	"github.com/MrJamesThe3rd/brewhub/internal/report"
	reportStore "github.com/MrJamesThe3rd/brewhub/internal/report/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), cfg.DB.MaxOpenConns, cfg.DB.MaxIdleConns, cfg.DB.ConnLifetime)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		productService  = product.NewService(productStore.New(db))
		checkoutService = checkout.NewService(checkoutStore.New(db))
		reportService   = report.NewService(reportStore.New(db))
		importService   = importer.NewService()
	)

	var (
		productH  = productHandler.NewHandler(productService)
		checkoutH = checkoutHandler.NewHandler(checkoutService)
		reportH   = reportHandler.NewHandler(reportService)
		importH   = menuimport.NewHandler(importService, productService)
	)

	router := brewhubHttp.New(cfg.Auth.Secret, productH, checkoutH, reportH, importH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
