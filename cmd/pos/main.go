package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/brewhub/cmd/pos/internal/view"
	"github.com/MrJamesThe3rd/brewhub/internal/checkout"
	checkoutStore "github.com/MrJamesThe3rd/brewhub/internal/checkout/store"
	"github.com/MrJamesThe3rd/brewhub/internal/config"
	"github.com/MrJamesThe3rd/brewhub/internal/database"
	"github.com/MrJamesThe3rd/brewhub/internal/product"
	productStore "github.com/MrJamesThe3rd/brewhub/internal/product/store"
	"github.com/MrJamesThe3rd/brewhub/internal/report"
	reportStore "github.com/MrJamesThe3rd/brewhub/internal/report/store"
)

type model struct {
	productService  *product.Service
	checkoutService *checkout.Service
	reportService   *report.Service

	currentView View

	registerView     view.RegisterModel
	inventoryView    view.InventoryModel
	salesView        view.SalesModel
	transactionsView view.TransactionsModel
}

type View int

const (
	ViewMenu         View = 0
	ViewRegister     View = 1
	ViewInventory    View = 2
	ViewSales        View = 3
	ViewTransactions View = 4
)

func initialModel() model {
	_ = godotenv.Load()

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

	productSvc := product.NewService(productStore.New(db))
	checkoutSvc := checkout.NewService(checkoutStore.New(db))
	reportSvc := report.NewService(reportStore.New(db))

	return model{
		productService:   productSvc,
		checkoutService:  checkoutSvc,
		reportService:    reportSvc,
		currentView:      ViewMenu,
		registerView:     view.NewRegisterModel(productSvc, checkoutSvc),
		inventoryView:    view.NewInventoryModel(productSvc),
		salesView:        view.NewSalesModel(reportSvc),
		transactionsView: view.NewTransactionsModel(reportSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewRegister
				m.registerView = view.NewRegisterModel(m.productService, m.checkoutService)

				return m, m.registerView.Init()
			case "2":
				m.currentView = ViewInventory
				m.inventoryView = view.NewInventoryModel(m.productService)

				return m, m.inventoryView.Init()
			case "3":
				m.currentView = ViewSales
				m.salesView = view.NewSalesModel(m.reportService)

				return m, m.salesView.Init()
			case "4":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.reportService)

				return m, m.transactionsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewRegister:
		var newModel tea.Model
		newModel, cmd = m.registerView.Update(msg)
		m.registerView = newModel.(view.RegisterModel)
	case ViewInventory:
		var newModel tea.Model
		newModel, cmd = m.inventoryView.Update(msg)
		m.inventoryView = newModel.(view.InventoryModel)
	case ViewSales:
		var newModel tea.Model
		newModel, cmd = m.salesView.Update(msg)
		m.salesView = newModel.(view.SalesModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"BrewHub POS\n\n" +
				"1. Register\n" +
				"2. Inventory\n" +
				"3. Sales Reports\n" +
				"4. Transaction History\n\n" +
				"q. Quit",
		)
	case ViewRegister:
		return m.registerView.View()
	case ViewInventory:
		return m.inventoryView.View()
	case ViewSales:
		return m.salesView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
