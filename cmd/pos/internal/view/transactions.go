package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/brewhub/internal/report"
)

type TransactionsModel struct {
	CommonModel
	reportService *report.Service

	table   table.Model
	records []*report.PaymentRecord

	loading bool
	err     error
}

func NewTransactionsModel(reportSvc *report.Service) TransactionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 20},
		{Title: "Order", Width: 36},
		{Title: "Paid", Width: 10},
		{Title: "Cash", Width: 10},
		{Title: "Change", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return TransactionsModel{
		reportService: reportSvc,
		table:         t,
	}
}

func (m TransactionsModel) Title() string     { return "Transaction History" }
func (m TransactionsModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m TransactionsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadPaymentsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.records = msg.records
		m.err = nil
		m.refreshTable()
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m TransactionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(tableView)
}

func (m *TransactionsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.records))
	for _, rec := range m.records {
		rows = append(rows, table.Row{
			rec.PaymentDate.Format("2006-01-02 15:04:05"),
			rec.OrderID.String(),
			FormatAmount(rec.TotalPaid),
			FormatAmount(rec.Amount),
			FormatAmount(rec.Change),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadPaymentsMsg struct {
	records []*report.PaymentRecord
	err     error
}

func (m TransactionsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		records, err := m.reportService.Transactions(ctx, nil)
		return loadPaymentsMsg{records: records, err: err}
	}
}
