package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/brewhub/internal/report"
)

type salesScope int

const (
	salesScopeDaily salesScope = iota
	salesScopeMonthly
	salesScopeYearly
)

func (s salesScope) String() string {
	switch s {
	case salesScopeDaily:
		return "Daily"
	case salesScopeMonthly:
		return "Monthly"
	case salesScopeYearly:
		return "Yearly"
	}

	return "Unknown"
}

type SalesModel struct {
	CommonModel
	reportService *report.Service

	scope salesScope
	day   time.Time
	table table.Model

	daily   *report.DailySummary
	monthly []*report.MonthlySummary
	yearly  []*report.YearlySummary

	loading bool
	err     error
}

func NewSalesModel(reportSvc *report.Service) SalesModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Time", Width: 20},
			{Title: "Sale", Width: 12},
			{Title: "Running Total", Width: 15},
		}),
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

	return SalesModel{
		reportService: reportSvc,
		day:           time.Now(),
		table:         t,
	}
}

func (m SalesModel) Title() string { return "Sales Reports" }
func (m SalesModel) ShortHelp() string {
	if m.scope == salesScopeDaily {
		return "Esc: back | t: timeframe | left/right: day | r: refresh"
	}
	return "Esc: back | t: timeframe | r: refresh"
}

func (m SalesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m SalesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadSalesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.daily = msg.daily
		m.monthly = msg.monthly
		m.yearly = msg.yearly
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
		case "t":
			m.scope = (m.scope + 1) % 3
			m.refreshColumns()
			m.loading = true
			return m, m.loadCmd()
		case "left":
			if m.scope == salesScopeDaily {
				m.day = m.day.AddDate(0, 0, -1)
				m.loading = true
				return m, m.loadCmd()
			}
		case "right":
			if m.scope == salesScopeDaily {
				m.day = m.day.AddDate(0, 0, 1)
				m.loading = true
				return m, m.loadCmd()
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m SalesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading sales...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("[t] Timeframe: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(m.scope.String()))

	if m.scope == salesScopeDaily {
		total := int64(0)
		if m.daily != nil {
			total = m.daily.Total
		}

		header += fmt.Sprintf(" | Day: %s | Total: %s", FormatDate(m.day), FormatAmount(total))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *SalesModel) refreshColumns() {
	switch m.scope {
	case salesScopeDaily:
		m.table.SetColumns([]table.Column{
			{Title: "Time", Width: 20},
			{Title: "Sale", Width: 12},
			{Title: "Running Total", Width: 15},
		})
	case salesScopeMonthly:
		m.table.SetColumns([]table.Column{
			{Title: "Month", Width: 15},
			{Title: "Sales", Width: 8},
			{Title: "Total", Width: 12},
		})
	case salesScopeYearly:
		m.table.SetColumns([]table.Column{
			{Title: "Year", Width: 8},
			{Title: "Sales", Width: 8},
			{Title: "Total", Width: 12},
		})
	}

	m.table.SetRows(nil)
}

func (m *SalesModel) refreshTable() {
	var rows []table.Row

	switch m.scope {
	case salesScopeDaily:
		if m.daily == nil {
			break
		}
		for _, rep := range m.daily.Reports {
			rows = append(rows, table.Row{
				rep.SalesDate.Format("15:04:05"),
				FormatAmount(rep.DailyTotSales),
				FormatAmount(rep.GeneralTotSales),
			})
		}
	case salesScopeMonthly:
		for _, s := range m.monthly {
			rows = append(rows, table.Row{
				fmt.Sprintf("%s %d", s.Month.String(), s.Year),
				fmt.Sprintf("%d", s.Count),
				FormatAmount(s.Total),
			})
		}
	case salesScopeYearly:
		for _, s := range m.yearly {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", s.Year),
				fmt.Sprintf("%d", s.Count),
				FormatAmount(s.Total),
			})
		}
	}

	m.table.SetRows(rows)
}

// Messages

type loadSalesMsg struct {
	daily   *report.DailySummary
	monthly []*report.MonthlySummary
	yearly  []*report.YearlySummary
	err     error
}

func (m SalesModel) loadCmd() tea.Cmd {
	scope := m.scope
	day := m.day

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		switch scope {
		case salesScopeMonthly:
			monthly, err := m.reportService.Monthly(ctx, nil)
			return loadSalesMsg{monthly: monthly, err: err}
		case salesScopeYearly:
			yearly, err := m.reportService.Yearly(ctx, nil)
			return loadSalesMsg{yearly: yearly, err: err}
		default:
			daily, err := m.reportService.Daily(ctx, nil, day)
			return loadSalesMsg{daily: daily, err: err}
		}
	}
}
