package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/brewhub/internal/checkout"
	"github.com/MrJamesThe3rd/brewhub/internal/money"
	"github.com/MrJamesThe3rd/brewhub/internal/product"
)

type registerState int

const (
	registerStateBrowse registerState = iota
	registerStatePay
	registerStateReceipt
)

type cartLine struct {
	product  *product.Product
	quantity int64
}

type RegisterModel struct {
	CommonModel
	productService  *product.Service
	checkoutService *checkout.Service

	state    registerState
	table    table.Model
	products []*product.Product
	cart     []cartLine
	form     *huh.Form
	receipt  *checkout.Receipt

	categoryFilterIdx int

	loading bool
	err     error
	status  string

	// Form bindings
	formTendered string
}

func NewRegisterModel(productSvc *product.Service, checkoutSvc *checkout.Service) RegisterModel {
	columns := []table.Column{
		{Title: "Name", Width: 25},
		{Title: "Category", Width: 10},
		{Title: "Price", Width: 10},
		{Title: "Sold", Width: 8},
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

	return RegisterModel{
		productService:  productSvc,
		checkoutService: checkoutSvc,
		table:           t,
	}
}

func (m RegisterModel) Title() string { return "Register" }
func (m RegisterModel) ShortHelp() string {
	switch m.state {
	case registerStatePay:
		return "Enter: charge | Esc: cancel"
	case registerStateReceipt:
		return "Enter: new sale | Esc: back"
	}
	return "Esc: back | Enter/+: add | -: remove | c: clear | f: category | p: pay | r: refresh"
}

func (m RegisterModel) Init() tea.Cmd {
	return m.loadProductsCmd()
}

func (m RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCatalogMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.products = msg.products
		m.err = nil
		m.refreshTable()
		return m, nil

	case checkoutDoneMsg:
		if msg.err != nil {
			m.state = registerStateBrowse
			m.form = nil
			m.table.Focus()
			m.status = fmt.Sprintf("Checkout failed: %v", msg.err)
			return m, nil
		}
		m.cart = nil
		m.form = nil
		m.status = ""
		return m, m.loadReceiptCmd(msg.result)

	case receiptMsg:
		if msg.err != nil {
			m.state = registerStateBrowse
			m.table.Focus()
			m.status = fmt.Sprintf("Receipt unavailable: %v", msg.err)
			return m, m.loadProductsCmd()
		}
		m.receipt = msg.receipt
		m.state = registerStateReceipt
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case registerStateBrowse:
		return m.updateBrowse(msg)
	case registerStatePay:
		return m.updatePay(msg)
	case registerStateReceipt:
		return m.updateReceipt(msg)
	}

	return m, nil
}

func (m RegisterModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadProductsCmd()
		case "enter", "+":
			m.addSelected()
			return m, nil
		case "-":
			m.removeSelected()
			return m, nil
		case "c":
			m.cart = nil
			return m, nil
		case "f":
			m.categoryFilterIdx = (m.categoryFilterIdx + 1) % 3
			m.loading = true
			return m, m.loadProductsCmd()
		case "p":
			return m.enterPayMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *RegisterModel) addSelected() {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.products) {
		return
	}

	p := m.products[idx]
	for i := range m.cart {
		if m.cart[i].product.ID == p.ID {
			m.cart[i].quantity++
			return
		}
	}

	m.cart = append(m.cart, cartLine{product: p, quantity: 1})
}

func (m *RegisterModel) removeSelected() {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.products) {
		return
	}

	p := m.products[idx]
	for i := range m.cart {
		if m.cart[i].product.ID != p.ID {
			continue
		}

		m.cart[i].quantity--
		if m.cart[i].quantity <= 0 {
			m.cart = append(m.cart[:i], m.cart[i+1:]...)
		}

		return
	}
}

func (m *RegisterModel) cartTotal() int64 {
	var total int64
	for _, l := range m.cart {
		total += l.product.Price * l.quantity
	}
	return total
}

func (m RegisterModel) enterPayMode() (tea.Model, tea.Cmd) {
	if len(m.cart) == 0 {
		m.status = "Cart is empty"
		return m, nil
	}

	total := m.cartTotal()
	m.formTendered = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("tendered").
				Title(fmt.Sprintf("Cash Tendered (total %s)", FormatAmount(total))).
				Placeholder("0.00").
				Value(&m.formTendered).
				Validate(func(s string) error {
					cents, err := money.Parse(s)
					if err != nil || cents < 0 {
						return fmt.Errorf("enter a valid amount")
					}
					if cents < total {
						return fmt.Errorf("insufficient: total is %s", FormatAmount(total))
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = registerStatePay
	m.table.Blur()
	return m, m.form.Init()
}

func (m RegisterModel) updatePay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		// Checkout already submitted, waiting on the receipt.
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = registerStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	// Drop the form before dispatching so a message arriving ahead of
	// checkoutDoneMsg cannot submit the sale twice.
	m.form = nil

	return m, m.checkoutCmd()
}

func (m RegisterModel) updateReceipt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "esc":
			m.state = registerStateBrowse
			m.receipt = nil
			m.form = nil
			m.table.Focus()
			m.loading = true
			return m, m.loadProductsCmd()
		}
	}

	return m, nil
}

func (m RegisterModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading catalog...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.state == registerStateReceipt && m.receipt != nil {
		return m.receiptView()
	}

	categoryLabels := []string{"All", "Iced", "Hot"}

	header := fmt.Sprintf("Filter: [f] Category: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(categoryLabels[m.categoryFilterIdx]))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	cartPanel := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(40).
		Render(m.cartView())

	content = lipgloss.JoinHorizontal(lipgloss.Top, content, cartPanel)

	if m.state == registerStatePay && m.form != nil {
		payPanel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Payment\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, payPanel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m RegisterModel) cartView() string {
	if len(m.cart) == 0 {
		return "Cart\n\n(empty)"
	}

	var b strings.Builder
	b.WriteString("Cart\n\n")

	for _, l := range m.cart {
		b.WriteString(fmt.Sprintf("%dx %-20s %8s\n",
			l.quantity, l.product.Name, FormatAmount(l.product.Price*l.quantity)))
	}

	b.WriteString(fmt.Sprintf("\nTotal: %s", FormatAmount(m.cartTotal())))

	return b.String()
}

func (m RegisterModel) receiptView() string {
	rec := m.receipt

	var b strings.Builder
	b.WriteString("Receipt\n")
	b.WriteString(fmt.Sprintf("Order %s\n", rec.OrderID))
	b.WriteString(fmt.Sprintf("Date  %s\n\n", FormatDate(rec.Date)))

	for _, l := range rec.Lines {
		b.WriteString(fmt.Sprintf("%dx %-20s %8s\n", l.Quantity, l.Name, FormatAmount(l.UnitPrice*l.Quantity)))
	}

	b.WriteString(fmt.Sprintf("\nTotal:  %8s\n", FormatAmount(rec.Total)))
	b.WriteString(fmt.Sprintf("Cash:   %8s\n", FormatAmount(rec.Cash)))
	b.WriteString(fmt.Sprintf("Change: %8s\n", FormatAmount(rec.Change)))
	b.WriteString("\n(Enter for new sale)")

	return lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(b.String())
}

func (m *RegisterModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.products))
	for _, p := range m.products {
		rows = append(rows, table.Row{
			p.Name,
			string(p.Category),
			FormatAmount(p.Price),
			fmt.Sprintf("%d", p.ItemSold),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadCatalogMsg struct {
	products []*product.Product
	err      error
}

func (m RegisterModel) loadProductsCmd() tea.Cmd {
	filter := product.ListFilter{}

	switch m.categoryFilterIdx {
	case 1:
		category := product.CategoryIced
		filter.Category = &category
	case 2:
		category := product.CategoryHot
		filter.Category = &category
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		products, err := m.productService.List(ctx, filter)
		return loadCatalogMsg{products: products, err: err}
	}
}

type checkoutDoneMsg struct {
	result *checkout.Result
	err    error
}

func (m RegisterModel) checkoutCmd() tea.Cmd {
	lines := make([]checkout.Line, 0, len(m.cart))
	for _, l := range m.cart {
		lines = append(lines, checkout.Line{
			ProductID: l.product.ID,
			UnitPrice: l.product.Price,
			Quantity:  l.quantity,
		})
	}

	tendered := m.formTendered

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := m.checkoutService.Checkout(ctx, checkout.Params{
			Lines:    lines,
			Tendered: tendered,
		})
		return checkoutDoneMsg{result: res, err: err}
	}
}

type receiptMsg struct {
	receipt *checkout.Receipt
	err     error
}

func (m RegisterModel) loadReceiptCmd(res *checkout.Result) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		rec, err := m.checkoutService.Receipt(ctx, res.OrderID)
		return receiptMsg{receipt: rec, err: err}
	}
}
