package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/brewhub/internal/money"
	"github.com/MrJamesThe3rd/brewhub/internal/product"
)

type inventoryState int

const (
	inventoryStateBrowse inventoryState = iota
	inventoryStateEdit
	inventoryStateCreate
)

type InventoryModel struct {
	CommonModel
	productService *product.Service

	state    inventoryState
	table    table.Model
	products []*product.Product
	form     *huh.Form

	categoryFilterIdx int

	loading bool
	err     error
	status  string

	// Form bindings
	formName        string
	formDescription string
	formCategory    string
	formPrice       string
}

func NewInventoryModel(productSvc *product.Service) InventoryModel {
	columns := []table.Column{
		{Title: "Name", Width: 25},
		{Title: "Category", Width: 10},
		{Title: "Price", Width: 10},
		{Title: "Sold", Width: 8},
		{Title: "Description", Width: 35},
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

	return InventoryModel{
		productService: productSvc,
		table:          t,
	}
}

func (m InventoryModel) Title() string { return "Inventory" }
func (m InventoryModel) ShortHelp() string {
	if m.state != inventoryStateBrowse {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | n: new | e: edit | x: delete | f: category | r: refresh"
}

func (m InventoryModel) Init() tea.Cmd {
	return m.loadProductsCmd()
}

func (m InventoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadInventoryMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.products = msg.products
		m.err = nil
		m.refreshTable()
		return m, nil

	case inventorySaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = ""
		}
		m.state = inventoryStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadProductsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case inventoryStateBrowse:
		return m.updateBrowse(msg)
	case inventoryStateEdit, inventoryStateCreate:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m InventoryModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadProductsCmd()
		case "n":
			return m.enterCreateMode()
		case "e":
			return m.enterEditMode()
		case "x":
			return m, m.deleteCmd()
		case "f":
			m.categoryFilterIdx = (m.categoryFilterIdx + 1) % 3
			m.loading = true
			return m, m.loadProductsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *InventoryModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					if len(s) > 100 {
						return fmt.Errorf("name too long")
					}
					return nil
				}),

			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDescription).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description cannot be empty")
					}
					if len(s) > 500 {
						return fmt.Errorf("description too long")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(
					huh.NewOption("Iced", string(product.CategoryIced)),
					huh.NewOption("Hot", string(product.CategoryHot)),
				).
				Value(&m.formCategory),

			huh.NewInput().
				Key("price").
				Title("Price").
				Placeholder("0.00").
				Value(&m.formPrice).
				Validate(func(s string) error {
					cents, err := money.Parse(s)
					if err != nil || cents < 0 {
						return fmt.Errorf("enter a valid non-negative price")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m InventoryModel) enterCreateMode() (tea.Model, tea.Cmd) {
	m.formName = ""
	m.formDescription = ""
	m.formCategory = string(product.CategoryHot)
	m.formPrice = ""

	m.form = m.buildForm()
	m.state = inventoryStateCreate
	m.table.Blur()
	return m, m.form.Init()
}

func (m InventoryModel) enterEditMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.products) {
		return m, nil
	}

	p := m.products[idx]
	m.formName = p.Name
	m.formDescription = p.Description
	m.formCategory = string(p.Category)
	m.formPrice = FormatAmount(p.Price)

	m.form = m.buildForm()
	m.state = inventoryStateEdit
	m.table.Blur()
	return m, m.form.Init()
}

func (m InventoryModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		// Save already submitted, waiting on the result.
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = inventoryStateBrowse
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
	// inventorySaveMsg cannot submit the change twice.
	m.form = nil

	if m.state == inventoryStateCreate {
		return m, m.createCmd()
	}

	return m, m.saveCmd()
}

func (m InventoryModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading products...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
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

	if m.state != inventoryStateBrowse && m.form != nil {
		title := "Edit Product"
		if m.state == inventoryStateCreate {
			title = "New Product"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("%s\n\n%s", title, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *InventoryModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.products))
	for _, p := range m.products {
		rows = append(rows, table.Row{
			p.Name,
			string(p.Category),
			FormatAmount(p.Price),
			fmt.Sprintf("%d", p.ItemSold),
			p.Description,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadInventoryMsg struct {
	products []*product.Product
	err      error
}

func (m InventoryModel) loadProductsCmd() tea.Cmd {
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
		return loadInventoryMsg{products: products, err: err}
	}
}

type inventorySaveMsg struct {
	err error
}

func (m InventoryModel) createCmd() tea.Cmd {
	price, _ := money.Parse(m.formPrice)
	params := product.CreateParams{
		Name:        m.formName,
		Description: m.formDescription,
		Category:    product.Category(m.formCategory),
		Price:       price,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.productService.Create(ctx, params)
		return inventorySaveMsg{err: err}
	}
}

func (m InventoryModel) saveCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.products) {
		return nil
	}

	p := m.products[idx]
	price, _ := money.Parse(m.formPrice)

	p.Name = m.formName
	p.Description = m.formDescription
	p.Category = product.Category(m.formCategory)
	p.Price = price

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return inventorySaveMsg{err: m.productService.Update(ctx, p)}
	}
}

func (m InventoryModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.products) {
		return nil
	}

	id := m.products[idx].ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return inventorySaveMsg{err: m.productService.Delete(ctx, id)}
	}
}
