package view

import (
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/brewhub/internal/product"
)

func TestRegisterPaymentSubmitsOnce(t *testing.T) {
	m := NewRegisterModel(nil, nil)
	m.cart = []cartLine{{
		product:  &product.Product{ID: uuid.New(), Name: "Latte", Price: 4800},
		quantity: 2,
	}}

	model, _ := m.enterPayMode()
	m = model.(RegisterModel)
	require.NotNil(t, m.form)
	require.Equal(t, registerStatePay, m.state)

	m.formTendered = "100.00"
	m.form.State = huh.StateCompleted

	// First message after completion dispatches the checkout and drops
	// the form.
	model, cmd := m.Update(struct{}{})
	m = model.(RegisterModel)
	require.NotNil(t, cmd)
	require.Nil(t, m.form)

	// Messages arriving before checkoutDoneMsg must not dispatch again.
	model, cmd = m.Update(struct{}{})
	m = model.(RegisterModel)
	require.Nil(t, cmd)
	require.Nil(t, m.form)
}

func TestRegisterPayRequiresCart(t *testing.T) {
	m := NewRegisterModel(nil, nil)

	model, cmd := m.enterPayMode()
	m = model.(RegisterModel)
	require.Nil(t, cmd)
	require.Nil(t, m.form)
	require.Equal(t, registerStateBrowse, m.state)
}
