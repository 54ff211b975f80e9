package view

import (
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/require"
)

func TestInventoryCreateSubmitsOnce(t *testing.T) {
	m := NewInventoryModel(nil)

	model, _ := m.enterCreateMode()
	m = model.(InventoryModel)
	require.NotNil(t, m.form)
	require.Equal(t, inventoryStateCreate, m.state)

	m.formName = "Latte"
	m.formDescription = "Espresso with steamed milk"
	m.formCategory = "hot"
	m.formPrice = "4.80"
	m.form.State = huh.StateCompleted

	// First message after completion dispatches the create and drops
	// the form.
	model, cmd := m.Update(struct{}{})
	m = model.(InventoryModel)
	require.NotNil(t, cmd)
	require.Nil(t, m.form)

	// Messages arriving before inventorySaveMsg must not dispatch again.
	model, cmd = m.Update(struct{}{})
	m = model.(InventoryModel)
	require.Nil(t, cmd)
	require.Nil(t, m.form)
}
