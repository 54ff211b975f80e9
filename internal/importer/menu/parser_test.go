package menu_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/brewhub/internal/importer/menu"
	"github.com/MrJamesThe3rd/brewhub/internal/product"
)

func TestParser_Parse(t *testing.T) {
	input := strings.Join([]string{
		"BrewHub Menu Export",
		"",
		"Name;Description;Category;Price",
		"Cappuccino;with chocolate;hot;48.00",
		"Iced Latte;with milk;iced;65.00",
		"Americano;;Hot;35.5",
		"",
		"Total items: 3",
	}, "\n")

	params, err := menu.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 3)

	assert.Equal(t, "Cappuccino", params[0].Name)
	assert.Equal(t, "with chocolate", params[0].Description)
	assert.Equal(t, product.CategoryHot, params[0].Category)
	assert.Equal(t, int64(4800), params[0].Price)

	assert.Equal(t, product.CategoryIced, params[1].Category)
	assert.Equal(t, int64(6500), params[1].Price)

	// Empty description falls back to the name; category is normalized.
	assert.Equal(t, "Americano", params[2].Description)
	assert.Equal(t, product.CategoryHot, params[2].Category)
	assert.Equal(t, int64(3550), params[2].Price)
}

func TestParser_Parse_SkipsBadRows(t *testing.T) {
	input := strings.Join([]string{
		"Name;Description;Category;Price",
		"Cappuccino;with chocolate;hot;48.00",
		"Mystery Drink;no price;hot;n/a",
		"Negative;bad;hot;-5.00",
	}, "\n")

	params, err := menu.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "Cappuccino", params[0].Name)
}

func TestParser_Parse_NoHeader(t *testing.T) {
	input := "just;some;random;cells\n1;2;3;4\n"

	_, err := menu.NewParser().Parse(strings.NewReader(input))
	assert.Error(t, err)
}
