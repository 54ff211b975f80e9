// Package menu parses price-list CSV exports into product create params,
// used to seed or bulk-extend the catalog.
package menu

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	enc "github.com/MrJamesThe3rd/brewhub/internal/encoding"
	"github.com/MrJamesThe3rd/brewhub/internal/money"
	"github.com/MrJamesThe3rd/brewhub/internal/product"
)

const (
	colName     = "Name"
	colDesc     = "Description"
	colCategory = "Category"
	colPrice    = "Price"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]product.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	var params []product.CreateParams

	headerFound := false

	idxName := -1
	idxDesc := -1
	idxCategory := -1
	idxPrice := -1

	for _, row := range rows {
		// Search for the header landmark first; exports often carry
		// title or date rows above it.
		if !headerFound {
			matches := 0

			for i, col := range row {
				switch strings.TrimSpace(col) {
				case colName:
					idxName = i
					matches++
				case colDesc:
					idxDesc = i
					matches++
				case colCategory:
					idxCategory = i
					matches++
				case colPrice:
					idxPrice = i
					matches++
				}
			}

			if idxName != -1 && idxPrice != -1 && matches >= 2 {
				headerFound = true
			}

			continue
		}

		name := cellValue(row, idxName)
		if name == "" {
			// Blank or footer row.
			continue
		}

		priceCents, err := money.Parse(cellValue(row, idxPrice))
		if err != nil || priceCents < 0 {
			continue
		}

		description := cellValue(row, idxDesc)
		if description == "" {
			description = name
		}

		params = append(params, product.CreateParams{
			Name:        name,
			Description: description,
			Category:    product.Category(strings.ToLower(cellValue(row, idxCategory))),
			Price:       priceCents,
		})
	}

	if !headerFound {
		return nil, fmt.Errorf("no menu header found: expected %s and %s columns", colName, colPrice)
	}

	return params, nil
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
