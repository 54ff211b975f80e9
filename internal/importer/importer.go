package importer

import (
	"io"

	"github.com/MrJamesThe3rd/brewhub/internal/product"
)

type Format string

const (
	FormatMenuCSV Format = "menu"
)

type Parser interface {
	Parse(r io.Reader) ([]product.CreateParams, error)
}
