package importer

import (
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/brewhub/internal/importer/menu"
	"github.com/MrJamesThe3rd/brewhub/internal/product"
)

type Service struct {
	menuParser Parser
}

func NewService() *Service {
	return &Service{
		menuParser: menu.NewParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]product.CreateParams, error) {
	var parser Parser

	switch format {
	case FormatMenuCSV:
		parser = s.menuParser
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	return parser.Parse(r)
}
