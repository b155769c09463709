package bank

import (
	_ "embed"
	"fmt"
	"sync"

	"lpicstudy/internal/question"
)

//go:embed lpic1.yml
var lpic1Catalog []byte

var defaultCatalog = sync.OnceValues(func() (question.Catalog, error) {
	catalog, err := question.ParseCatalog(lpic1Catalog, question.FormatYAML)
	if err != nil {
		return question.Catalog{}, fmt.Errorf("embedded catalog: %w", err)
	}
	return catalog, nil
})

// DefaultCatalog returns the built-in LPIC-1 catalog (objectives 101.1 to 104.3).
func DefaultCatalog() (question.Catalog, error) {
	catalog, err := defaultCatalog()
	if err != nil {
		return question.Catalog{}, err
	}
	return catalog.Clone(), nil
}

// Default builds a bank over the built-in catalog.
func Default(opts Options) (*Bank, error) {
	catalog, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	return New(catalog, opts)
}
