package catalog

import (
	"strings"

	"github.com/fjod/go_storefront/internal/domain"
)

// Catalog is the read-only product reference data consumed by the engines.
type Catalog interface {
	FindByID(id string) (*domain.Product, bool)
	All() []*domain.Product
	Search(query string) []*domain.Product
}

// Static serves a fixed product list from memory.
type Static struct {
	products []*domain.Product
	byID     map[string]*domain.Product
}

func NewStatic(products []*domain.Product) *Static {
	byID := make(map[string]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Static{products: products, byID: byID}
}

func (c *Static) FindByID(id string) (*domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Static) All() []*domain.Product {
	out := make([]*domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Search matches a case-insensitive substring against title and description.
// An empty query returns the full list.
func (c *Static) Search(query string) []*domain.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.All()
	}

	var out []*domain.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Title), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			out = append(out, p)
		}
	}
	return out
}
