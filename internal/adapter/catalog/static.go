package catalog

import (
	"context"
	"sort"

	"github.com/robekc/topup-service/internal/core/domain"
)

// StaticCatalog serves the fixed top-up product list. Prices are in
// rupiah, which is also the smallest unit.
type StaticCatalog struct {
	products map[string]domain.Product
}

func NewStaticCatalog() *StaticCatalog {
	products := []domain.Product{
		{ID: "p100", Name: "Diamond 50", Price: 12000},
		{ID: "p200", Name: "Diamond 120", Price: 30000},
		{ID: "p300", Name: "Voucher 50k", Price: 50000},
	}

	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return &StaticCatalog{products: byID}
}

func (c *StaticCatalog) Product(ctx context.Context, id string) (*domain.Product, error) {
	product, ok := c.products[id]
	if !ok {
		return nil, domain.ErrUnknownProduct
	}
	return &product, nil
}

func (c *StaticCatalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	list := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
