package port

import (
	"context"

	"github.com/robekc/topup-service/internal/core/domain"
)

//go:generate mockgen -source=catalog.go -destination=mock/catalog.go -package=mock

type Catalog interface {
	// Product returns domain.ErrUnknownProduct for ids not in the catalog.
	Product(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}
