package ports

import (
	"context"

	"github.com/minikart/storefront/internal/core/domain"
)

// ProductFilter carries the optional query parameters for listing products.
// Zero values mean "no constraint"; Limit <= 0 returns everything upstream
// provides.
type ProductFilter struct {
	Category string
	MinPrice float64
	MaxPrice float64
	Limit    int
}

// ProductCatalog is the read-only upstream product API.
type ProductCatalog interface {
	Products(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	Product(ctx context.Context, id int64) (*domain.Product, error)
}

// RateProvider supplies the USD to INR conversion rate. Implementations
// never fail hard: when the feed is unavailable they return 1.
type RateProvider interface {
	USDToINR(ctx context.Context) float64
}
