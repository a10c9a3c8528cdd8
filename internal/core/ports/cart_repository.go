package ports

import (
	"context"

	"github.com/minikart/storefront/internal/core/domain"
)

// CartRepository stores one cart per user. Get returns a fresh empty cart
// when the user has none yet; callers mutate the returned cart and persist
// it back with Save.
type CartRepository interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
}
