// Package memstore provides the default in-process cart backend. Carts run
// entirely within interactive sessions, so a guarded map is sufficient when
// no Redis is configured.
package memstore

import (
	"context"
	"sync"

	"github.com/minikart/storefront/internal/core/domain"
)

// CartRepository is an in-memory ports.CartRepository. Carts are cloned on
// the way in and out so callers never alias the stored state.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[string]*domain.Cart)}
}

func (r *CartRepository) Get(_ context.Context, userID string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[userID]
	if !ok {
		return domain.NewCart(userID), nil
	}
	return cart.Clone(), nil
}

func (r *CartRepository) Save(_ context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[cart.UserID] = cart.Clone()
	return nil
}
