package memstore

import (
	"context"
	"testing"

	"github.com/minikart/storefront/internal/core/domain"
)

func TestCartRepository_GetUnknownUserReturnsEmptyCart(t *testing.T) {
	repo := NewCartRepository()

	cart, err := repo.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cart.UserID != "u1" || len(cart.Items) != 0 || cart.Discount != nil {
		t.Fatalf("expected fresh empty cart, got %+v", cart)
	}
}

func TestCartRepository_RoundTrip(t *testing.T) {
	repo := NewCartRepository()
	ctx := context.Background()

	cart := domain.NewCart("u1")
	cart.Items = []domain.CartItem{{ProductID: 1, Title: "widget", UnitPriceUSD: 10, Quantity: 2}}
	cart.Discount = &domain.AppliedDiscount{Code: "10OFF2000", Amount: 250}

	if err := repo.Save(ctx, cart); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", got.Items)
	}
	if got.Discount == nil || got.Discount.Amount != 250 {
		t.Fatalf("unexpected discount: %+v", got.Discount)
	}
}

func TestCartRepository_NoAliasing(t *testing.T) {
	repo := NewCartRepository()
	ctx := context.Background()

	cart := domain.NewCart("u1")
	cart.Items = []domain.CartItem{{ProductID: 1, UnitPriceUSD: 10, Quantity: 1}}
	_ = repo.Save(ctx, cart)

	// Mutating what the caller holds must not touch the stored cart.
	cart.Items[0].Quantity = 99

	first, _ := repo.Get(ctx, "u1")
	if first.Items[0].Quantity != 1 {
		t.Fatalf("stored cart aliased the saved pointer: %+v", first.Items)
	}

	// Mutating a returned cart must not touch the stored one either.
	first.Items[0].Quantity = 42
	second, _ := repo.Get(ctx, "u1")
	if second.Items[0].Quantity != 1 {
		t.Fatalf("stored cart aliased the returned pointer: %+v", second.Items)
	}
}
