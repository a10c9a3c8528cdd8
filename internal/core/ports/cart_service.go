package ports

import "context"

// CartItemView is a single priced line in a cart view.
type CartItemView struct {
	ProductID    int64
	Title        string
	UnitPriceUSD float64
	Quantity     int
	Image        string
	LineTotalUSD float64
}

// CartView is the fully priced cart: USD subtotal, the conversion rate used,
// the gross INR amount, the (possibly stale) applied discount, and the total.
type CartView struct {
	Items        []CartItemView
	SubtotalUSD  float64
	ExchangeRate float64
	GrossINR     float64
	DiscountCode string
	DiscountINR  float64
	TotalINR     float64
	Status       string
}

// CheckoutResult is returned by Checkout. AlreadyEmpty distinguishes the
// no-op replay from a real checkout; both report success.
type CheckoutResult struct {
	OrderSuccess bool
	AlreadyEmpty bool
}

// CartService defines the use-case operations on a user's cart.
type CartService interface {
	View(ctx context.Context, userID string) (*CartView, error)
	AddItem(ctx context.Context, userID string, productID int64, quantity int) (*CartView, error)
	// UpdateQuantity sets the line's quantity; a value <= 0 removes the line.
	UpdateQuantity(ctx context.Context, userID string, productID int64, quantity int) (*CartView, error)
	RemoveItem(ctx context.Context, userID string, productID int64) (*CartView, error)
	Clear(ctx context.Context, userID string) error
	// ApplyDiscount validates the code against the current gross INR total
	// and freezes the computed amount on the cart.
	ApplyDiscount(ctx context.Context, userID, code string) (*CartView, error)
	RemoveDiscount(ctx context.Context, userID string) (*CartView, error)
	// Checkout clears items and discount and marks the order successful.
	// On an already-empty cart it is a no-op that still reports success.
	Checkout(ctx context.Context, userID string) (*CheckoutResult, error)
}
