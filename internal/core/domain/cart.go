package domain

import "errors"

// CartStatus represents the lifecycle state of a user's cart.
type CartStatus string

const (
	CartEmpty           CartStatus = "empty"
	CartPopulated       CartStatus = "populated"
	CartDiscountApplied CartStatus = "discount_applied"
	CartCheckedOut      CartStatus = "checked_out"
)

// validTransitions defines the allowed cart state machine transitions.
// checked_out is terminal for the current order; adding an item afterwards
// starts a fresh cart.
var validTransitions = map[CartStatus][]CartStatus{
	CartEmpty:           {CartPopulated},
	CartPopulated:       {CartEmpty, CartDiscountApplied, CartCheckedOut},
	CartDiscountApplied: {CartPopulated, CartCheckedOut},
	CartCheckedOut:      {CartPopulated},
}

var ErrItemNotInCart = errors.New("item not in cart")
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s CartStatus) CanTransitionTo(next CartStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CartItem is a single line in a cart. Prices are USD, as denominated by
// the catalog. Quantity is always >= 1 while the item is present; an update
// that would drop it to 0 removes the line instead.
type CartItem struct {
	ProductID    int64   `json:"product_id"`
	Title        string  `json:"title"`
	UnitPriceUSD float64 `json:"unit_price_usd"`
	Quantity     int     `json:"quantity"`
	Image        string  `json:"image"`
}

// AppliedDiscount records a discount at the moment it was applied. Amount is
// the INR value computed against the gross at apply time and is deliberately
// not recomputed when the cart changes afterwards.
type AppliedDiscount struct {
	Code   string  `json:"code"`
	Amount float64 `json:"amount"`
}

// Cart is the per-user shopping cart aggregate.
type Cart struct {
	UserID     string           `json:"user_id"`
	Items      []CartItem       `json:"items"`
	Discount   *AppliedDiscount `json:"discount,omitempty"`
	CheckedOut bool             `json:"checked_out"`
}

// NewCart returns an empty cart for the given user.
func NewCart(userID string) *Cart {
	return &Cart{UserID: userID}
}

// Status derives the cart's lifecycle state from its contents.
func (c *Cart) Status() CartStatus {
	switch {
	case len(c.Items) == 0 && c.CheckedOut:
		return CartCheckedOut
	case len(c.Items) == 0:
		return CartEmpty
	case c.Discount != nil:
		return CartDiscountApplied
	default:
		return CartPopulated
	}
}

// SubtotalUSD sums unit price times quantity over all lines.
func (c *Cart) SubtotalUSD() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.UnitPriceUSD * float64(item.Quantity)
	}
	return total
}

// ItemIndex returns the position of the line for productID, or -1.
func (c *Cart) ItemIndex(productID int64) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// RemoveItem deletes the line for productID if present.
func (c *Cart) RemoveItem(productID int64) {
	if i := c.ItemIndex(productID); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// Clone returns a deep copy so stores can hand out carts without aliasing
// their internal state.
func (c *Cart) Clone() *Cart {
	clone := *c
	clone.Items = append([]CartItem(nil), c.Items...)
	if c.Discount != nil {
		d := *c.Discount
		clone.Discount = &d
	}
	return &clone
}
