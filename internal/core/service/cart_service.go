package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/minikart/storefront/internal/api/metrics"
	"github.com/minikart/storefront/internal/core/domain"
	"github.com/minikart/storefront/internal/core/ports"
)

// CartService implements the cart pricing engine: per-user line items,
// USD to INR conversion, the static discount table, and checkout.
type CartService struct {
	carts     ports.CartRepository
	catalog   ports.ProductCatalog
	rates     ports.RateProvider
	discounts domain.DiscountTable
	log       zerolog.Logger
}

func NewCartService(
	carts ports.CartRepository,
	catalog ports.ProductCatalog,
	rates ports.RateProvider,
	discounts domain.DiscountTable,
	log zerolog.Logger,
) *CartService {
	return &CartService{
		carts:     carts,
		catalog:   catalog,
		rates:     rates,
		discounts: discounts,
		log:       log,
	}
}

// View prices the cart against the current exchange rate. The applied
// discount amount is read as stored, not recomputed.
func (s *CartService) View(ctx context.Context, userID string) (*ports.CartView, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, cart), nil
}

// AddItem resolves the product in the catalog and merges it into the cart,
// adding quantity to an existing line for the same product. Adding an item
// to a checked-out cart starts a fresh order.
func (s *CartService) AddItem(ctx context.Context, userID string, productID int64, quantity int) (*ports.CartView, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if i := cart.ItemIndex(productID); i >= 0 {
		cart.Items[i].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID:    product.ID,
			Title:        product.Title,
			UnitPriceUSD: product.Price,
			Quantity:     quantity,
			Image:        product.Image,
		})
	}
	cart.CheckedOut = false

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return s.view(ctx, cart), nil
}

// UpdateQuantity sets a line's quantity. A value <= 0 removes the line; no
// line may sit in the cart with a non-positive quantity.
func (s *CartService) UpdateQuantity(ctx context.Context, userID string, productID int64, quantity int) (*ports.CartView, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	i := cart.ItemIndex(productID)
	if i < 0 {
		return nil, domain.ErrItemNotInCart
	}

	if quantity <= 0 {
		cart.RemoveItem(productID)
	} else {
		cart.Items[i].Quantity = quantity
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return s.view(ctx, cart), nil
}

// RemoveItem deletes a line from the cart.
func (s *CartService) RemoveItem(ctx context.Context, userID string, productID int64) (*ports.CartView, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if cart.ItemIndex(productID) < 0 {
		return nil, domain.ErrItemNotInCart
	}
	cart.RemoveItem(productID)

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return s.view(ctx, cart), nil
}

// Clear empties the cart and drops any applied discount.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return err
	}
	cart.Items = nil
	cart.Discount = nil
	return s.carts.Save(ctx, cart)
}

// ApplyDiscount validates the code against the current gross INR total and
// freezes the computed amount on the cart. The amount is not recomputed when
// the cart changes later; it stays fixed until the code is removed or
// re-applied.
func (s *CartService) ApplyDiscount(ctx context.Context, userID, code string) (*ports.CartView, error) {
	entry, ok := s.discounts[code]
	if !ok {
		metrics.DiscountApplicationsTotal.WithLabelValues("invalid_code").Inc()
		return nil, domain.ErrInvalidDiscountCode
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	rate := s.rates.USDToINR(ctx)
	gross := cart.SubtotalUSD() * rate
	if gross < entry.MinAmountINR {
		metrics.DiscountApplicationsTotal.WithLabelValues("below_minimum").Inc()
		return nil, &domain.DiscountMinimumError{Code: entry.Code, MinAmountINR: entry.MinAmountINR}
	}

	cart.Discount = &domain.AppliedDiscount{
		Code:   entry.Code,
		Amount: gross * entry.Fraction,
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	metrics.DiscountApplicationsTotal.WithLabelValues("applied").Inc()
	s.log.Info().
		Str("user_id", userID).
		Str("code", entry.Code).
		Float64("amount_inr", cart.Discount.Amount).
		Msg("discount applied")

	return s.viewWithRate(cart, rate), nil
}

// RemoveDiscount clears the code and applied amount unconditionally.
func (s *CartService) RemoveDiscount(ctx context.Context, userID string) (*ports.CartView, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart.Discount = nil

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return s.view(ctx, cart), nil
}

// Checkout empties the cart, drops the discount, and marks the order
// successful. There is no payment or inventory step. Checking out an
// already-empty cart is a no-op that still reports success.
func (s *CartService) Checkout(ctx context.Context, userID string) (*ports.CheckoutResult, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := cart.Status()
	if !status.CanTransitionTo(domain.CartCheckedOut) {
		return &ports.CheckoutResult{OrderSuccess: true, AlreadyEmpty: true}, nil
	}

	cart.Items = nil
	cart.Discount = nil
	cart.CheckedOut = true

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	metrics.CheckoutsTotal.Inc()
	s.log.Info().Str("user_id", userID).Str("from_status", string(status)).Msg("cart checked out")

	return &ports.CheckoutResult{OrderSuccess: true}, nil
}

func (s *CartService) view(ctx context.Context, cart *domain.Cart) *ports.CartView {
	return s.viewWithRate(cart, s.rates.USDToINR(ctx))
}

func (s *CartService) viewWithRate(cart *domain.Cart, rate float64) *ports.CartView {
	items := make([]ports.CartItemView, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = ports.CartItemView{
			ProductID:    item.ProductID,
			Title:        item.Title,
			UnitPriceUSD: item.UnitPriceUSD,
			Quantity:     item.Quantity,
			Image:        item.Image,
			LineTotalUSD: item.UnitPriceUSD * float64(item.Quantity),
		}
	}

	subtotal := cart.SubtotalUSD()
	gross := subtotal * rate

	view := &ports.CartView{
		Items:        items,
		SubtotalUSD:  subtotal,
		ExchangeRate: rate,
		GrossINR:     gross,
		TotalINR:     gross,
		Status:       string(cart.Status()),
	}
	if cart.Discount != nil {
		view.DiscountCode = cart.Discount.Code
		view.DiscountINR = cart.Discount.Amount
		view.TotalINR = gross - cart.Discount.Amount
	}
	return view
}
