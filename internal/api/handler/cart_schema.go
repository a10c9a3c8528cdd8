package handler

// --- Request / Response types ---

type addItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity"   validate:"required,min=1"`
}

// updateQuantityRequest deliberately allows zero and negative quantities:
// a value <= 0 removes the line instead of leaving it at an invalid count.
type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type applyDiscountRequest struct {
	Code string `json:"code" validate:"required"`
}

type cartItemResponse struct {
	ProductID    int64   `json:"product_id"`
	Title        string  `json:"title"`
	UnitPriceUSD float64 `json:"unit_price_usd"`
	Quantity     int     `json:"quantity"`
	Image        string  `json:"image"`
	LineTotalUSD float64 `json:"line_total_usd"`
}

type cartResponse struct {
	Items        []cartItemResponse `json:"items"`
	SubtotalUSD  float64            `json:"subtotal_usd"`
	ExchangeRate float64            `json:"exchange_rate"`
	GrossINR     float64            `json:"gross_inr"`
	DiscountCode string             `json:"discount_code,omitempty"`
	DiscountINR  float64            `json:"discount_inr"`
	TotalINR     float64            `json:"total_inr"`
	Status       string             `json:"status"`
}

type checkoutResponse struct {
	OrderSuccess bool `json:"order_success"`
}
