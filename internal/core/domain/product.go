package domain

import "errors"

// Product mirrors the catalog API contract:
// {id, title, price, description, image, category}. Prices are USD.
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

var ErrProductNotFound = errors.New("product not found")
var ErrCatalogUnavailable = errors.New("product catalog unavailable")
