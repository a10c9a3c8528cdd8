package handler

import (
	"github.com/minikart/storefront/internal/core/ports"
)

// --- Service result to HTTP response ---

func toCartResponse(v *ports.CartView) cartResponse {
	items := make([]cartItemResponse, len(v.Items))
	for i, item := range v.Items {
		items[i] = cartItemResponse{
			ProductID:    item.ProductID,
			Title:        item.Title,
			UnitPriceUSD: item.UnitPriceUSD,
			Quantity:     item.Quantity,
			Image:        item.Image,
			LineTotalUSD: item.LineTotalUSD,
		}
	}
	return cartResponse{
		Items:        items,
		SubtotalUSD:  v.SubtotalUSD,
		ExchangeRate: v.ExchangeRate,
		GrossINR:     v.GrossINR,
		DiscountCode: v.DiscountCode,
		DiscountINR:  v.DiscountINR,
		TotalINR:     v.TotalINR,
		Status:       v.Status,
	}
}
