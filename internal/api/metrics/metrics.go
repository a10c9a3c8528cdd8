// Package metrics defines all custom Prometheus metrics for the storefront
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "ok", "duplicate", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "invalid", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Cart metrics ──────────────────────────────────────────────────────────────

// DiscountApplicationsTotal counts discount code applications.
// Label:
//   - result: "applied", "invalid_code", or "below_minimum"
var DiscountApplicationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "discount_applications_total",
		Help:      "Total number of discount code applications, by result.",
	},
	[]string{"result"},
)

// CheckoutsTotal counts successful checkouts (empty-cart replays excluded).
var CheckoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Total number of carts checked out.",
	},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// ExchangeRateFetchesTotal counts exchange rate feed fetches.
// Label:
//   - result: "ok" or "fallback" (feed unavailable, default rate used)
var ExchangeRateFetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exchange_rate_fetches_total",
		Help:      "Total number of exchange rate feed fetches, by result.",
	},
	[]string{"result"},
)

// CatalogRequestDuration measures upstream catalog call latency.
// Label:
//   - endpoint: "list" or "detail"
var CatalogRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "catalog_request_duration_seconds",
		Help:      "Duration of upstream product catalog requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// CatalogErrorsTotal counts failed upstream catalog calls.
// Label:
//   - endpoint: "list" or "detail"
var CatalogErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_errors_total",
		Help:      "Total number of failed upstream product catalog requests.",
	},
	[]string{"endpoint"},
)
