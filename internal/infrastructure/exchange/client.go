// Package exchange fetches the USD to INR conversion rate from the external
// rate feed (exchangerate-api v4 contract). The feed is time-varying and
// best-effort: a failed fetch degrades to a rate of 1, never an error.
package exchange

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/minikart/storefront/internal/api/metrics"
)

const (
	requestTimeout = 5 * time.Second

	// fallbackRate is used whenever the feed cannot be reached or parsed.
	fallbackRate = 1.0
)

// Client implements ports.RateProvider with a small in-process cache so one
// burst of cart requests hits the feed at most once per TTL window. A TTL of
// 0 disables caching and fetches on every call.
type Client struct {
	url  string
	ttl  time.Duration
	http *http.Client
	log  zerolog.Logger

	mu        sync.Mutex
	rate      float64
	fetchedAt time.Time
}

func NewClient(url string, cacheTTL time.Duration, log zerolog.Logger) *Client {
	return &Client{
		url:  url,
		ttl:  cacheTTL,
		http: &http.Client{Timeout: requestTimeout},
		log:  log,
	}
}

// USDToINR returns the current conversion rate, or 1 when the feed is
// unavailable. It never fails.
func (c *Client) USDToINR(ctx context.Context) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ttl > 0 && !c.fetchedAt.IsZero() && time.Since(c.fetchedAt) < c.ttl {
		return c.rate
	}

	c.rate = c.fetch(ctx)
	c.fetchedAt = time.Now()
	return c.rate
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

func (c *Client) fetch(ctx context.Context) float64 {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return c.fallback(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fallback(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Msg("exchange rate feed returned non-200")
		metrics.ExchangeRateFetchesTotal.WithLabelValues("fallback").Inc()
		return fallbackRate
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return c.fallback(err)
	}

	rate, ok := body.Rates["INR"]
	if !ok || rate <= 0 {
		c.log.Warn().Msg("exchange rate feed missing INR rate")
		metrics.ExchangeRateFetchesTotal.WithLabelValues("fallback").Inc()
		return fallbackRate
	}

	metrics.ExchangeRateFetchesTotal.WithLabelValues("ok").Inc()
	return rate
}

func (c *Client) fallback(err error) float64 {
	c.log.Warn().Err(err).Msg("failed to fetch exchange rate, defaulting to 1")
	metrics.ExchangeRateFetchesTotal.WithLabelValues("fallback").Inc()
	return fallbackRate
}
