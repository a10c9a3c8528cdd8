// Package catalog is the read-only client for the external product API
// (fakestoreapi-compatible). The upstream returns
// {id, title, price, description, image, category} lists; filtering happens
// here because the upstream offers none.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/minikart/storefront/internal/api/metrics"
	"github.com/minikart/storefront/internal/core/domain"
	"github.com/minikart/storefront/internal/core/ports"
)

const requestTimeout = 10 * time.Second

// Client implements ports.ProductCatalog over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
	}
}

// Products lists the catalog, applying category, price range, and limit
// filters. Category comparison is case-insensitive, matching the storefront
// filter behaviour.
func (c *Client) Products(ctx context.Context, filter ports.ProductFilter) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.getJSON(ctx, "list", c.baseURL+"/products", &products); err != nil {
		return nil, err
	}

	filtered := products[:0]
	for _, p := range products {
		if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
			continue
		}
		if filter.MinPrice > 0 && p.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
			continue
		}
		filtered = append(filtered, p)
	}
	if filter.Limit > 0 && len(filtered) > filter.Limit {
		filtered = filtered[:filter.Limit]
	}
	return filtered, nil
}

// Product fetches a single product. The upstream answers an unknown id with
// an empty body rather than a 404, so a zero-id decode also means not found.
func (c *Client) Product(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	err := c.getJSON(ctx, "detail", c.baseURL+"/products/"+strconv.FormatInt(id, 10), &product)
	if err != nil {
		return nil, err
	}
	if product.ID == 0 {
		return nil, domain.ErrProductNotFound
	}
	return &product, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, url string, out any) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.CatalogErrorsTotal.WithLabelValues(endpoint).Inc()
		c.log.Warn().Err(err).Str("url", url).Msg("catalog request failed")
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	metrics.CatalogRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		metrics.CatalogErrorsTotal.WithLabelValues(endpoint).Inc()
		c.log.Warn().Int("status", resp.StatusCode).Str("url", url).Msg("catalog returned non-200")
		return fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.CatalogErrorsTotal.WithLabelValues(endpoint).Inc()
		return fmt.Errorf("%w: decode: %v", domain.ErrCatalogUnavailable, err)
	}
	return nil
}
