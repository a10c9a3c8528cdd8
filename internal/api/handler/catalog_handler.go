package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/minikart/storefront/internal/core/domain"
	"github.com/minikart/storefront/internal/core/ports"
)

// CatalogHandler proxies the external product catalog, applying the
// category and price-range filters the storefront's listing pages use.
type CatalogHandler struct {
	catalog ports.ProductCatalog
}

func NewCatalogHandler(catalog ports.ProductCatalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List handles GET /products.
//
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Param        category   query     string  false  "Category filter (case-insensitive)"
// @Param        min_price  query     number  false  "Minimum price in USD"
// @Param        max_price  query     number  false  "Maximum price in USD"
// @Param        limit      query     int     false  "Maximum number of products returned"
// @Success      200        {array}   domain.Product
// @Failure      502        {object}  errorResponse
// @Router       /products [get]
func (h *CatalogHandler) List(c echo.Context) error {
	filter := ports.ProductFilter{
		Category: c.QueryParam("category"),
		MinPrice: parseFloatParam(c, "min_price"),
		MaxPrice: parseFloatParam(c, "max_price"),
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	products, err := h.catalog.Products(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /products/:id.
//
// @Summary      Get a product by id
// @Tags         catalog
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /products/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return domain.ErrProductNotFound
	}

	product, err := h.catalog.Product(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

func parseFloatParam(c echo.Context, name string) float64 {
	v, err := strconv.ParseFloat(c.QueryParam(name), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
