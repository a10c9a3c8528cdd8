package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/minikart/storefront/internal/core/domain"
	"github.com/minikart/storefront/internal/core/ports"
)

// CartHandler handles HTTP requests for the authenticated user's cart.
// Domain errors propagate to the central error handler.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// View handles GET /cart.
//
// @Summary      Get the priced cart
// @Tags         cart
// @Produce      json
// @Security     AuthToken
// @Success      200  {object}  cartResponse
// @Failure      401  {object}  map[string]string
// @Router       /cart [get]
func (h *CartHandler) View(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	view, err := h.service.View(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// AddItem handles POST /cart/items.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     AuthToken
// @Param        body  body      addItemRequest  true  "Product and quantity"
// @Success      200   {object}  cartResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.AddItem(c.Request().Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// UpdateQuantity handles PUT /cart/items/:product_id. A quantity <= 0
// removes the line.
//
// @Summary      Set a cart line's quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     AuthToken
// @Param        product_id  path      int                    true  "Product id"
// @Param        body        body      updateQuantityRequest  true  "New quantity"
// @Success      200         {object}  cartResponse
// @Failure      404         {object}  errorResponse
// @Router       /cart/items/{product_id} [put]
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	productID, err := parseProductID(c)
	if err != nil {
		return err
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	view, err := h.service.UpdateQuantity(c.Request().Context(), userID, productID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// RemoveItem handles DELETE /cart/items/:product_id.
//
// @Summary      Remove a line from the cart
// @Tags         cart
// @Produce      json
// @Security     AuthToken
// @Param        product_id  path      int  true  "Product id"
// @Success      200         {object}  cartResponse
// @Failure      404         {object}  errorResponse
// @Router       /cart/items/{product_id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	productID, err := parseProductID(c)
	if err != nil {
		return err
	}

	view, err := h.service.RemoveItem(c.Request().Context(), userID, productID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// Clear handles DELETE /cart.
//
// @Summary      Empty the cart
// @Tags         cart
// @Security     AuthToken
// @Success      204  "cart cleared"
// @Router       /cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Clear(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ApplyDiscount handles POST /cart/discount. A valid code below its minimum
// answers 422 with the threshold in the message.
//
// @Summary      Apply a discount code
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     AuthToken
// @Param        body  body      applyDiscountRequest  true  "Discount code"
// @Success      200   {object}  cartResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /cart/discount [post]
func (h *CartHandler) ApplyDiscount(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req applyDiscountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.ApplyDiscount(c.Request().Context(), userID, req.Code)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// RemoveDiscount handles DELETE /cart/discount.
//
// @Summary      Remove the applied discount
// @Tags         cart
// @Produce      json
// @Security     AuthToken
// @Success      200  {object}  cartResponse
// @Router       /cart/discount [delete]
func (h *CartHandler) RemoveDiscount(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	view, err := h.service.RemoveDiscount(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// Checkout handles POST /cart/checkout.
//
// @Summary      Check out the cart
// @Tags         cart
// @Produce      json
// @Security     AuthToken
// @Success      200  {object}  checkoutResponse
// @Router       /cart/checkout [post]
func (h *CartHandler) Checkout(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	result, err := h.service.Checkout(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, checkoutResponse{OrderSuccess: result.OrderSuccess})
}

func parseProductID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrProductNotFound
	}
	return id, nil
}
