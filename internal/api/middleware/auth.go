package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minikart/storefront/internal/core/domain"
	"github.com/minikart/storefront/internal/core/ports"
)

// HeaderAuthToken is the credential header used by the storefront client.
const HeaderAuthToken = "x-auth-token"

// Auth validates the x-auth-token bearer credential and injects the user id
// into context under "user_id". Auth failures use the {"msg": ...} envelope
// the storefront client expects.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(HeaderAuthToken)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"msg": domain.ErrMissingToken.Error()})
			}

			userID, err := verifier.Verify(c.Request().Context(), token)
			if err != nil {
				msg := domain.ErrInvalidToken.Error()
				if errors.Is(err, domain.ErrTokenExpired) {
					msg = domain.ErrTokenExpired.Error()
				}
				return c.JSON(http.StatusUnauthorized, map[string]string{"msg": msg})
			}

			c.Set("user_id", userID)
			return next(c)
		}
	}
}
