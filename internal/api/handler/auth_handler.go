package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minikart/storefront/internal/api/middleware"
	"github.com/minikart/storefront/internal/core/domain"
	"github.com/minikart/storefront/internal/core/ports"
)

// AuthHandler serves the storefront's original auth surface: POST /register,
// POST /login, GET /profile. Error payloads keep the {"msg": ...} envelope
// the browser client was written against, so auth errors are mapped here
// rather than in the central error handler.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type profileResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Register creates a new account and returns a fresh token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Name, email, and password"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"msg": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"msg": err.Error()})
	}

	token, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			return c.JSON(http.StatusBadRequest, map[string]string{"msg": "User already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"msg": "registration failed"})
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Login authenticates a user and returns a fresh token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"msg": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"msg": err.Error()})
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password answer identically.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, map[string]string{"msg": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"msg": "login failed"})
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Profile returns the authenticated user minus the password hash.
//
// @Summary      Get the authenticated user's profile
// @Tags         auth
// @Produce      json
// @Param        x-auth-token  header    string  true  "Bearer credential"
// @Success      200           {object}  profileResponse
// @Failure      401           {object}  map[string]string
// @Failure      404           {object}  map[string]string
// @Router       /profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	token := c.Request().Header.Get(middleware.HeaderAuthToken)
	if token == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"msg": domain.ErrMissingToken.Error()})
	}

	user, err := h.authService.Profile(c.Request().Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenExpired):
			return c.JSON(http.StatusUnauthorized, map[string]string{"msg": domain.ErrTokenExpired.Error()})
		case errors.Is(err, domain.ErrInvalidToken), errors.Is(err, domain.ErrMissingToken):
			return c.JSON(http.StatusUnauthorized, map[string]string{"msg": domain.ErrInvalidToken.Error()})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"msg": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"msg": "profile lookup failed"})
	}

	return c.JSON(http.StatusOK, profileResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}
