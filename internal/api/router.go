package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/minikart/storefront/internal/api/handler"
	"github.com/minikart/storefront/internal/api/middleware"
	"github.com/minikart/storefront/internal/core/ports"
)

// Dependencies carries everything the router needs. Mongo and Redis are nil
// unless the corresponding backend is configured; they only feed the
// readiness probe.
type Dependencies struct {
	Auth    ports.AuthService
	Carts   ports.CartService
	Catalog ports.ProductCatalog
	Mongo   *mongo.Database
	Redis   *redis.Client
	Logger  zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Auth routes (original storefront wire contract) ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/profile", authHandler.Profile)

	// --- Catalog proxy (public, like the storefront's listing pages) ---
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	e.GET("/products", catalogHandler.List)
	e.GET("/products/:id", catalogHandler.Get)

	// --- Cart routes (authenticated) ---
	cartHandler := handler.NewCartHandler(deps.Carts)
	cart := e.Group("/cart", middleware.Auth(deps.Auth))
	cart.GET("", cartHandler.View)
	cart.DELETE("", cartHandler.Clear)
	cart.POST("/items", cartHandler.AddItem)
	cart.PUT("/items/:product_id", cartHandler.UpdateQuantity)
	cart.DELETE("/items/:product_id", cartHandler.RemoveItem)
	cart.POST("/discount", cartHandler.ApplyDiscount)
	cart.DELETE("/discount", cartHandler.RemoveDiscount)
	cart.POST("/checkout", cartHandler.Checkout)

	// --- Ops surface ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
