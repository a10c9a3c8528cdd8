package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/minikart/storefront/internal/api"
	"github.com/minikart/storefront/internal/core/domain"
	"github.com/minikart/storefront/internal/core/ports"
	"github.com/minikart/storefront/internal/core/service"
	"github.com/minikart/storefront/internal/infrastructure/catalog"
	"github.com/minikart/storefront/internal/infrastructure/db/jsonfile"
	"github.com/minikart/storefront/internal/infrastructure/db/mongo"
	"github.com/minikart/storefront/internal/infrastructure/db/redis"
	"github.com/minikart/storefront/internal/infrastructure/exchange"
	"github.com/minikart/storefront/internal/infrastructure/memstore"
	"github.com/minikart/storefront/internal/pkg/config"
	"github.com/minikart/storefront/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx := context.Background()

	// --- User store ---
	var users ports.UserRepository
	var mongoDB *gomongo.Database
	switch cfg.UserStore {
	case "mongo":
		client, db, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() { _ = client.Disconnect(ctx) }()

		repo := mongo.NewUserRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure mongodb indexes")
		}
		users = repo
		mongoDB = db
	default:
		repo, err := jsonfile.NewUserRepository(cfg.UsersFile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open user store")
		}
		users = repo
	}

	// --- Cart store ---
	var carts ports.CartRepository
	var rdb *goredis.Client
	switch cfg.CartBackend {
	case "redis":
		client, err := redis.Connect(ctx, redis.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer func() { _ = client.Close() }()

		carts = redis.NewCartRepository(client)
		rdb = client
	default:
		carts = memstore.NewCartRepository()
	}

	// --- Upstream clients ---
	products := catalog.NewClient(cfg.Catalog.BaseURL, log)
	rates := exchange.NewClient(cfg.Exchange.URL, cfg.Exchange.CacheTTL, log)

	// --- Services ---
	authService := service.NewAuthService(users, cfg.JWTSecret, time.Hour)
	cartService := service.NewCartService(carts, products, rates, domain.DefaultDiscountTable(), log)

	e := api.NewRouter(api.Dependencies{
		Auth:    authService,
		Carts:   cartService,
		Catalog: products,
		Mongo:   mongoDB,
		Redis:   rdb,
		Logger:  log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().
		Str("port", cfg.Port).
		Str("user_store", cfg.UserStore).
		Str("cart_backend", cfg.CartBackend).
		Msg("storefront api started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
