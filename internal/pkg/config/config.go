package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// UserStore selects the user persistence backend: "file" or "mongo".
	UserStore string `env:"USER_STORE, default=file"`
	UsersFile string `env:"USERS_FILE, default=data/users.json"`

	// CartBackend selects the cart store: "memory" or "redis".
	CartBackend string `env:"CART_BACKEND, default=memory"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Catalog  CatalogConfig
	Exchange ExchangeConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type CatalogConfig struct {
	BaseURL string `env:"CATALOG_BASE_URL, default=https://fakestoreapi.com"`
}

type ExchangeConfig struct {
	URL string `env:"EXCHANGE_RATE_URL, default=https://api.exchangerate-api.com/v4/latest/USD"`
	// CacheTTL bounds how often the feed is hit; 0 fetches on every request.
	CacheTTL time.Duration `env:"EXCHANGE_CACHE_TTL, default=60s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
