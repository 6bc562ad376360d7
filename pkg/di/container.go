package di

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/goliatone/go-product-catalog/bunstore"
	"github.com/goliatone/go-product-catalog/cache"
	"github.com/goliatone/go-product-catalog/catalog"
)

// Config wires the catalog service from typed settings. ConfigFromEnv binds
// the same fields to environment variables for service deployments.
type Config struct {
	// DatabaseDriver selects the store backend: "sqlite3" or "postgres".
	DatabaseDriver string `env:"CATALOG_DB_DRIVER" envDefault:"sqlite3"`
	DatabaseDSN    string `env:"CATALOG_DB_DSN" envDefault:"file:catalog?mode=memory&cache=shared"`

	ItemTTL    time.Duration `env:"CATALOG_ITEM_TTL" envDefault:"5m"`
	ListingTTL time.Duration `env:"CATALOG_LISTING_TTL" envDefault:"1m"`

	CacheCapacity           int           `env:"CATALOG_CACHE_CAPACITY" envDefault:"10000"`
	CacheShards             int           `env:"CATALOG_CACHE_SHARDS" envDefault:"256"`
	CacheEvictionPercentage int           `env:"CATALOG_CACHE_EVICTION_PCT" envDefault:"10"`
	CacheEvictionInterval   time.Duration `env:"CATALOG_CACHE_EVICTION_INTERVAL" envDefault:"0"`
}

// ConfigFromEnv parses the configuration from process environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) cacheConfig() cache.Config {
	return cache.Config{
		Capacity:           c.CacheCapacity,
		NumShards:          c.CacheShards,
		DefaultTTL:         c.ItemTTL,
		EvictionPercentage: c.CacheEvictionPercentage,
		EvictionInterval:   c.CacheEvictionInterval,
	}
}

// Container provides dependency injection for the catalog components. It
// manages singleton instances of the database handle, cache and service.
type Container struct {
	cfg     Config
	db      *bun.DB
	cache   cache.Cache
	store   *bunstore.Store
	service *catalog.Service
	logger  *zap.Logger
}

// New creates a new DI container with the provided configuration, wiring the
// store, cache and catalog service together.
func New(cfg Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cacheSvc, err := cache.New(cfg.cacheConfig())
	if err != nil {
		return nil, err
	}

	var db *bun.DB
	switch cfg.DatabaseDriver {
	case "postgres":
		db, err = bunstore.OpenPostgres(cfg.DatabaseDSN)
	default:
		db, err = bunstore.OpenSQLite(cfg.DatabaseDSN)
	}
	if err != nil {
		return nil, err
	}

	store := bunstore.New(db)
	service := catalog.New(store, cacheSvc,
		catalog.WithLogger(logger),
		catalog.WithItemTTL(cfg.ItemTTL),
		catalog.WithListingTTL(cfg.ListingTTL),
	)

	return &Container{
		cfg:     cfg,
		db:      db,
		cache:   cacheSvc,
		store:   store,
		service: service,
		logger:  logger,
	}, nil
}

// NewFromEnv creates a container from environment configuration.
func NewFromEnv(logger *zap.Logger) (*Container, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return New(cfg, logger)
}

// Service returns the singleton catalog service instance.
func (c *Container) Service() *catalog.Service { return c.service }

// Store returns the bun-backed store, e.g. to create schema in tests and demos.
func (c *Container) Store() *bunstore.Store { return c.store }

// Cache returns the shared cache instance.
func (c *Container) Cache() cache.Cache { return c.cache }

// DB returns the underlying database handle.
func (c *Container) DB() *bun.DB { return c.db }

// Config returns a copy of the configuration used by this container.
func (c *Container) Config() Config { return c.cfg }

// Close releases the database connection.
func (c *Container) Close() error { return c.db.Close() }
