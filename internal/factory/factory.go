// Package factory wires the application's storage, clients and
// services together.
package factory

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"leaguedash/internal/clients/catalog"
	"leaguedash/internal/clients/sleeper"
	"leaguedash/internal/dependencies/clock"
	catalogsvc "leaguedash/internal/services/catalog"
	"leaguedash/internal/services/ownership"
	"leaguedash/internal/services/standings"
	"leaguedash/internal/storage"
	"leaguedash/internal/storage/memory"
	redisstorage "leaguedash/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	CatalogService   *catalogsvc.Service
	OwnershipService *ownership.Service
	StandingsService *standings.Service
}

// Config holds configuration for the application factory
type Config struct {
	// CatalogBaseURL is the base URL of the player/valuation catalog
	// endpoint (required)
	CatalogBaseURL string
	// LeagueBaseURL is the base URL of the league roster/user endpoint
	// (optional; defaults to the public API)
	LeagueBaseURL string
	// CatalogConfig holds ingestion and freshness settings (optional)
	// If zero value, defaults to catalogsvc.DefaultConfig()
	CatalogConfig catalogsvc.Config
	// HTTPClient is shared by the upstream clients (optional)
	HTTPClient *http.Client
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	if cfg.CatalogBaseURL == "" {
		return nil, errors.New("CatalogBaseURL is required")
	}

	catalogClient := catalog.NewClient(catalog.Config{
		BaseURL:    cfg.CatalogBaseURL,
		HTTPClient: cfg.HTTPClient,
		Logger:     logger,
	})
	leagueClient := sleeper.NewClient(sleeper.Config{
		BaseURL:    cfg.LeagueBaseURL,
		HTTPClient: cfg.HTTPClient,
	})

	catalogCfg := cfg.CatalogConfig
	if catalogCfg.MaxAge == 0 {
		catalogCfg = catalogsvc.DefaultConfig()
	}

	return newWithDependencies(store, catalogClient, leagueClient, clock.New(), catalogCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	fetcher catalogsvc.PlayerFetcher,
	league *sleeper.Client,
	clk clock.Clock,
	catalogCfg catalogsvc.Config,
	logger *slog.Logger,
) *App {
	catalogService := catalogsvc.New(store, fetcher, clk, catalogCfg, logger)
	ownershipService := ownership.New(store, league, logger)
	standingsService := standings.New(catalogService, league, logger)

	return &App{
		Storage:          store,
		Clock:            clk,
		CatalogService:   catalogService,
		OwnershipService: ownershipService,
		StandingsService: standingsService,
	}
}
