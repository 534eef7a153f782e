package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"leaguedash/internal/api"
	"leaguedash/internal/factory"
	catalogsvc "leaguedash/internal/services/catalog"
	redisstorage "leaguedash/internal/storage/redis"
)

type envConfig struct {
	Port           int           `env:"PORT" envDefault:"8080"`
	StorageType    string        `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL       string        `env:"REDIS_URL"`
	CatalogBaseURL string        `env:"CATALOG_BASE_URL,notEmpty"`
	LeagueBaseURL  string        `env:"LEAGUE_BASE_URL"`
	CacheMaxAge    time.Duration `env:"CACHE_MAX_AGE" envDefault:"24h"`
}

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load .env if present, then parse configuration from environment
	_ = godotenv.Load()

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	catalogCfg := catalogsvc.DefaultConfig()
	catalogCfg.MaxAge = ec.CacheMaxAge

	cfg := factory.Config{
		CatalogBaseURL: ec.CatalogBaseURL,
		LeagueBaseURL:  ec.LeagueBaseURL,
		CatalogConfig:  catalogCfg,
		Logger:         logger,
		StorageType:    ec.StorageType,
	}

	if cfg.StorageType == factory.StorageTypeRedis {
		if ec.RedisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = ec.RedisURL
		cfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		StandingsService: app.StandingsService,
		CatalogService:   app.CatalogService,
		OwnershipService: app.OwnershipService,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Port = ec.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
