package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/creatorhub-backend/internal/adapter/cache"
	"github.com/heartmarshall/creatorhub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/creatorhub-backend/internal/app"
	"github.com/heartmarshall/creatorhub-backend/internal/config"
	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

type invalidator interface {
	Invalidate(ctx context.Context, resource domain.ResourceType) error
}

// env is what the data commands share: config, a pool and the snapshot
// cache they must invalidate after writes.
type env struct {
	cfg    *config.Config
	log    *slog.Logger
	pool   *pgxpool.Pool
	cache  invalidator
	closer func() error
}

func openEnv(ctx context.Context, configPath string) (*env, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, log: logger, pool: pool, cache: cache.Nop{}, closer: func() error { return nil }}
	if cfg.Cache.Enabled {
		c, err := cache.NewRedis(ctx, cfg.Cache)
		if err != nil {
			logger.Warn("snapshot cache unavailable, skipping invalidation", slog.String("error", err.Error()))
		} else {
			e.cache = c
			e.closer = c.Close
		}
	}
	return e, nil
}

func (e *env) Close() {
	_ = e.closer()
	e.pool.Close()
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
