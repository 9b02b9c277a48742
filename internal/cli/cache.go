package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/cmdform/internal/config"
	"github.com/aretw0/cmdform/pkg/adapters/memory"
	"github.com/aretw0/cmdform/pkg/adapters/redis"
	"github.com/aretw0/cmdform/pkg/ports"
)

// NewPageCache builds the page cache selected by cfg. A nil cache means
// caching is off. The returned close function is never nil.
func NewPageCache(ctx context.Context, cfg config.Cache, logger *slog.Logger) (ports.PageCache, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case "", config.CacheNone:
		return nil, noop, nil

	case config.CacheMemory:
		logger.Info("Page cache enabled", "backend", cfg.Backend, "ttl", cfg.TTL)
		return memory.NewCache(memory.WithTTL(cfg.TTL)), noop, nil

	case config.CacheRedis:
		opts := []redis.Option{redis.WithTTL(cfg.TTL)}
		if cfg.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Prefix))
		}
		cache := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, opts...)
		if err := cache.Ping(ctx); err != nil {
			_ = cache.Close()
			return nil, noop, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		logger.Info("Page cache enabled", "backend", cfg.Backend, "addr", cfg.RedisAddr, "ttl", cfg.TTL)
		return cache, cache.Close, nil
	}

	return nil, noop, fmt.Errorf("unknown cache backend %q", cfg.Backend)
}
