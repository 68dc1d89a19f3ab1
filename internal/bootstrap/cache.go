package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/muhammad-hassn/portfolio/config"
	"github.com/muhammad-hassn/portfolio/internal/cache"
)

// OpenCache returns a Redis cache when an address is configured and an
// in-process cache otherwise. The returned func releases the backend.
func OpenCache(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (cache.Cache, func() error, error) {
	if cfg.Address == "" {
		log.Info().Msg("using in-memory cache")
		return cache.NewMemoryCache(), func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Info().Str("addr", cfg.Address).Msg("using redis cache")
	return cache.NewRedisCache(client), client.Close, nil
}
