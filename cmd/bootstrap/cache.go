package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra/cache"
	"hotel-booking/internal/infra/readstore"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCatalogReadStore,
	),
)

// NewCatalogReadStore puts the Redis read-through cache in front of the
// Postgres catalog when REDIS_ADDR is set.
func NewCatalogReadStore(lc fx.Lifecycle, cfg config.Config, pg *readstore.RoomTypeReadStore) (queries.RoomTypeReadStore, error) {
	if cfg.Redis.Addr == "" {
		slog.Info("catalog cache disabled")
		return pg, nil
	}

	client, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	slog.Info("catalog cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
	return cache.NewCatalogCache(client, pg, cfg.Redis.TTL, cfg.Redis.Prefix), nil
}
