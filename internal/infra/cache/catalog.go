package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"hotel-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// CatalogCache is a read-through Redis cache in front of the room type
// read store. Room types are fixed after seeding so entries only expire
// by TTL. Redis failures fall through to the underlying store.
type CatalogCache struct {
	client Client
	next   queries.RoomTypeReadStore
	ttl    time.Duration
	prefix string
}

func NewCatalogCache(client Client, next queries.RoomTypeReadStore, ttl time.Duration, prefix string) *CatalogCache {
	return &CatalogCache{
		client: client,
		next:   next,
		ttl:    ttl,
		prefix: prefix,
	}
}

func (c *CatalogCache) FindAll(ctx context.Context) ([]*queries.RoomTypeView, error) {
	key := c.prefix + ":roomtypes:all"

	var cached []*queries.RoomTypeView
	if c.get(ctx, key, &cached) {
		return cached, nil
	}

	rows, err := c.next.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	// an empty catalog means seeding has not happened yet
	if len(rows) > 0 {
		c.set(ctx, key, rows)
	}
	return rows, nil
}

func (c *CatalogCache) FindByID(ctx context.Context, id string) (*queries.RoomTypeView, error) {
	key := c.prefix + ":roomtypes:" + id

	var cached queries.RoomTypeView
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}

	rt, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, rt)
	return rt, nil
}

func (c *CatalogCache) get(ctx context.Context, key string, dst any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("catalog cache read failed", "key", key, "error", err.Error())
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		slog.Warn("catalog cache entry corrupt", "key", key, "error", err.Error())
		return false
	}
	return true
}

func (c *CatalogCache) set(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.Warn("catalog cache write failed", "key", key, "error", err.Error())
	}
}
