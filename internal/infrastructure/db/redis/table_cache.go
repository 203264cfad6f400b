package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/zanzibarboats/booking-system/internal/api/metrics"
	"github.com/zanzibarboats/booking-system/internal/core/ports"
)

// TableCache is the Redis-backed variant of the read cache, for deployments
// running more than one API instance. Entries expire after the same TTL as
// the in-process cache; Invalidate is a DEL, so here write-path invalidation
// reaches every instance. Redis faults degrade to a plain store read — the
// cache never turns a miss into an error.
type TableCache struct {
	client *redis.Client
	store  ports.TableStore
	ttl    time.Duration
	log    zerolog.Logger
}

func NewTableCache(client *redis.Client, store ports.TableStore, ttl time.Duration, log zerolog.Logger) *TableCache {
	return &TableCache{client: client, store: store, ttl: ttl, log: log}
}

func (c *TableCache) GetTable(ctx context.Context, name string) ([]ports.Row, error) {
	payload, err := c.client.Get(ctx, c.key(name)).Bytes()
	if err == nil {
		var rows []ports.Row
		if jsonErr := json.Unmarshal(payload, &rows); jsonErr == nil {
			metrics.CacheLookupsTotal.WithLabelValues(name, "hit").Inc()
			return rows, nil
		}
		c.log.Warn().Str("table", name).Msg("corrupt cache payload, re-reading table")
	} else if err != redis.Nil {
		c.log.Warn().Err(err).Str("table", name).Msg("cache read failed, falling back to store")
	}

	metrics.CacheLookupsTotal.WithLabelValues(name, "miss").Inc()
	rows, err := c.store.ReadTable(ctx, name)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(rows); err == nil {
		if err := c.client.Set(ctx, c.key(name), payload, c.ttl).Err(); err != nil {
			c.log.Warn().Err(err).Str("table", name).Msg("cache write failed")
		}
	}
	return rows, nil
}

func (c *TableCache) Invalidate(ctx context.Context, name string) {
	if err := c.client.Del(ctx, c.key(name)).Err(); err != nil {
		c.log.Warn().Err(err).Str("table", name).Msg("cache invalidation failed")
	}
}

func (c *TableCache) key(name string) string {
	return "table:" + name
}
