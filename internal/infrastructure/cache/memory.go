// Package cache provides the in-process, time-boxed read cache over table
// reads. It is a derived, disposable view: never a source of truth, and a
// miss or expiry always falls back to the store, never to an error.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/zanzibarboats/booking-system/internal/api/metrics"
	"github.com/zanzibarboats/booking-system/internal/core/ports"
)

// DefaultTTL bounds the staleness window seen by readers that did not write.
const DefaultTTL = 60 * time.Second

type entry struct {
	rows      []ports.Row
	expiresAt time.Time
}

// TableCache memoizes TableStore reads per table name for a fixed TTL.
// Same-process writers invalidate; other processes only see the TTL bound.
type TableCache struct {
	store ports.TableStore
	ttl   time.Duration
	now   func() time.Time

	mu      sync.Mutex
	entries map[string]entry
}

func NewTableCache(store ports.TableStore, ttl time.Duration) *TableCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TableCache{
		store:   store,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// GetTable returns the cached rows for name, re-reading from the store when
// the entry is absent or expired.
func (c *TableCache) GetTable(ctx context.Context, name string) ([]ports.Row, error) {
	c.mu.Lock()
	e, ok := c.entries[name]
	if ok && c.now().Before(e.expiresAt) {
		rows := e.rows
		c.mu.Unlock()
		metrics.CacheLookupsTotal.WithLabelValues(name, "hit").Inc()
		return rows, nil
	}
	c.mu.Unlock()

	metrics.CacheLookupsTotal.WithLabelValues(name, "miss").Inc()
	rows, err := c.store.ReadTable(ctx, name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[name] = entry{rows: rows, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return rows, nil
}

// Invalidate drops the entry so the next GetTable re-reads from the store.
func (c *TableCache) Invalidate(_ context.Context, name string) {
	c.mu.Lock()
	delete(c.entries, name)
	c.mu.Unlock()
}
