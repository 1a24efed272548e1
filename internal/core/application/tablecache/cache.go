// Package tablecache decorates the table repository with an in-memory
// snapshot of the floor plan, so listings can be answered without a round
// trip to the store on every poll. Reads that need a fresh revision token
// and status lookups pass through; every write through the decorator drops
// the snapshot, and a TTL bounds staleness from writers outside this
// process.
package tablecache

import (
	"context"
	"sync"
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/table"
	"restopos/internal/core/ports"
)

// DefaultTTL bounds how stale a snapshot may get before GetAll falls back
// to the repository even without an explicit invalidation.
const DefaultTTL = 30 * time.Second

type Cache struct {
	repo ports.TableRepository
	ttl  time.Duration

	mu        sync.RWMutex
	tables    []*table.Table
	loadedAt  time.Time
	populated bool
}

func New(repo ports.TableRepository, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{repo: repo, ttl: ttl}
}

// GetAll returns the cached snapshot, refreshing it first when the cache
// is empty, invalidated or older than the TTL.
func (c *Cache) GetAll(ctx context.Context) ([]*table.Table, error) {
	c.mu.RLock()
	if c.populated && time.Since(c.loadedAt) < c.ttl {
		tables := c.tables
		c.mu.RUnlock()
		return tables, nil
	}
	c.mu.RUnlock()

	return c.Refresh(ctx)
}

// GetByID passes through; callers mutate the result and need the current
// revision token.
func (c *Cache) GetByID(ctx context.Context, id kernel.DocID) (*table.Table, error) {
	return c.repo.GetByID(ctx, id)
}

// GetByStatus passes through; status listings must not lag behind writes.
func (c *Cache) GetByStatus(ctx context.Context, status table.Status) ([]*table.Table, error) {
	return c.repo.GetByStatus(ctx, status)
}

// Save writes through and drops the snapshot.
func (c *Cache) Save(ctx context.Context, tbl *table.Table) error {
	if err := c.repo.Save(ctx, tbl); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

// Delete writes through and drops the snapshot.
func (c *Cache) Delete(ctx context.Context, id kernel.DocID, rev string) error {
	if err := c.repo.Delete(ctx, id, rev); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

// Refresh reloads the snapshot from the repository unconditionally.
func (c *Cache) Refresh(ctx context.Context) ([]*table.Table, error) {
	tables, err := c.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.tables = tables
	c.loadedAt = time.Now()
	c.populated = true
	c.mu.Unlock()

	return tables, nil
}

// Invalidate drops the snapshot; the next GetAll reloads from the
// repository.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.populated = false
	c.tables = nil
	c.mu.Unlock()
}

var _ ports.TableRepository = (*Cache)(nil)
