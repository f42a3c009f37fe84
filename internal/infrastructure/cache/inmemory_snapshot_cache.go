package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dailyledger/backend/internal/domain/ledger"
)

type snapshotEntry struct {
	quantities []ledger.StockQuantity
	expiresAt  time.Time
}

// InMemorySnapshotCache implements ledger.SnapshotCache using an in-memory map.
// Suitable for single-instance deployments and testing.
type InMemorySnapshotCache struct {
	mu        sync.RWMutex
	entries   map[string]snapshotEntry
	versions  map[int64]uint64
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemorySnapshotCache creates the cache and starts a background
// goroutine that evicts expired entries.
func NewInMemorySnapshotCache() *InMemorySnapshotCache {
	c := &InMemorySnapshotCache{
		entries:  make(map[string]snapshotEntry),
		versions: make(map[int64]uint64),
		stopChan: make(chan struct{}),
	}

	c.wg.Add(1)
	go c.cleanupLoop()

	return c
}

// key folds the category's version counter in, so Invalidate only has to
// bump the counter instead of enumerating keys.
func (c *InMemorySnapshotCache) key(categoryID int64, day time.Time) string {
	return fmt.Sprintf("%d:%d:%s", categoryID, c.versions[categoryID], ledger.FormatDate(day))
}

// Get returns the cached snapshot and whether it was present
func (c *InMemorySnapshotCache) Get(ctx context.Context, categoryID int64, day time.Time) ([]ledger.StockQuantity, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[c.key(categoryID, day)]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false, nil
	}

	out := make([]ledger.StockQuantity, len(e.quantities))
	copy(out, e.quantities)
	return out, true, nil
}

// Set stores a snapshot with a TTL
func (c *InMemorySnapshotCache) Set(ctx context.Context, categoryID int64, day time.Time, quantities []ledger.StockQuantity, ttl time.Duration) error {
	stored := make([]ledger.StockQuantity, len(quantities))
	copy(stored, quantities)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[c.key(categoryID, day)] = snapshotEntry{
		quantities: stored,
		expiresAt:  time.Now().Add(ttl),
	}
	return nil
}

// Invalidate drops every cached snapshot of the category
func (c *InMemorySnapshotCache) Invalidate(ctx context.Context, categoryID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.versions[categoryID]++
	return nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (c *InMemorySnapshotCache) Close() error {
	c.closeOnce.Do(func() {
		close(c.stopChan)
		c.wg.Wait()
	})
	return nil
}

func (c *InMemorySnapshotCache) cleanupLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *InMemorySnapshotCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// Size returns the number of cached snapshots (for testing/monitoring)
func (c *InMemorySnapshotCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var _ ledger.SnapshotCache = (*InMemorySnapshotCache)(nil)
