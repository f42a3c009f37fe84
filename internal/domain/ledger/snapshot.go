package ledger

import (
	"context"
	"time"
)

// SnapshotCache stores computed opening-stock snapshots keyed by category
// and day. A write to a category may change the snapshot of any later day,
// so invalidation happens per category rather than per day.
type SnapshotCache interface {
	// Get returns the cached snapshot and whether it was present.
	Get(ctx context.Context, categoryID int64, day time.Time) ([]StockQuantity, bool, error)

	// Set stores a snapshot with a TTL.
	Set(ctx context.Context, categoryID int64, day time.Time, quantities []StockQuantity, ttl time.Duration) error

	// Invalidate drops every cached snapshot of the category.
	Invalidate(ctx context.Context, categoryID int64) error

	Close() error
}
