package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/dailyledger/backend/internal/domain/ledger"
)

// RedisSnapshotCache implements ledger.SnapshotCache using Redis.
// Suitable for deployments where multiple instances share the cache.
type RedisSnapshotCache struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisSnapshotCache creates a new Redis-backed snapshot cache
func NewRedisSnapshotCache(cfg RedisConfig) (*RedisSnapshotCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisSnapshotCache{
		client:    client,
		keyPrefix: "stock:snapshot:",
	}, nil
}

// NewRedisSnapshotCacheWithClient creates a cache with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRedisSnapshotCacheWithClient(client *redis.Client, keyPrefix string) *RedisSnapshotCache {
	if keyPrefix == "" {
		keyPrefix = "stock:snapshot:"
	}
	return &RedisSnapshotCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

type snapshotPayload struct {
	ItemID   int64  `json:"itemId"`
	Quantity string `json:"quantity"`
}

func (c *RedisSnapshotCache) versionKey(categoryID int64) string {
	return fmt.Sprintf("%sver:%d", c.keyPrefix, categoryID)
}

// snapshotKey folds the category's version counter into the key, so
// Invalidate is a single INCR and stale entries age out via their TTL.
func (c *RedisSnapshotCache) snapshotKey(ctx context.Context, categoryID int64, day time.Time) (string, error) {
	version, err := c.client.Get(ctx, c.versionKey(categoryID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	return fmt.Sprintf("%s%d:%d:%s", c.keyPrefix, categoryID, version, ledger.FormatDate(day)), nil
}

// Get returns the cached snapshot and whether it was present
func (c *RedisSnapshotCache) Get(ctx context.Context, categoryID int64, day time.Time) ([]ledger.StockQuantity, bool, error) {
	key, err := c.snapshotKey(ctx, categoryID, day)
	if err != nil {
		return nil, false, fmt.Errorf("failed to resolve snapshot key: %w", err)
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var payload []snapshotPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	quantities := make([]ledger.StockQuantity, 0, len(payload))
	for _, p := range payload {
		q, err := decimal.NewFromString(p.Quantity)
		if err != nil {
			return nil, false, fmt.Errorf("failed to decode snapshot quantity: %w", err)
		}
		quantities = append(quantities, ledger.StockQuantity{ItemID: p.ItemID, Quantity: q})
	}
	return quantities, true, nil
}

// Set stores a snapshot with a TTL
func (c *RedisSnapshotCache) Set(ctx context.Context, categoryID int64, day time.Time, quantities []ledger.StockQuantity, ttl time.Duration) error {
	key, err := c.snapshotKey(ctx, categoryID, day)
	if err != nil {
		return fmt.Errorf("failed to resolve snapshot key: %w", err)
	}

	payload := make([]snapshotPayload, 0, len(quantities))
	for _, q := range quantities {
		payload = append(payload, snapshotPayload{ItemID: q.ItemID, Quantity: q.Quantity.String()})
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Invalidate drops every cached snapshot of the category
func (c *RedisSnapshotCache) Invalidate(ctx context.Context, categoryID int64) error {
	if err := c.client.Incr(ctx, c.versionKey(categoryID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate snapshots: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisSnapshotCache) Close() error {
	return c.client.Close()
}

// GetClient returns the underlying Redis client (for testing/monitoring)
func (c *RedisSnapshotCache) GetClient() *redis.Client {
	return c.client
}

var _ ledger.SnapshotCache = (*RedisSnapshotCache)(nil)
