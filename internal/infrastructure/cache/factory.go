package cache

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dailyledger/backend/internal/domain/ledger"
	"github.com/dailyledger/backend/internal/infrastructure/config"
)

// SnapshotCacheFactory creates snapshot caches based on configuration
type SnapshotCacheFactory struct {
	cacheConfig           config.CacheConfig
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// SnapshotCacheFactoryOption is a functional option for configuring the factory
type SnapshotCacheFactoryOption func(*SnapshotCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) SnapshotCacheFactoryOption {
	return func(f *SnapshotCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to the in-memory cache
// when Redis is unavailable. Default is true.
func WithInMemoryFallback(allow bool) SnapshotCacheFactoryOption {
	return func(f *SnapshotCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewSnapshotCacheFactory creates a new factory
func NewSnapshotCacheFactory(cacheCfg config.CacheConfig, redisCfg config.RedisConfig, opts ...SnapshotCacheFactoryOption) *SnapshotCacheFactory {
	f := &SnapshotCacheFactory{
		cacheConfig:           cacheCfg,
		redisConfig:           redisCfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateRedisCache creates a Redis-backed snapshot cache
func (f *SnapshotCacheFactory) CreateRedisCache() (ledger.SnapshotCache, error) {
	cache, err := NewRedisSnapshotCache(RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis snapshot cache: %w", err)
	}
	return cache, nil
}

// CreateInMemoryCache creates an in-memory snapshot cache.
// Suitable for single-instance deployments and testing.
func (f *SnapshotCacheFactory) CreateInMemoryCache() ledger.SnapshotCache {
	return NewInMemorySnapshotCache()
}

// CreateCache creates a snapshot cache for the configured backend. The
// redis backend falls back to in-memory when Redis is unreachable and
// AllowInMemoryFallback is true.
func (f *SnapshotCacheFactory) CreateCache() (ledger.SnapshotCache, error) {
	if f.cacheConfig.Backend == config.CacheBackendMemory {
		return f.CreateInMemoryCache(), nil
	}

	cache, err := f.CreateRedisCache()
	if err == nil {
		f.logger.Info("using Redis snapshot cache")
		return cache, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for snapshot cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory snapshot cache",
		zap.Error(err),
	)
	return f.CreateInMemoryCache(), nil
}
