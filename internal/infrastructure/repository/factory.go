package repository

import (
	"context"
	"fmt"
	"io"

	"dexinfo.com/internal/domain/port"
	"dexinfo.com/internal/infrastructure/config"
	"dexinfo.com/internal/infrastructure/logger"
	"dexinfo.com/internal/infrastructure/metrics"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewTransactionCache builds the configured cache backend, wrapped with metrics.
// The returned closer releases backend connections.
func NewTransactionCache(
	ctx context.Context,
	cfg *config.Config,
	m *metrics.Metrics,
	logger logger.Logger,
) (port.TransactionCache, io.Closer, error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendNone:
		return NewInstrumentedCache(NoopCache{}, m), nopCloser{}, nil
	case config.CacheBackendMemory:
		return NewInstrumentedCache(NewInMemoryCache(cfg.Cache.Size, cfg.Cache.TTL, logger), m), nopCloser{}, nil
	case config.CacheBackendRedis:
		redisCache := NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Cache.TTL)
		if err := redisCache.Ping(ctx); err != nil {
			_ = redisCache.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		return NewInstrumentedCache(redisCache, m), redisCache, nil
	default:
		return nil, nil, fmt.Errorf("unsupported cache backend %q", cfg.Cache.Backend)
	}
}
