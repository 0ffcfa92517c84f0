package repository

import (
	"context"
	"errors"

	"dexinfo.com/internal/domain/entity"
	"dexinfo.com/internal/domain/port"
	"dexinfo.com/internal/infrastructure/metrics"
)

// InstrumentedCache records lookup results of the wrapped cache
type InstrumentedCache struct {
	next    port.TransactionCache
	metrics *metrics.Metrics
}

// NewInstrumentedCache wraps next with lookup metrics
func NewInstrumentedCache(next port.TransactionCache, m *metrics.Metrics) port.TransactionCache {
	return &InstrumentedCache{next: next, metrics: m}
}

func (c *InstrumentedCache) Get(ctx context.Context, chainID entity.ChainID, address string) ([]entity.Transaction, error) {
	txs, err := c.next.Get(ctx, chainID, address)
	switch {
	case err == nil:
		c.metrics.ObserveCacheLookup("hit")
	case errors.Is(err, entity.ErrCacheMiss):
		c.metrics.ObserveCacheLookup("miss")
	default:
		c.metrics.ObserveCacheLookup("error")
	}
	return txs, err
}

func (c *InstrumentedCache) Set(ctx context.Context, chainID entity.ChainID, address string, txs []entity.Transaction) error {
	return c.next.Set(ctx, chainID, address, txs)
}
