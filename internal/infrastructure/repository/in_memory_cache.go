package repository

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"dexinfo.com/internal/domain/entity"
	"dexinfo.com/internal/domain/port"
	"dexinfo.com/internal/infrastructure/logger"
)

// InMemoryCache implements the TransactionCache port with a size bounded, expiring LRU
type InMemoryCache struct {
	lru    *expirable.LRU[string, []entity.Transaction]
	logger logger.Logger
}

// NewInMemoryCache creates a new in-memory transaction cache
func NewInMemoryCache(size int, ttl time.Duration, logger logger.Logger) port.TransactionCache {
	return &InMemoryCache{
		lru:    expirable.NewLRU[string, []entity.Transaction](size, nil, ttl),
		logger: logger,
	}
}

// Get returns the cached transactions of a token
func (c *InMemoryCache) Get(_ context.Context, chainID entity.ChainID, address string) ([]entity.Transaction, error) {
	txs, ok := c.lru.Get(cacheKey(chainID, address))
	if !ok {
		return nil, entity.ErrCacheMiss
	}
	return copyTransactions(txs), nil
}

// Set stores the transactions of a token until the TTL elapses
func (c *InMemoryCache) Set(ctx context.Context, chainID entity.ChainID, address string, txs []entity.Transaction) error {
	if evicted := c.lru.Add(cacheKey(chainID, address), copyTransactions(txs)); evicted {
		c.logger.LogInfo(ctx, "Transaction cache full, evicted oldest entry",
			"size", c.lru.Len())
	}
	return nil
}
