package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dexinfo.com/internal/domain/entity"
	"dexinfo.com/internal/domain/port"
)

// RedisCache implements the TransactionCache port using Redis, shared across replicas
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a new Redis backed transaction cache
func NewRedisCache(addr, password string, db int, ttl time.Duration) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisCache{client: client, ttl: ttl}
}

var _ port.TransactionCache = (*RedisCache)(nil)

// Get returns the cached transactions of a token
func (r *RedisCache) Get(ctx context.Context, chainID entity.ChainID, address string) ([]entity.Transaction, error) {
	data, err := r.client.Get(ctx, cacheKey(chainID, address)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, entity.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read cached transactions: %w", err)
	}

	var txs []entity.Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached transactions: %w", err)
	}
	return txs, nil
}

// Set stores the transactions of a token with the configured TTL
func (r *RedisCache) Set(ctx context.Context, chainID entity.ChainID, address string, txs []entity.Transaction) error {
	data, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("failed to marshal transactions: %w", err)
	}
	if err := r.client.Set(ctx, cacheKey(chainID, address), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache transactions: %w", err)
	}
	return nil
}

// Ping checks the connection
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the underlying client
func (r *RedisCache) Close() error {
	return r.client.Close()
}
