package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dexinfo.com/internal/domain/entity"
)

func newTestRedisCache(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	cache := NewRedisCache(srv.Addr(), "", 0, ttl)
	t.Cleanup(func() { _ = cache.Close() })
	return cache, srv
}

func TestRedisCache_GetSet(t *testing.T) {
	cache, srv := newTestRedisCache(t, time.Minute)
	ctx := context.Background()

	_, err := cache.Get(ctx, entity.ChainIDBSC, tokenA)
	assert.True(t, errors.Is(err, entity.ErrCacheMiss))

	require.NoError(t, cache.Set(ctx, entity.ChainIDBSC, tokenA, sampleTransactions()))
	assert.True(t, srv.Exists("dexinfo:txs:56:"+tokenA))
	assert.Equal(t, time.Minute, srv.TTL("dexinfo:txs:56:"+tokenA))

	txs, err := cache.Get(ctx, entity.ChainIDBSC, tokenA)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "0xabc", txs[0].Hash)
	assert.Equal(t, "1700000000", txs[0].Timestamp)
	assert.True(t, txs[0].AmountToken0.Equal(sampleTransactions()[0].AmountToken0))
	assert.True(t, txs[0].AmountUSD.Equal(sampleTransactions()[0].AmountUSD))
}

func TestRedisCache_Expiry(t *testing.T) {
	cache, srv := newTestRedisCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, entity.ChainIDBSC, tokenA, sampleTransactions()))
	srv.FastForward(2 * time.Minute)

	_, err := cache.Get(ctx, entity.ChainIDBSC, tokenA)
	assert.True(t, errors.Is(err, entity.ErrCacheMiss))
}

func TestRedisCache_Errors(t *testing.T) {
	cache, srv := newTestRedisCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, srv.Set("dexinfo:txs:56:"+tokenB, "not json"))
	_, err := cache.Get(ctx, entity.ChainIDBSC, tokenB)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, entity.ErrCacheMiss))

	srv.SetError("LOADING")
	_, err = cache.Get(ctx, entity.ChainIDBSC, tokenA)
	assert.Error(t, err)
	assert.Error(t, cache.Set(ctx, entity.ChainIDBSC, tokenA, sampleTransactions()))
}
