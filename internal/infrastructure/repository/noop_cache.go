package repository

import (
	"context"

	"dexinfo.com/internal/domain/entity"
	"dexinfo.com/internal/domain/port"
)

// NoopCache never stores anything
type NoopCache struct{}

var _ port.TransactionCache = NoopCache{}

func (NoopCache) Get(context.Context, entity.ChainID, string) ([]entity.Transaction, error) {
	return nil, entity.ErrCacheMiss
}

func (NoopCache) Set(context.Context, entity.ChainID, string, []entity.Transaction) error {
	return nil
}
