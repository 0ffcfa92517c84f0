package port

import (
	"context"

	"dexinfo.com/internal/domain/entity"
)

// TransactionCache is the port for caching fetched token transactions.
// Get returns entity.ErrCacheMiss when nothing is stored for the token.
type TransactionCache interface {
	Get(ctx context.Context, chainID entity.ChainID, address string) ([]entity.Transaction, error)
	Set(ctx context.Context, chainID entity.ChainID, address string, txs []entity.Transaction) error
}
