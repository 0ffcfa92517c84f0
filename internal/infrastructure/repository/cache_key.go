package repository

import (
	"fmt"

	"dexinfo.com/internal/domain/entity"
)

func cacheKey(chainID entity.ChainID, address string) string {
	return fmt.Sprintf("dexinfo:txs:%s:%s", chainID, address)
}

// copyTransactions returns a copy so callers never share the cached slice
func copyTransactions(txs []entity.Transaction) []entity.Transaction {
	out := make([]entity.Transaction, len(txs))
	copy(out, txs)
	return out
}
