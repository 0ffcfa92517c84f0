package usecase

import (
	"context"
	"errors"
	"fmt"

	"dexinfo.com/internal/domain/entity"
	"dexinfo.com/internal/domain/port"
	"dexinfo.com/internal/infrastructure/logger"
)

// FetchTokenTransactionsUseCase fetches the transaction table of a token page
type FetchTokenTransactionsUseCase struct {
	client   port.SubgraphClient
	cache    port.TransactionCache
	logger   logger.Logger
	pageSize int
}

// NewFetchTokenTransactionsUseCase creates a new FetchTokenTransactionsUseCase
func NewFetchTokenTransactionsUseCase(
	client port.SubgraphClient,
	cache port.TransactionCache,
	logger logger.Logger,
	pageSize int,
) *FetchTokenTransactionsUseCase {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &FetchTokenTransactionsUseCase{
		client:   client,
		cache:    cache,
		logger:   logger,
		pageSize: pageSize,
	}
}

// Execute fetches the latest mints, burns and swaps involving the token.
// It never returns partial data: any failure is logged and reported as Error.
func (uc *FetchTokenTransactionsUseCase) Execute(
	ctx context.Context,
	chainID entity.ChainID,
	address string,
) (result entity.TransactionsResult) {
	defer func() {
		if r := recover(); r != nil {
			uc.logger.LogError(ctx, "Failed to fetch transactions for token", fmt.Errorf("panic: %v", r),
				"chain", chainID.String(),
				"address", address)
			result = entity.TransactionsResult{Error: true}
		}
	}()

	txs, err := uc.fetch(ctx, chainID, address)
	if err != nil {
		uc.logger.LogError(ctx, "Failed to fetch transactions for token", err,
			"chain", chainID.String(),
			"address", address)
		return entity.TransactionsResult{Error: true}
	}

	return entity.TransactionsResult{Data: txs}
}

func (uc *FetchTokenTransactionsUseCase) fetch(
	ctx context.Context,
	chainID entity.ChainID,
	address string,
) ([]entity.Transaction, error) {
	address, err := entity.NormalizeAddress(address)
	if err != nil {
		return nil, err
	}

	cached, err := uc.cache.Get(ctx, chainID, address)
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, entity.ErrCacheMiss):
		uc.logger.LogWarning(ctx, "Transaction cache read failed",
			"chain", chainID.String(),
			"address", address,
			"error", err.Error())
	}

	var resp entity.TokenTransactionsResponse
	vars := map[string]any{
		"address": address,
		"first":   uc.pageSize,
	}
	if err := uc.client.Query(ctx, chainID, tokenTransactionsQuery, vars, &resp); err != nil {
		return nil, fmt.Errorf("query subgraph: %w", err)
	}
	if err := resp.Validate(); err != nil {
		return nil, err
	}

	txs, err := mapTransactions(&resp, chainID)
	if err != nil {
		return nil, fmt.Errorf("map response: %w", err)
	}

	if err := uc.cache.Set(ctx, chainID, address, txs); err != nil {
		uc.logger.LogWarning(ctx, "Transaction cache write failed",
			"chain", chainID.String(),
			"address", address,
			"error", err.Error())
	}

	uc.logger.LogInfo(ctx, "Token transactions fetched",
		"chain", chainID.String(),
		"address", address,
		"count", len(txs))

	return txs, nil
}

// mapTransactions maps and concatenates the collections: mints, burns, then swaps,
// each with the token0 side first.
func mapTransactions(resp *entity.TokenTransactionsResponse, chainID entity.ChainID) ([]entity.Transaction, error) {
	txs := make([]entity.Transaction, 0, resp.Len())

	for _, mints := range [][]entity.MintResponse{resp.MintsAs0, resp.MintsAs1} {
		for _, mint := range mints {
			tx, err := MapMint(mint, chainID)
			if err != nil {
				return nil, err
			}
			txs = append(txs, tx)
		}
	}
	for _, burns := range [][]entity.BurnResponse{resp.BurnsAs0, resp.BurnsAs1} {
		for _, burn := range burns {
			tx, err := MapBurn(burn, chainID)
			if err != nil {
				return nil, err
			}
			txs = append(txs, tx)
		}
	}
	for _, swaps := range [][]entity.SwapResponse{resp.SwapsAs0, resp.SwapsAs1} {
		for _, swap := range swaps {
			tx, err := MapSwap(swap, chainID)
			if err != nil {
				return nil, err
			}
			txs = append(txs, tx)
		}
	}

	return txs, nil
}
