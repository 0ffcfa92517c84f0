package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"dexinfo.com/internal/domain/entity"
)

// MapMint converts a mint record into a transaction
func MapMint(mint entity.MintResponse, chainID entity.ChainID) (entity.Transaction, error) {
	if err := mint.Pair.Validate(); err != nil {
		return entity.Transaction{}, fmt.Errorf("mint %s: %w", mint.ID, err)
	}
	amounts, err := parseAmounts(mint.AmountUSD, mint.Amount0, mint.Amount1)
	if err != nil {
		return entity.Transaction{}, fmt.Errorf("mint %s: %w", mint.ID, err)
	}

	tx := newTransaction(entity.TransactionTypeMint, mint.ID, mint.Timestamp, mint.To, mint.Pair, chainID)
	tx.AmountUSD, tx.AmountToken0, tx.AmountToken1 = amounts[0], amounts[1], amounts[2]
	return tx, nil
}

// MapBurn converts a burn record into a transaction
func MapBurn(burn entity.BurnResponse, chainID entity.ChainID) (entity.Transaction, error) {
	if err := burn.Pair.Validate(); err != nil {
		return entity.Transaction{}, fmt.Errorf("burn %s: %w", burn.ID, err)
	}
	amounts, err := parseAmounts(burn.AmountUSD, burn.Amount0, burn.Amount1)
	if err != nil {
		return entity.Transaction{}, fmt.Errorf("burn %s: %w", burn.ID, err)
	}

	tx := newTransaction(entity.TransactionTypeBurn, burn.ID, burn.Timestamp, burn.Sender, burn.Pair, chainID)
	tx.AmountUSD, tx.AmountToken0, tx.AmountToken1 = amounts[0], amounts[1], amounts[2]
	return tx, nil
}

// MapSwap converts a swap record into a transaction.
// Token amounts are the net flow into the pair: amountIn - amountOut.
func MapSwap(swap entity.SwapResponse, chainID entity.ChainID) (entity.Transaction, error) {
	if err := swap.Pair.Validate(); err != nil {
		return entity.Transaction{}, fmt.Errorf("swap %s: %w", swap.ID, err)
	}
	amounts, err := parseAmounts(swap.AmountUSD, swap.Amount0In, swap.Amount0Out, swap.Amount1In, swap.Amount1Out)
	if err != nil {
		return entity.Transaction{}, fmt.Errorf("swap %s: %w", swap.ID, err)
	}

	tx := newTransaction(entity.TransactionTypeSwap, swap.ID, swap.Timestamp, swap.From, swap.Pair, chainID)
	tx.AmountUSD = amounts[0]
	tx.AmountToken0 = amounts[1].Sub(amounts[2])
	tx.AmountToken1 = amounts[3].Sub(amounts[4])
	return tx, nil
}

func newTransaction(
	txType entity.TransactionType,
	id, timestamp, sender string,
	pair entity.PairRef,
	chainID entity.ChainID,
) entity.Transaction {
	return entity.Transaction{
		Type:          txType,
		Hash:          transactionHash(id),
		Timestamp:     timestamp,
		Sender:        sender,
		Token0Symbol:  chainID.DisplaySymbol(pair.Token0.Symbol),
		Token1Symbol:  chainID.DisplaySymbol(pair.Token1.Symbol),
		Token0Address: pair.Token0.ID,
		Token1Address: pair.Token1.ID,
	}
}

// transactionHash strips the log index suffix from an event id ("<hash>-<index>")
func transactionHash(id string) string {
	if i := strings.IndexAny(id, "-#"); i >= 0 {
		return id[:i]
	}
	return id
}

func parseAmounts(values ...string) ([]decimal.Decimal, error) {
	amounts := make([]decimal.Decimal, len(values))
	for i, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", v, err)
		}
		amounts[i] = d
	}
	return amounts, nil
}
