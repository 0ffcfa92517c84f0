package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// TransactionType is the kind of liquidity pool event
type TransactionType string

const (
	TransactionTypeMint TransactionType = "MINT"
	TransactionTypeSwap TransactionType = "SWAP"
	TransactionTypeBurn TransactionType = "BURN"
)

// Transaction is the normalized record shown in a token's transaction table
type Transaction struct {
	Type          TransactionType `json:"type"`
	Hash          string          `json:"hash"`
	Timestamp     string          `json:"timestamp"`
	Sender        string          `json:"sender"`
	Token0Symbol  string          `json:"token0Symbol"`
	Token1Symbol  string          `json:"token1Symbol"`
	Token0Address string          `json:"token0Address"`
	Token1Address string          `json:"token1Address"`
	AmountUSD     decimal.Decimal `json:"amountUSD"`
	AmountToken0  decimal.Decimal `json:"amountToken0"`
	AmountToken1  decimal.Decimal `json:"amountToken1"`
}

// Time parses the unix seconds timestamp
func (t Transaction) Time() (time.Time, error) {
	sec, err := strconv.ParseInt(t.Timestamp, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", t.Timestamp, err)
	}
	return time.Unix(sec, 0).UTC(), nil
}

// TransactionsResult is the outcome of a token transactions fetch.
// Data is nil whenever Error is set.
type TransactionsResult struct {
	Data  []Transaction `json:"data,omitempty"`
	Error bool          `json:"error"`
}

// MarshalJSON omits data on failure and keeps an empty list on success
func (r TransactionsResult) MarshalJSON() ([]byte, error) {
	if r.Error {
		return json.Marshal(struct {
			Error bool `json:"error"`
		}{Error: true})
	}
	data := r.Data
	if data == nil {
		data = []Transaction{}
	}
	return json.Marshal(struct {
		Data  []Transaction `json:"data"`
		Error bool          `json:"error"`
	}{Data: data})
}

// NormalizeAddress validates a hex token address and lowercases it to match subgraph ids
func NormalizeAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return strings.ToLower(common.HexToAddress(address).Hex()), nil
}
