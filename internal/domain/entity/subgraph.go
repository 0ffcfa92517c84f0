package entity

import "fmt"

// TokenRef is a token as referenced by a pair
type TokenRef struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
}

// PairRef is the pair an event was emitted by
type PairRef struct {
	Token0 TokenRef `json:"token0"`
	Token1 TokenRef `json:"token1"`
}

// MintResponse is a mint record as returned by the indexing endpoint
type MintResponse struct {
	ID        string  `json:"id"`
	Timestamp string  `json:"timestamp"`
	Pair      PairRef `json:"pair"`
	To        string  `json:"to"`
	Amount0   string  `json:"amount0"`
	Amount1   string  `json:"amount1"`
	AmountUSD string  `json:"amountUSD"`
}

// SwapResponse is a swap record as returned by the indexing endpoint
type SwapResponse struct {
	ID         string  `json:"id"`
	Timestamp  string  `json:"timestamp"`
	Pair       PairRef `json:"pair"`
	From       string  `json:"from"`
	Amount0In  string  `json:"amount0In"`
	Amount1In  string  `json:"amount1In"`
	Amount0Out string  `json:"amount0Out"`
	Amount1Out string  `json:"amount1Out"`
	AmountUSD  string  `json:"amountUSD"`
}

// BurnResponse is a burn record as returned by the indexing endpoint
type BurnResponse struct {
	ID        string  `json:"id"`
	Timestamp string  `json:"timestamp"`
	Pair      PairRef `json:"pair"`
	Sender    string  `json:"sender"`
	Amount0   string  `json:"amount0"`
	Amount1   string  `json:"amount1"`
	AmountUSD string  `json:"amountUSD"`
}

// TokenTransactionsResponse holds the six collections of the token transactions query,
// split by the side of the pair the token occupies.
type TokenTransactionsResponse struct {
	MintsAs0 []MintResponse `json:"mintsAs0"`
	MintsAs1 []MintResponse `json:"mintsAs1"`
	SwapsAs0 []SwapResponse `json:"swapsAs0"`
	SwapsAs1 []SwapResponse `json:"swapsAs1"`
	BurnsAs0 []BurnResponse `json:"burnsAs0"`
	BurnsAs1 []BurnResponse `json:"burnsAs1"`
}

// Validate checks that every collection was present in the response.
// A missing or null collection decodes to a nil slice; an empty one does not.
func (r *TokenTransactionsResponse) Validate() error {
	collections := []struct {
		name    string
		missing bool
	}{
		{"mintsAs0", r.MintsAs0 == nil},
		{"mintsAs1", r.MintsAs1 == nil},
		{"swapsAs0", r.SwapsAs0 == nil},
		{"swapsAs1", r.SwapsAs1 == nil},
		{"burnsAs0", r.BurnsAs0 == nil},
		{"burnsAs1", r.BurnsAs1 == nil},
	}
	for _, c := range collections {
		if c.missing {
			return fmt.Errorf("%w: collection %s is missing", ErrMalformedResponse, c.name)
		}
	}
	return nil
}

// Validate checks that both sides of the pair are identified
func (p PairRef) Validate() error {
	if p.Token0.ID == "" || p.Token1.ID == "" {
		return fmt.Errorf("%w: pair token id is missing", ErrMalformedResponse)
	}
	return nil
}

// Len returns the total number of records across all collections
func (r *TokenTransactionsResponse) Len() int {
	return len(r.MintsAs0) + len(r.MintsAs1) +
		len(r.SwapsAs0) + len(r.SwapsAs1) +
		len(r.BurnsAs0) + len(r.BurnsAs1)
}
