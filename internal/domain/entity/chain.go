package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// ChainID identifies the chain whose indexing endpoint is queried
type ChainID uint64

const (
	ChainIDBSC        ChainID = 56
	ChainIDBSCTestnet ChainID = 97
)

// ParseChainID parses a decimal chain id
func ParseChainID(raw string) (ChainID, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownChain, raw)
	}
	return ChainID(id), nil
}

func (c ChainID) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

// WrappedNativeSymbol returns the wrapped native token symbol used by the subgraph
func (c ChainID) WrappedNativeSymbol() string {
	switch c {
	case ChainIDBSC, ChainIDBSCTestnet:
		return "WBNB"
	default:
		return ""
	}
}

// NativeSymbol returns the symbol shown in place of the wrapped native token
func (c ChainID) NativeSymbol() string {
	switch c {
	case ChainIDBSC, ChainIDBSCTestnet:
		return "BNB"
	default:
		return ""
	}
}

// DisplaySymbol renames the wrapped native token to its native symbol
func (c ChainID) DisplaySymbol(symbol string) string {
	wrapped := c.WrappedNativeSymbol()
	if wrapped != "" && symbol == wrapped {
		return c.NativeSymbol()
	}
	return symbol
}
