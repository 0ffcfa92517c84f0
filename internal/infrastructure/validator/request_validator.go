package validator

import (
	"fmt"
	"strings"

	"dexinfo.com/internal/domain/entity"
	"dexinfo.com/internal/domain/port"
)

// ChainRequestValidator implements the RequestValidator port against the configured chains
type ChainRequestValidator struct {
	chains       map[entity.ChainID]struct{}
	defaultChain entity.ChainID
}

// NewChainRequestValidator creates a validator accepting the given chains.
// An empty chain parameter resolves to defaultChain.
func NewChainRequestValidator(chains []entity.ChainID, defaultChain entity.ChainID) port.RequestValidator {
	set := make(map[entity.ChainID]struct{}, len(chains))
	for _, c := range chains {
		set[c] = struct{}{}
	}
	return &ChainRequestValidator{
		chains:       set,
		defaultChain: defaultChain,
	}
}

// ValidateTransactionsRequest resolves the chain and normalizes the token address
func (v *ChainRequestValidator) ValidateTransactionsRequest(chainRaw, address string) (entity.ChainID, string, error) {
	chainID := v.defaultChain
	if strings.TrimSpace(chainRaw) != "" {
		parsed, err := entity.ParseChainID(chainRaw)
		if err != nil {
			return 0, "", err
		}
		chainID = parsed
	}

	if _, ok := v.chains[chainID]; !ok {
		return 0, "", fmt.Errorf("%w: %s is not configured", entity.ErrUnknownChain, chainID)
	}

	normalized, err := entity.NormalizeAddress(address)
	if err != nil {
		return 0, "", err
	}

	return chainID, normalized, nil
}
