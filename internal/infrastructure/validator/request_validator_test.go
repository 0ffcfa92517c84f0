package validator

import (
	"errors"
	"testing"

	"dexinfo.com/internal/domain/entity"
)

func TestChainRequestValidator_ValidateTransactionsRequest(t *testing.T) {
	v := NewChainRequestValidator([]entity.ChainID{entity.ChainIDBSC, entity.ChainIDBSCTestnet}, entity.ChainIDBSC)

	tests := []struct {
		name        string
		chain       string
		address     string
		wantChain   entity.ChainID
		wantAddress string
		wantErr     error
	}{
		{
			name:        "default chain",
			chain:       "",
			address:     "0x0E09FaBB73Bd3Ade0a17ECC321fD13a19e81cE82",
			wantChain:   entity.ChainIDBSC,
			wantAddress: "0x0e09fabb73bd3ade0a17ecc321fd13a19e81ce82",
		},
		{
			name:        "explicit chain",
			chain:       "97",
			address:     "0x0e09fabb73bd3ade0a17ecc321fd13a19e81ce82",
			wantChain:   entity.ChainIDBSCTestnet,
			wantAddress: "0x0e09fabb73bd3ade0a17ecc321fd13a19e81ce82",
		},
		{
			name:    "unconfigured chain",
			chain:   "1",
			address: "0x0e09fabb73bd3ade0a17ecc321fd13a19e81ce82",
			wantErr: entity.ErrUnknownChain,
		},
		{
			name:    "malformed chain",
			chain:   "bsc",
			address: "0x0e09fabb73bd3ade0a17ecc321fd13a19e81ce82",
			wantErr: entity.ErrUnknownChain,
		},
		{
			name:    "invalid address",
			chain:   "56",
			address: "0x123",
			wantErr: entity.ErrInvalidAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain, address, err := v.ValidateTransactionsRequest(tt.chain, tt.address)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateTransactionsRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
			if chain != tt.wantChain {
				t.Errorf("chain = %v, want %v", chain, tt.wantChain)
			}
			if address != tt.wantAddress {
				t.Errorf("address = %v, want %v", address, tt.wantAddress)
			}
		})
	}
}
