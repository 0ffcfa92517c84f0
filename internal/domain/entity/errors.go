package entity

import "errors"

var (
	ErrInvalidAddress    = errors.New("invalid token address")
	ErrUnknownChain      = errors.New("unknown chain")
	ErrUnknownIcon       = errors.New("unknown icon")
	ErrInvalidIconProps  = errors.New("invalid icon props")
	ErrCacheMiss         = errors.New("cache miss")
	ErrMalformedResponse = errors.New("malformed subgraph response")
)
