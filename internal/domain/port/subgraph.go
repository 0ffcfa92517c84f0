package port

import (
	"context"

	"dexinfo.com/internal/domain/entity"
)

// SubgraphClient is the port for querying a chain's indexing endpoint
type SubgraphClient interface {
	// Query runs a GraphQL query and decodes the data object into out
	Query(ctx context.Context, chainID entity.ChainID, query string, vars map[string]any, out any) error
}
