package subgraph

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	gql "github.com/machinebox/graphql"

	"dexinfo.com/internal/domain/entity"
	"dexinfo.com/internal/domain/port"
	"dexinfo.com/internal/infrastructure/logger"
	"dexinfo.com/internal/infrastructure/metrics"
)

const maxErrorBody = 512

// SubgraphClient implements the SubgraphClient port over GraphQL-over-HTTP
type SubgraphClient struct {
	clients map[entity.ChainID]*gql.Client
	timeout time.Duration
	metrics *metrics.Metrics
	logger  logger.Logger
}

// NewSubgraphClient creates a client with one GraphQL endpoint per chain
func NewSubgraphClient(
	endpoints map[entity.ChainID]string,
	timeout time.Duration,
	m *metrics.Metrics,
	logger logger.Logger,
) port.SubgraphClient {
	httpClient := &http.Client{
		Transport: &statusTransport{next: http.DefaultTransport},
	}

	clients := make(map[entity.ChainID]*gql.Client, len(endpoints))
	for chainID, endpoint := range endpoints {
		clients[chainID] = gql.NewClient(endpoint, gql.WithHTTPClient(httpClient))
	}

	return &SubgraphClient{
		clients: clients,
		timeout: timeout,
		metrics: m,
		logger:  logger,
	}
}

// Query sends the query to the chain's endpoint and decodes its data object into out
func (c *SubgraphClient) Query(
	ctx context.Context,
	chainID entity.ChainID,
	query string,
	vars map[string]any,
	out any,
) error {
	client, ok := c.clients[chainID]
	if !ok {
		return fmt.Errorf("%w: no subgraph endpoint for chain %s", entity.ErrUnknownChain, chainID)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := gql.NewRequest(query)
	for k, v := range vars {
		req.Var(k, v)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	err := client.Run(ctx, req, out)
	c.metrics.ObserveSubgraphRequest(chainID, time.Since(start), err)
	if err != nil {
		c.logger.LogWarning(ctx, "Subgraph query failed",
			"chain", chainID.String(),
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err.Error())
		return fmt.Errorf("subgraph query on chain %s: %w", chainID, err)
	}

	return nil
}

// statusTransport turns non-200 responses into errors. The GraphQL client only
// checks the status code when the body is not valid JSON.
type statusTransport struct {
	next http.RoundTripper
}

func (t *statusTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	res, err := t.next.RoundTrip(r)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		defer res.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return nil, fmt.Errorf("subgraph returned status %d: %s", res.StatusCode, body)
	}
	return res, nil
}
