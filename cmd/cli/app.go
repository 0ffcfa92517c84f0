package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	"dexinfo.com/internal/application/usecase"
	"dexinfo.com/internal/domain/entity"
	"dexinfo.com/internal/domain/port"
	"dexinfo.com/internal/infrastructure/config"
	"dexinfo.com/internal/infrastructure/logger"
	"dexinfo.com/internal/infrastructure/metrics"
	"dexinfo.com/internal/infrastructure/repository"
	"dexinfo.com/internal/infrastructure/subgraph"
	"dexinfo.com/internal/infrastructure/validator"
)

const serverDir = "server"

// app holds the wired adapters and use cases shared by the commands
type app struct {
	cfg          *config.Config
	logger       logger.Logger
	registry     *prometheus.Registry
	metrics      *metrics.Metrics
	validator    port.RequestValidator
	fetchUseCase *usecase.FetchTokenTransactionsUseCase
	cacheCloser  io.Closer
}

// loadConfig reads the configuration relative to where the binary is run from
func loadConfig() (*config.Config, error) {
	configDir := filepath.Join("cmd", "config", serverDir)
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		configDir = filepath.Join(".", "config", serverDir)
	}
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newApp wires the infrastructure adapters into the use cases
func newApp(ctx context.Context, cfg *config.Config, appLogger logger.Logger) (*app, error) {
	endpoints, err := cfg.Subgraph.ChainEndpoints()
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	appMetrics := metrics.NewMetrics(registry)

	cache, cacheCloser, err := repository.NewTransactionCache(ctx, cfg, appMetrics, appLogger)
	if err != nil {
		return nil, err
	}

	chains := make([]entity.ChainID, 0, len(endpoints))
	for chainID := range endpoints {
		chains = append(chains, chainID)
	}

	client := subgraph.NewSubgraphClient(endpoints, cfg.Subgraph.Timeout, appMetrics, appLogger)

	return &app{
		cfg:          cfg,
		logger:       appLogger,
		registry:     registry,
		metrics:      appMetrics,
		validator:    validator.NewChainRequestValidator(chains, entity.ChainID(cfg.Subgraph.DefaultChain)),
		fetchUseCase: usecase.NewFetchTokenTransactionsUseCase(client, cache, appLogger, cfg.Subgraph.First),
		cacheCloser:  cacheCloser,
	}, nil
}

func (a *app) Close() error {
	return a.cacheCloser.Close()
}
