package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httphandler "dexinfo.com/internal/infrastructure/http"
	"dexinfo.com/internal/infrastructure/logger"
)

var apiServerCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "server",
	Short: "Run API Server.",
	RunE: func(_ *cobra.Command, _ []string) error {
		bootLogger := logger.NewLogger()

		cfg, err := loadConfig()
		if err != nil {
			bootLogger.LogError(context.TODO(), "Failed to load config", err)
			return err
		}

		appLogger := logger.New(os.Stdout, cfg.Log.Level)
		appLogger.LogInfo(context.TODO(), "Configuration loaded",
			"port", cfg.Server.Port,
			"default_chain", cfg.Subgraph.DefaultChain,
			"chains", len(cfg.Subgraph.Endpoints),
			"cache_backend", cfg.Cache.Backend)

		application, err := newApp(context.Background(), cfg, appLogger)
		if err != nil {
			appLogger.LogError(context.TODO(), "Failed to initialize application", err)
			return err
		}
		defer application.Close()

		handler := httphandler.NewHandler(
			application.fetchUseCase,
			application.validator,
			application.metrics,
			application.registry,
			appLogger,
		)

		addr := ":" + cfg.Server.Port
		server := &http.Server{
			Addr:         addr,
			Handler:      handler.SetupRoutes(),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15*time.Second + cfg.Subgraph.Timeout,
			IdleTimeout:  60 * time.Second,
		}

		// Channel to capture termination signals
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, os.Interrupt, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

		errChan := make(chan error, 1)

		go func() {
			appLogger.LogInfo(context.TODO(), "Starting server", "address", addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- err
			}
		}()

		select {
		case <-signalChan:
			appLogger.LogInfo(context.TODO(), "Received termination signal. Initiating graceful shutdown...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				appLogger.LogError(context.TODO(), "Server forced to shutdown", err)
				return fmt.Errorf("shutdown: %w", err)
			}

			appLogger.LogInfo(context.TODO(), "Server stopped gracefully")
		case err := <-errChan:
			appLogger.LogError(context.TODO(), "Server error", err)
			return err
		}

		return nil
	},
}

func init() { //nolint:gochecknoinits
	rootCmd.AddCommand(apiServerCmd)
}
