package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dexinfo.com/internal/infrastructure/logger"
)

var errFetchFailed = errors.New("failed to fetch token transactions")

var transactionsCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "transactions <token-address>",
	Short: "Print the latest mints, swaps and burns of a token as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chainRaw, _ := cmd.Flags().GetString("chain")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		// Logs go to stderr so stdout stays parseable
		appLogger := logger.New(os.Stderr, cfg.Log.Level)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		application, err := newApp(ctx, cfg, appLogger)
		if err != nil {
			return err
		}
		defer application.Close()

		chainID, address, err := application.validator.ValidateTransactionsRequest(chainRaw, args[0])
		if err != nil {
			return err
		}

		result := application.fetchUseCase.Execute(ctx, chainID, address)

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		if result.Error {
			return errFetchFailed
		}
		return nil
	},
}

func init() { //nolint:gochecknoinits
	transactionsCmd.Flags().String("chain", "", "chain id (defaults to subgraph.defaultChain)")
	rootCmd.AddCommand(transactionsCmd)
}
