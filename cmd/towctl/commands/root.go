package commands

import (
	"context"
	"encoding/json"
	"io"

	"towdispatch/internal/infrastructure/config"
	"towdispatch/internal/infrastructure/container"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// RootCmd is the towctl entry point.
var RootCmd = &cobra.Command{
	Use:   "towctl",
	Short: "Operate the tow dispatch back-office",
	Long: `towctl runs maintenance against the same KV store as the API.

Examples:
  towctl repair-keys --dry-run      # Report jobs stored under the wrong key
  towctl outbox drain               # Deliver due notifications once
  towctl outbox run                 # Deliver on the configured schedule
  towctl payouts dlo --date 2026-06-30 --out payout.dlo
  towctl jobs get ABC123            # Resolve a job by booking id or rego`,
	SilenceUsage: true,
}

// buildContainer is replaced in tests.
var buildContainer = func(ctx context.Context) (*container.Container, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, func() {}, errors.Wrap(err, "failed to load configuration")
	}
	return container.Build(ctx, cfg)
}

func init() {
	RootCmd.AddCommand(repairKeysCmd)
	RootCmd.AddCommand(OutboxCmd)
	RootCmd.AddCommand(PayoutsCmd)
	RootCmd.AddCommand(JobsCmd)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
