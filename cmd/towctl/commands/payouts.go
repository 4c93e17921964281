package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// PayoutsCmd groups supplier payout exports.
var PayoutsCmd = &cobra.Command{
	Use:   "payouts",
	Short: "Supplier payout batches",
}

var payoutsDLOCmd = &cobra.Command{
	Use:   "dlo",
	Short: "Export invoiced supplier jobs as a bank direct-credit (DLO) file",
	RunE:  runPayoutsDLO,
}

var (
	payoutDateFlag     string
	payoutOutFlag      string
	payoutMarkPaidFlag bool
)

func init() {
	PayoutsCmd.AddCommand(payoutsDLOCmd)
	payoutsDLOCmd.Flags().StringVar(&payoutDateFlag, "date", "", "Batch date YYYY-MM-DD (default: today)")
	payoutsDLOCmd.Flags().StringVar(&payoutOutFlag, "out", "", "Write the file here instead of stdout")
	payoutsDLOCmd.Flags().BoolVar(&payoutMarkPaidFlag, "mark-paid", false, "Mark exported supplier jobs as paid")
}

func runPayoutsDLO(cmd *cobra.Command, _ []string) error {
	date := time.Now()
	if payoutDateFlag != "" {
		d, err := time.Parse(time.DateOnly, payoutDateFlag)
		if err != nil {
			return errors.Wrapf(err, "invalid --date %q", payoutDateFlag)
		}
		date = d
	}

	c, closeFn, err := buildContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	batch, err := c.Payouts.ExportDLO(cmd.Context(), date, payoutMarkPaidFlag)
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	for _, s := range batch.Skipped {
		fmt.Fprintf(errOut, "skipped %s: %s\n", s.Ref, s.Reason)
	}
	fmt.Fprintf(errOut, "%s: %d payments, total %d cents, hash %s\n", batch.FileName, batch.Count, batch.TotalCents, batch.HashTotal)

	if payoutOutFlag == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), batch.Content)
		return err
	}
	return os.WriteFile(payoutOutFlag, []byte(batch.Content), 0o600)
}
