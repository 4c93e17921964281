package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var repairDryRunFlag bool

var repairKeysCmd = &cobra.Command{
	Use:   "repair-keys",
	Short: "Move jobs stored under rego or legacy keys to job:<bookingId>",
	Long: `Walks jobs:list and rewrites every job that is not stored under its
canonical key. Dangling list entries are dropped and the list is rebuilt
without duplicates.`,
	RunE: runRepairKeys,
}

func init() {
	repairKeysCmd.Flags().BoolVar(&repairDryRunFlag, "dry-run", false, "Report what would change without writing")
}

func runRepairKeys(cmd *cobra.Command, _ []string) error {
	c, closeFn, err := buildContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	report, err := c.Repair.RepairJobKeys(cmd.Context(), repairDryRunFlag)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if report.DryRun {
		fmt.Fprintln(out, "Dry run: nothing was written")
	}
	fmt.Fprintf(out, "Scanned:      %d\n", report.Scanned)
	fmt.Fprintf(out, "Canonical:    %d\n", report.Canonical)
	fmt.Fprintf(out, "Moved:        %d\n", report.Moved)
	fmt.Fprintf(out, "Moved legacy: %d\n", report.MovedLegacy)
	fmt.Fprintf(out, "Dropped:      %d\n", report.Dropped)
	fmt.Fprintf(out, "Duplicates:   %d\n", report.Duplicates)
	fmt.Fprintf(out, "List size:    %d\n", report.ListSize)
	for _, m := range report.Moves {
		fmt.Fprintf(out, "  %s\n", m)
	}
	return nil
}
