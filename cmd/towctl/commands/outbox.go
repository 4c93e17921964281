package commands

import (
	"context"
	"fmt"

	"towdispatch/internal/infrastructure/worker"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// OutboxCmd groups notification outbox operations.
var OutboxCmd = &cobra.Command{
	Use:   "outbox",
	Short: "Deliver queued notifications",
}

var outboxDrainCmd = &cobra.Command{
	Use:   "drain",
	Short: "Process every due intent once",
	RunE:  runOutboxDrain,
}

var outboxRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Drain on a cron schedule until interrupted",
	RunE:  runOutboxRun,
}

var outboxDeadCmd = &cobra.Command{
	Use:   "dead",
	Short: "List dead-lettered intents",
	RunE:  runOutboxDead,
}

var outboxScheduleFlag string

func init() {
	OutboxCmd.AddCommand(outboxDrainCmd)
	OutboxCmd.AddCommand(outboxRunCmd)
	OutboxCmd.AddCommand(outboxDeadCmd)
	outboxRunCmd.Flags().StringVar(&outboxScheduleFlag, "schedule", "", `Cron expression or descriptor, e.g. "@every 1m" (default: OUTBOX_SCHEDULE)`)
}

func runOutboxDrain(cmd *cobra.Command, _ []string) error {
	c, closeFn, err := buildContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	report, err := c.Outbox.Drain(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "processed=%d succeeded=%d rescheduled=%d dead=%d\n",
		report.Processed, report.Succeeded, report.Rescheduled, report.DeadLetters)
	return nil
}

func runOutboxRun(cmd *cobra.Command, _ []string) error {
	c, closeFn, err := buildContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	expr := outboxScheduleFlag
	if expr == "" {
		expr = c.Config.Outbox.Schedule
	}
	sched, err := worker.ParseSchedule(expr)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "draining outbox on schedule %q\n", expr)
	err = worker.NewRunner(c.Outbox, sched).Run(cmd.Context())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runOutboxDead(cmd *cobra.Command, _ []string) error {
	c, closeFn, err := buildContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	intents, err := c.Outbox.ListDead(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), intents)
}
