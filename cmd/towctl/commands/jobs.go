package commands

import (
	"github.com/spf13/cobra"
)

// JobsCmd inspects jobs.
var JobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Inspect jobs",
}

var jobsGetCmd = &cobra.Command{
	Use:   "get <bookingId|rego>",
	Short: "Resolve and print one job",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsGet,
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent jobs",
	RunE:  runJobsList,
}

var (
	jobsOffsetFlag int64
	jobsLimitFlag  int64
)

func init() {
	JobsCmd.AddCommand(jobsGetCmd)
	JobsCmd.AddCommand(jobsListCmd)
	jobsListCmd.Flags().Int64Var(&jobsOffsetFlag, "offset", 0, "Skip this many jobs")
	jobsListCmd.Flags().Int64Var(&jobsLimitFlag, "limit", 20, "Number of jobs to print")
}

func runJobsGet(cmd *cobra.Command, args []string) error {
	c, closeFn, err := buildContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	job, err := c.Jobs.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), job)
}

func runJobsList(cmd *cobra.Command, _ []string) error {
	c, closeFn, err := buildContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	jobs, err := c.Jobs.List(cmd.Context(), jobsOffsetFlag, jobsLimitFlag)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), jobs)
}
