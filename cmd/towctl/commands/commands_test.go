package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/infrastructure/config"
	"towdispatch/internal/infrastructure/container"
	"towdispatch/internal/infrastructure/kvstore"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func useTestContainer(t *testing.T, mutate func(*config.Config)) *container.Container {
	t.Helper()
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	v := viper.New()
	config.SetDefaults(v)
	cfg, err := config.LoadWithViper(v)
	require.NoError(t, err)
	if mutate != nil {
		mutate(cfg)
	}
	c := container.BuildWithStore(cfg, kvstore.NewMemoryStore())

	prev := buildContainer
	buildContainer = func(context.Context) (*container.Container, func(), error) {
		return c, func() {}, nil
	}
	t.Cleanup(func() {
		buildContainer = prev
		repairDryRunFlag = false
		payoutDateFlag, payoutOutFlag, payoutMarkPaidFlag = "", "", false
	})
	return c
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&errOut)
	RootCmd.SetArgs(args)
	err := RootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestJobsGet_ResolvesByRego(t *testing.T) {
	c := useTestContainer(t, nil)
	job, err := c.Jobs.Create(context.Background(), entities.JobRecord{Rego: "abc123", Price: 12000}, "test")
	require.NoError(t, err)

	out, _, err := execute(t, "jobs", "get", "ABC123")
	require.NoError(t, err)

	var got entities.JobRecord
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, job.BookingID, got.BookingID)
	require.Equal(t, "ABC123", got.Rego)
}

func TestJobsGet_NotFound(t *testing.T) {
	useTestContainer(t, nil)

	_, _, err := execute(t, "jobs", "get", "HT-NOPE-0000")
	require.Error(t, err)
}

func TestRepairKeys_DryRun(t *testing.T) {
	c := useTestContainer(t, nil)
	_, err := c.Jobs.Create(context.Background(), entities.JobRecord{Rego: "xyz789"}, "test")
	require.NoError(t, err)

	out, _, err := execute(t, "repair-keys", "--dry-run")
	require.NoError(t, err)
	require.Contains(t, out, "Dry run")
	require.Contains(t, out, "Canonical:    1")
}

func TestOutboxDrain_Empty(t *testing.T) {
	useTestContainer(t, nil)

	out, _, err := execute(t, "outbox", "drain")
	require.NoError(t, err)
	require.Equal(t, "processed=0 succeeded=0 rescheduled=0 dead=0\n", out)
}

func TestPayoutsDLO_RequiresPayerAccount(t *testing.T) {
	useTestContainer(t, nil)

	_, _, err := execute(t, "payouts", "dlo", "--date", "2026-06-30")
	require.Error(t, err)
}

func TestPayoutsDLO_InvalidDate(t *testing.T) {
	useTestContainer(t, nil)

	_, _, err := execute(t, "payouts", "dlo", "--date", "30/06/2026")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid --date")
}

func TestPayoutsDLO_WritesFile(t *testing.T) {
	useTestContainer(t, func(cfg *config.Config) {
		cfg.Payout.PayerAccount = "12-3140-0123456-00"
		cfg.Payout.PayerName = "Tow Dispatch Ltd"
	})
	path := filepath.Join(t.TempDir(), "payout.dlo")

	_, errOut, err := execute(t, "payouts", "dlo", "--date", "2026-06-30", "--out", path)
	require.NoError(t, err)
	require.Contains(t, errOut, "0 payments")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(content), "1"))
}
