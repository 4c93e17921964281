package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"towdispatch/internal/domain/entities"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingDrainer struct {
	calls atomic.Int64
	err   error
}

func (d *countingDrainer) Drain(context.Context) (entities.DrainReport, error) {
	d.calls.Add(1)
	return entities.DrainReport{Processed: 1, Succeeded: 1}, d.err
}

// tickEvery is a sub-second schedule; cron descriptors round up to a second.
type tickEvery time.Duration

func (e tickEvery) Next(t time.Time) time.Time { return t.Add(time.Duration(e)) }

func TestParseSchedule(t *testing.T) {
	for _, expr := range []string{"@every 30s", "*/5 * * * *", "@hourly"} {
		_, err := ParseSchedule(expr)
		assert.NoError(t, err, expr)
	}
	_, err := ParseSchedule("every thirty seconds")
	assert.Error(t, err)
}

func TestRunner_RunsUntilCancelled(t *testing.T) {
	d := &countingDrainer{}
	r := NewRunner(d, tickEvery(10*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	require.Eventually(t, func() bool { return d.calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop")
	}
	assert.Equal(t, d.calls.Load(), r.Passes())
}

func TestRunner_RunOnceSurvivesErrors(t *testing.T) {
	d := &countingDrainer{err: errors.New("kv down")}
	sched, _ := ParseSchedule("@every 1h")
	r := NewRunner(d, sched)

	r.RunOnce(context.Background())
	r.RunOnce(context.Background())
	assert.Equal(t, int64(2), r.Passes())
}
