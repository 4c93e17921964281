package worker

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"towdispatch/internal/domain/entities"

	"github.com/cockroachdb/errors"
	"github.com/robfig/cron/v3"
)

// Drainer is the outbox dispatcher as seen by the runner.
type Drainer interface {
	Drain(ctx context.Context) (entities.DrainReport, error)
}

var scheduleParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ParseSchedule accepts five-field cron expressions and descriptors such
// as "@every 30s" or "@hourly".
func ParseSchedule(expr string) (cron.Schedule, error) {
	s, err := scheduleParser.Parse(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid outbox schedule %q", expr)
	}
	return s, nil
}

// Runner drains the outbox on a schedule until its context is cancelled.
// Passes never overlap.
type Runner struct {
	drainer  Drainer
	schedule cron.Schedule
	now      func() time.Time

	passes atomic.Int64
}

func NewRunner(drainer Drainer, schedule cron.Schedule) *Runner {
	return &Runner{drainer: drainer, schedule: schedule, now: time.Now}
}

// Passes is the number of completed drain passes.
func (r *Runner) Passes() int64 { return r.passes.Load() }

func (r *Runner) Run(ctx context.Context) error {
	log.Printf("[outbox][worker] runner started")
	for {
		now := r.now()
		wait := r.schedule.Next(now).Sub(now)
		if wait < 0 {
			wait = 0
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Printf("[outbox][worker] runner stopped passes=%d", r.Passes())
			return ctx.Err()
		case <-timer.C:
		}
		r.RunOnce(ctx)
	}
}

// RunOnce performs one drain pass and logs its outcome.
func (r *Runner) RunOnce(ctx context.Context) entities.DrainReport {
	report, err := r.drainer.Drain(ctx)
	r.passes.Add(1)
	if err != nil {
		log.Printf("[outbox][worker] drain failed err=%v", err)
		return report
	}
	if report.Processed > 0 {
		log.Printf("[outbox][worker] drain processed=%d succeeded=%d rescheduled=%d dead=%d",
			report.Processed, report.Succeeded, report.Rescheduled, report.DeadLetters)
	}
	return report
}
