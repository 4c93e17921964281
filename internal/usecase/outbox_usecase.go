package usecase

import (
	"context"
	"log"
	"time"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"
)

var ErrUnknownOutboxKind = errors.New("unknown outbox intent kind")

const (
	DefaultOutboxMaxAttempts = 6
	outboxBaseDelay          = time.Minute
	outboxMaxDelay           = 6 * time.Hour
)

type OutboxSettings struct {
	MaxAttempts   int
	RatePerSecond float64
	PublicBaseURL string
	ScanWindow    int64
	Retry         RetryConfig
}

// IOutboxUseCase carries out queued side effects.
type IOutboxUseCase interface {
	Drain(ctx context.Context) (entities.DrainReport, error)
	ListDead(ctx context.Context) ([]entities.OutboxIntent, error)
}

// OutboxDispatcher delivers due intents one at a time, throttled by a rate
// limiter. Each delivery is retried in-process; an intent that still fails
// is rescheduled with a growing delay and dead-lettered after MaxAttempts
// drains.
type OutboxDispatcher struct {
	outbox   interfaces.IOutboxRepository
	jobs     interfaces.IJobRepository
	notifier interfaces.INotifier
	resolver *JobResolver
	limiter  *rate.Limiter
	settings OutboxSettings
	now      func() time.Time
}

var _ IOutboxUseCase = (*OutboxDispatcher)(nil)

func NewOutboxDispatcher(outbox interfaces.IOutboxRepository, jobs interfaces.IJobRepository, notifier interfaces.INotifier, settings OutboxSettings) *OutboxDispatcher {
	if settings.MaxAttempts <= 0 {
		settings.MaxAttempts = DefaultOutboxMaxAttempts
	}
	if settings.Retry.MaxAttempts == 0 {
		settings.Retry = DefaultRetryConfig()
	}
	limit := rate.Inf
	if settings.RatePerSecond > 0 {
		limit = rate.Limit(settings.RatePerSecond)
	}
	return &OutboxDispatcher{
		outbox:   outbox,
		jobs:     jobs,
		notifier: notifier,
		resolver: NewJobResolver(jobs, settings.ScanWindow),
		limiter:  rate.NewLimiter(limit, 1),
		settings: settings,
		now:      utcNow,
	}
}

func (d *OutboxDispatcher) Drain(ctx context.Context) (entities.DrainReport, error) {
	var report entities.DrainReport
	ids, err := d.outbox.Due(ctx, d.now())
	if err != nil {
		return report, err
	}

	for _, id := range ids {
		if err := d.limiter.Wait(ctx); err != nil {
			return report, err
		}
		intent, err := d.outbox.Get(ctx, id)
		if err != nil {
			return report, err
		}
		if intent.ID == "" {
			log.Printf("[outbox][usecase] dropping due id without body id=%s", id)
			if err := d.outbox.Complete(ctx, id); err != nil {
				return report, err
			}
			continue
		}
		report.Processed++

		deliverErr := retryWithBackoff(ctx, d.settings.Retry, func() error {
			return d.deliver(ctx, intent)
		})
		if deliverErr == nil {
			if err := d.outbox.Complete(ctx, intent.ID); err != nil {
				return report, err
			}
			report.Succeeded++
			log.Printf("[outbox][usecase] delivered id=%s kind=%s booking_id=%s", intent.ID, intent.Kind, intent.BookingID)
			continue
		}
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		intent.Attempts++
		intent.LastError = deliverErr.Error()
		if intent.Attempts >= d.settings.MaxAttempts || errors.Is(deliverErr, ErrUnknownOutboxKind) {
			if err := d.outbox.DeadLetter(ctx, intent); err != nil {
				return report, err
			}
			report.DeadLetters++
			log.Printf("[outbox][usecase] dead letter id=%s kind=%s attempts=%d err=%v", intent.ID, intent.Kind, intent.Attempts, deliverErr)
			continue
		}
		intent.NextAttemptAt = d.now().Add(rescheduleDelay(intent.Attempts, outboxBaseDelay, outboxMaxDelay))
		if err := d.outbox.Reschedule(ctx, intent); err != nil {
			return report, err
		}
		report.Rescheduled++
		log.Printf("[outbox][usecase] rescheduled id=%s kind=%s attempts=%d next=%s err=%v",
			intent.ID, intent.Kind, intent.Attempts, intent.NextAttemptAt.Format(time.RFC3339), deliverErr)
	}
	return report, nil
}

func (d *OutboxDispatcher) deliver(ctx context.Context, intent entities.OutboxIntent) error {
	switch intent.Kind {
	case entities.OutboxKindEmail:
		if d.notifier == nil {
			return errors.New("notifier not configured")
		}
		return d.notifier.SendEmail(ctx, intent.To, intent.Subject, intent.Body)
	case entities.OutboxKindSMS:
		if d.notifier == nil {
			return errors.New("notifier not configured")
		}
		return d.notifier.SendSMS(ctx, intent.To, intent.Body)
	case entities.OutboxKindInvoiceRequest:
		return d.requestInvoice(ctx, intent)
	default:
		return errors.Wrapf(ErrUnknownOutboxKind, "kind %q", intent.Kind)
	}
}

// requestInvoice stamps the job once and emails the supplier. A retry after
// the stamp landed only resends the email.
func (d *OutboxDispatcher) requestInvoice(ctx context.Context, intent entities.OutboxIntent) error {
	job, err := d.resolver.Resolve(ctx, intent.BookingID)
	if errors.Is(err, ErrJobNotFound) {
		log.Printf("[outbox][usecase] invoice request for missing job booking_id=%s", intent.BookingID)
		return nil
	}
	if err != nil {
		return err
	}
	if job.SupplierInvoiceRef != "" {
		return nil
	}

	if job.InvoiceRequestedAt == nil {
		now := d.now()
		job.InvoiceRequestedAt = &now
		job.UpdatedAt = now
		job.AppendHistory(entities.ActionInvoiceRequested, "system", now, map[string]string{"intent": intent.ID})
		if job, err = d.jobs.Save(ctx, job); err != nil {
			return err
		}
	}

	if job.Supplier == nil || job.Supplier.Email == "" {
		log.Printf("[outbox][usecase] invoice request has no supplier email booking_id=%s", job.BookingID)
		return nil
	}
	if d.notifier == nil {
		return errors.New("notifier not configured")
	}
	link := d.settings.PublicBaseURL
	if job.SupplierRef != "" {
		link = supplierJobLink(d.settings.PublicBaseURL, job.SupplierRef)
	}
	subject, body := invoiceRequestEmail(job, link)
	return d.notifier.SendEmail(ctx, job.Supplier.Email, subject, body)
}

func (d *OutboxDispatcher) ListDead(ctx context.Context) ([]entities.OutboxIntent, error) {
	ids, err := d.outbox.ListDead(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.OutboxIntent, 0, len(ids))
	for _, id := range ids {
		intent, err := d.outbox.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if intent.ID != "" {
			out = append(out, intent)
		}
	}
	return out, nil
}
