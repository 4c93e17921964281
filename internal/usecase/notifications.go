package usecase

import (
	"context"
	"log"
	"time"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	NotificationSent    = "sent"
	NotificationFailed  = "failed"
	NotificationSkipped = "skipped"
)

// NotificationOutcome reports one channel of a best-effort send. A failed
// send is queued to the outbox when one is configured.
type NotificationOutcome struct {
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
	IntentID string `json:"intentId,omitempty"`
}

// notificationSender sends right away and parks failures as outbox intents.
// Nothing it does is allowed to fail the caller.
type notificationSender struct {
	notifier interfaces.INotifier
	outbox   interfaces.IOutboxRepository
	now      func() time.Time
}

func (s notificationSender) email(ctx context.Context, bookingID, to, subject, body string) NotificationOutcome {
	return s.send(ctx, entities.OutboxKindEmail, bookingID, to, subject, body)
}

func (s notificationSender) sms(ctx context.Context, bookingID, to, body string) NotificationOutcome {
	return s.send(ctx, entities.OutboxKindSMS, bookingID, to, "", body)
}

func (s notificationSender) send(ctx context.Context, kind entities.OutboxKind, bookingID, to, subject, body string) NotificationOutcome {
	if to == "" {
		return NotificationOutcome{Status: NotificationSkipped, Error: "no recipient"}
	}
	if s.notifier == nil {
		return NotificationOutcome{Status: NotificationSkipped, Error: "notifier not configured"}
	}

	var err error
	if kind == entities.OutboxKindSMS {
		err = s.notifier.SendSMS(ctx, to, body)
	} else {
		err = s.notifier.SendEmail(ctx, to, subject, body)
	}
	if err == nil {
		return NotificationOutcome{Status: NotificationSent}
	}
	log.Printf("[notify][usecase] send failed kind=%s booking_id=%s err=%v", kind, bookingID, err)

	out := NotificationOutcome{Status: NotificationFailed, Error: err.Error()}
	if s.outbox == nil {
		return out
	}
	intent := NewOutboxIntent(kind, bookingID, to, subject, body, s.now())
	if qErr := s.outbox.Enqueue(ctx, intent); qErr != nil {
		log.Printf("[notify][usecase] outbox enqueue failed kind=%s booking_id=%s err=%v", kind, bookingID, qErr)
		return out
	}
	out.IntentID = intent.ID
	return out
}

// NewOutboxIntent builds an intent that is due immediately.
func NewOutboxIntent(kind entities.OutboxKind, bookingID, to, subject, body string, now time.Time) entities.OutboxIntent {
	return entities.OutboxIntent{
		ID:            uuid.NewString(),
		Kind:          kind,
		BookingID:     bookingID,
		To:            to,
		Subject:       subject,
		Body:          body,
		CreatedAt:     now,
		NextAttemptAt: now,
	}
}

func utcNow() time.Time { return time.Now().UTC() }
