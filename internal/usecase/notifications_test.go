package usecase

import (
	"context"
	"testing"
	"time"

	"towdispatch/internal/domain/entities"
	mock_interfaces "towdispatch/internal/usecase/interfaces/mocks"

	"github.com/cockroachdb/errors"
	"go.uber.org/mock/gomock"
)

func TestNotificationSender(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	newSender := func(t *testing.T) (notificationSender, *mock_interfaces.MockINotifier, *mock_interfaces.MockIOutboxRepository) {
		ctrl := gomock.NewController(t)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		outbox := mock_interfaces.NewMockIOutboxRepository(ctrl)
		return notificationSender{notifier: notifier, outbox: outbox, now: fixedClock(now)}, notifier, outbox
	}

	t.Run("sent without touching the outbox", func(t *testing.T) {
		s, notifier, _ := newSender(t)
		notifier.EXPECT().SendSMS(gomock.Any(), "0211234567", "on our way").Return(nil).Times(1)

		out := s.sms(context.Background(), "AB12CD34", "0211234567", "on our way")
		if out.Status != NotificationSent || out.IntentID != "" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})

	t.Run("failed email is queued", func(t *testing.T) {
		s, notifier, outbox := newSender(t)
		notifier.EXPECT().SendEmail(gomock.Any(), "jo@example.com", "Invoice", "<p>hi</p>").
			Return(errors.New("smtp down")).Times(1)

		var queued entities.OutboxIntent
		outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, intent entities.OutboxIntent) error {
				queued = intent
				return nil
			}).Times(1)

		out := s.email(context.Background(), "AB12CD34", "jo@example.com", "Invoice", "<p>hi</p>")
		if out.Status != NotificationFailed || out.Error != "smtp down" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
		if out.IntentID == "" || out.IntentID != queued.ID {
			t.Fatalf("expected intent id %q, got %q", queued.ID, out.IntentID)
		}
		if queued.Kind != entities.OutboxKindEmail || queued.To != "jo@example.com" || queued.BookingID != "AB12CD34" {
			t.Fatalf("unexpected intent: %+v", queued)
		}
		if !queued.NextAttemptAt.Equal(now) {
			t.Fatalf("expected intent due at %v, got %v", now, queued.NextAttemptAt)
		}
	})

	t.Run("enqueue failure still reports the send failure", func(t *testing.T) {
		s, notifier, outbox := newSender(t)
		notifier.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("gateway 503")).Times(1)
		outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errors.New("store unavailable")).Times(1)

		out := s.sms(context.Background(), "AB12CD34", "0211234567", "on our way")
		if out.Status != NotificationFailed || out.Error != "gateway 503" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
		if out.IntentID != "" {
			t.Fatalf("expected no intent id, got %q", out.IntentID)
		}
	})

	t.Run("missing recipient is skipped", func(t *testing.T) {
		s, _, _ := newSender(t)

		out := s.email(context.Background(), "AB12CD34", "", "Invoice", "body")
		if out.Status != NotificationSkipped {
			t.Fatalf("expected skipped, got %+v", out)
		}
	})
}

func TestPaymentCollector_LocalCopyFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	c := paymentCollector{gateway: gateway, payments: payments, currency: "NZD", now: fixedClock(now)}
	job := entities.JobRecord{BookingID: "AB12CD34", Rego: "ABC123", CustomerEmail: "jo@example.com"}

	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.PaymentRequest) (entities.ProviderPayment, error) {
			if req.ExternalReference != "AB12CD34:ch-1" || req.Amount != 12500 || req.Currency != "NZD" {
				t.Fatalf("unexpected request: %+v", req)
			}
			return entities.ProviderPayment{ID: "mp-9", Status: "approved"}, nil
		}).Times(1)
	payments.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(entities.Payment{}, errors.New("store unavailable")).Times(1)

	p, err := c.collect(context.Background(), job, "ch-1", 12500, "Storage")
	if err != nil {
		t.Fatalf("expected collect to succeed, got %v", err)
	}
	if p.ID != "mp-9" || p.Status != entities.PaymentStatusApproved || p.ChargeID != "ch-1" {
		t.Fatalf("unexpected payment: %+v", p)
	}
	if !p.Date.Equal(now) {
		t.Fatalf("expected payment date %v, got %v", now, p.Date)
	}
}
