package usecase

import (
	"context"
	"testing"

	"towdispatch/internal/domain/entities"
	mock_interfaces "towdispatch/internal/usecase/interfaces/mocks"

	"github.com/cockroachdb/errors"
	"go.uber.org/mock/gomock"
)

func newChargeUseCase(env *testEnv, gateway *mock_interfaces.MockIPaymentGateway) *ChargeUseCase {
	var uc *ChargeUseCase
	if gateway == nil {
		uc = NewChargeUseCase(env.jobs, nil, env.payments, PaymentSettings{Currency: "NZD", ScanWindow: 10})
	} else {
		uc = NewChargeUseCase(env.jobs, gateway, env.payments, PaymentSettings{Currency: "NZD", ScanWindow: 10})
	}
	return uc
}

func TestChargeUseCase_InvoiceTotal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreate(t, entities.JobRecord{BookingID: "HT-CH", Rego: "CH1", Price: 15000})
	uc := newChargeUseCase(env, nil)

	var ids []string
	for _, amount := range []int64{2500, 1000, 700} {
		_, c, err := uc.AddCharge(ctx, "HT-CH", AddChargeInput{Amount: amount, Reason: "storage", By: "admin"})
		if err != nil {
			t.Fatalf("add charge: %v", err)
		}
		ids = append(ids, c.ID)
	}
	if _, err := uc.MarkChargePaid(ctx, "HT-CH", ids[0], "txn-1", "admin"); err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if _, err := uc.MarkChargePaid(ctx, "HT-CH", ids[1], "", "admin"); err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if _, err := uc.CancelCharge(ctx, "HT-CH", ids[2], "admin"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	inv, err := uc.Invoice(ctx, "HT-CH")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Total != 15000+2500+1000 {
		t.Fatalf("expected total 18500, got %d", inv.Total)
	}
	if inv.PendingCharges != 0 || len(inv.Lines) != 2 {
		t.Fatalf("unexpected invoice: %+v", inv)
	}
	if inv.GST != 2413 || inv.TotalDisplay != "185.00" {
		t.Fatalf("unexpected GST or display: gst=%d display=%s", inv.GST, inv.TotalDisplay)
	}

	job := env.mustGetJob(t, "HT-CH")
	// created + 3 added + 2 paid + 1 cancelled
	if len(job.History) != 7 {
		t.Fatalf("expected 7 history entries, got %d", len(job.History))
	}
}

func TestChargeUseCase_StateRules(t *testing.T) {
	setup := func(t *testing.T) (*testEnv, *ChargeUseCase, string) {
		env := newTestEnv(t)
		env.mustCreate(t, entities.JobRecord{BookingID: "HT-SR", Rego: "SR1", Price: 100})
		uc := newChargeUseCase(env, nil)
		_, c, err := uc.AddCharge(context.Background(), "HT-SR", AddChargeInput{Amount: 500, Reason: "winch"})
		if err != nil {
			t.Fatalf("add charge: %v", err)
		}
		return env, uc, c.ID
	}

	t.Run("paid charge cannot be cancelled", func(t *testing.T) {
		_, uc, id := setup(t)
		if _, err := uc.MarkChargePaid(context.Background(), "HT-SR", id, "txn", "admin"); err != nil {
			t.Fatalf("mark paid: %v", err)
		}
		_, err := uc.CancelCharge(context.Background(), "HT-SR", id, "admin")
		if !errors.Is(err, ErrChargeAlreadyPaid) {
			t.Fatalf("expected ErrChargeAlreadyPaid, got %v", err)
		}
	})

	t.Run("mark paid is idempotent", func(t *testing.T) {
		env, uc, id := setup(t)
		for i := 0; i < 2; i++ {
			if _, err := uc.MarkChargePaid(context.Background(), "HT-SR", id, "txn", "admin"); err != nil {
				t.Fatalf("mark paid: %v", err)
			}
		}
		if n := len(env.mustGetJob(t, "HT-SR").History); n != 3 {
			t.Fatalf("expected 3 history entries, got %d", n)
		}
	})

	t.Run("cancelled charge cannot be paid", func(t *testing.T) {
		_, uc, id := setup(t)
		if _, err := uc.CancelCharge(context.Background(), "HT-SR", id, "admin"); err != nil {
			t.Fatalf("cancel: %v", err)
		}
		_, err := uc.MarkChargePaid(context.Background(), "HT-SR", id, "txn", "admin")
		if !errors.Is(err, ErrChargeCancelled) {
			t.Fatalf("expected ErrChargeCancelled, got %v", err)
		}
	})

	t.Run("unknown charge", func(t *testing.T) {
		_, uc, _ := setup(t)
		_, err := uc.MarkChargePaid(context.Background(), "HT-SR", "nope", "", "admin")
		if !errors.Is(err, ErrChargeNotFound) {
			t.Fatalf("expected ErrChargeNotFound, got %v", err)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		_, uc, _ := setup(t)
		_, _, err := uc.AddCharge(context.Background(), "HT-SR", AddChargeInput{Amount: 0, Reason: "x"})
		if !errors.Is(err, ErrInvalidCharge) {
			t.Fatalf("expected ErrInvalidCharge, got %v", err)
		}
	})
}

func TestChargeUseCase_Collect(t *testing.T) {
	t.Run("embeds the provider id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newTestEnv(t)
		env.mustCreate(t, entities.JobRecord{BookingID: "HT-COL", Rego: "COL1", CustomerEmail: "jo@example.com"})
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newChargeUseCase(env, gateway)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.PaymentRequest) (entities.ProviderPayment, error) {
				if req.Amount != 4200 || req.ReceiverEmail != "jo@example.com" || req.Currency != "NZD" {
					t.Fatalf("unexpected request: %+v", req)
				}
				bookingID, chargeID := SplitExternalReference(req.ExternalReference)
				if bookingID != "HT-COL" || chargeID == "" {
					t.Fatalf("unexpected external reference %q", req.ExternalReference)
				}
				return entities.ProviderPayment{ID: "mp-1", Status: "pending"}, nil
			})

		_, c, err := uc.AddCharge(context.Background(), "HT-COL", AddChargeInput{Amount: 4200, Reason: "after hours", Collect: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.TransactionID != "mp-1" || c.Status != entities.ChargeStatusPending {
			t.Fatalf("unexpected charge: %+v", c)
		}
		local, err := env.payments.GetByID(context.Background(), "mp-1")
		if err != nil || local.ChargeID != c.ID {
			t.Fatalf("expected local payment copy, got %v %+v", err, local)
		}
	})

	t.Run("provider failure keeps the charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newTestEnv(t)
		env.mustCreate(t, entities.JobRecord{BookingID: "HT-COL", Rego: "COL1"})
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newChargeUseCase(env, gateway)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.ProviderPayment{}, errors.New("mp down"))

		job, c, err := uc.AddCharge(context.Background(), "HT-COL", AddChargeInput{Amount: 4200, Reason: "after hours", Collect: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.TransactionID != "" || len(job.AdditionalCharges) != 1 {
			t.Fatalf("unexpected result: %+v", job.AdditionalCharges)
		}
	})

	t.Run("pay charge surfaces provider errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newTestEnv(t)
		env.mustCreate(t, entities.JobRecord{BookingID: "HT-PAY", Rego: "PAY1"})
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newChargeUseCase(env, gateway)
		_, c, err := uc.AddCharge(context.Background(), "HT-PAY", AddChargeInput{Amount: 100, Reason: "fuel"})
		if err != nil {
			t.Fatalf("add: %v", err)
		}

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.ProviderPayment{}, errors.New("mp down"))

		_, err = uc.PayCharge(context.Background(), "HT-PAY", c.ID)
		if !errors.Is(err, ErrPaymentGatewayError) {
			t.Fatalf("expected ErrPaymentGatewayError, got %v", err)
		}
	})
}
