package request

import (
	"testing"

	"towdispatch/internal/domain/entities"
)

func TestCancelJobRequest_ToInputDefaults(t *testing.T) {
	no := false

	in := CancelJobRequest{Reason: "  customer sorted it  "}.ToInput("ops")
	if !in.NotifyCustomer || !in.NotifySupplier {
		t.Fatalf("expected notify flags to default to true, got %+v", in)
	}
	if in.Reason != "customer sorted it" || in.By != "ops" {
		t.Fatalf("unexpected input: %+v", in)
	}

	in = CancelJobRequest{NotifySupplier: &no}.ToInput("ops")
	if !in.NotifyCustomer || in.NotifySupplier {
		t.Fatalf("expected supplier notify off, got %+v", in)
	}
}

func TestCreateJobRequest_ToEntity(t *testing.T) {
	job := CreateJobRequest{BookingID: " HT-1 ", Rego: "abc123", Price: 8500, Status: "booked"}.ToEntity()
	if job.BookingID != "HT-1" || job.Status != entities.JobStatusBooked || job.Price != 8500 {
		t.Fatalf("unexpected job: %+v", job)
	}
}

func TestPaymentWebhookRequest_ResolvePaymentID(t *testing.T) {
	query := func(values map[string]string) func(string) string {
		return func(k string) string { return values[k] }
	}

	tests := []struct {
		name  string
		req   PaymentWebhookRequest
		query map[string]string
		want  string
	}{
		{"body", func() PaymentWebhookRequest { r := PaymentWebhookRequest{}; r.Data.ID = "123"; return r }(), nil, "123"},
		{"data.id query", PaymentWebhookRequest{}, map[string]string{"data.id": "456"}, "456"},
		{"id query", PaymentWebhookRequest{}, map[string]string{"id": "789"}, "789"},
		{"missing", PaymentWebhookRequest{}, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.ResolvePaymentID(query(tt.query)); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}

	if (PaymentWebhookRequest{Type: "merchant_order"}).IsPaymentEvent(query(nil)) {
		t.Fatalf("merchant_order must not be treated as a payment event")
	}
	if !(PaymentWebhookRequest{}).IsPaymentEvent(query(map[string]string{"topic": "payment"})) {
		t.Fatalf("topic=payment must be a payment event")
	}
}
