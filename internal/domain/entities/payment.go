package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus is the provider outcome as recorded locally.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// Payment is a payment-collection object created with the payment provider,
// for a booking (ChargeID empty) or for one additional charge.
//
// Storage model (KV hash):
//   - payment:<id>
//   - payments:<bookingId> list, newest first
//
// ProviderPayloadRaw keeps the provider response for reconciliation.
type Payment struct {
	ID           string        `json:"id"`
	BookingID    string        `json:"bookingId"`
	ChargeID     string        `json:"chargeId,omitempty"`
	Amount       int64         `json:"amount"`
	Currency     string        `json:"currency"`
	Status       PaymentStatus `json:"status"`
	ClientSecret string        `json:"clientSecret,omitempty"`
	Date         time.Time     `json:"date"`

	ProviderPayloadRaw json.RawMessage `json:"providerPayloadRaw,omitempty"`
}

// PaymentRequest is what the gateway needs to create a collection object.
type PaymentRequest struct {
	Amount            int64
	Currency          string
	Description       string
	ReceiverEmail     string
	ExternalReference string
	Metadata          map[string]string
}

// ProviderPayment is the provider view of a payment.
type ProviderPayment struct {
	ID                string
	Status            string
	ExternalReference string
	ClientSecret      string
	Raw               json.RawMessage
}

// Approved maps provider statuses onto our paid/unpaid split.
func (p ProviderPayment) Approved() bool {
	return p.Status == "approved" || p.Status == "succeeded" || p.Status == "accredited"
}
