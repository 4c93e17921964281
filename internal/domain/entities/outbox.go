package entities

import "time"

type OutboxKind string

const (
	OutboxKindEmail          OutboxKind = "notify.email"
	OutboxKindSMS            OutboxKind = "notify.sms"
	OutboxKindInvoiceRequest OutboxKind = "invoice.request"
)

// OutboxIntent is a side effect recorded next to a job mutation and carried
// out later by the outbox dispatcher, with retries.
type OutboxIntent struct {
	ID            string     `json:"id"`
	Kind          OutboxKind `json:"kind"`
	BookingID     string     `json:"bookingId,omitempty"`
	To            string     `json:"to,omitempty"`
	Subject       string     `json:"subject,omitempty"`
	Body          string     `json:"body,omitempty"`
	Attempts      int        `json:"attempts"`
	LastError     string     `json:"lastError,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	NextAttemptAt time.Time  `json:"nextAttemptAt"`
}

// DrainReport summarises one pass over the due intents.
type DrainReport struct {
	Processed   int `json:"processed"`
	Succeeded   int `json:"succeeded"`
	Rescheduled int `json:"rescheduled"`
	DeadLetters int `json:"deadLetters"`
}
