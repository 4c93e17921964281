package entities

import (
	"crypto/rand"
	"math/big"
	"time"
)

// SupplierJobStatus tracks the supplier-facing side of a job.
type SupplierJobStatus string

const (
	SupplierJobStatusOffered  SupplierJobStatus = "offered"
	SupplierJobStatusAccepted SupplierJobStatus = "accepted"
	SupplierJobStatusDeclined SupplierJobStatus = "declined"
	SupplierJobStatusInvoiced SupplierJobStatus = "invoiced"
	SupplierJobStatusPaid     SupplierJobStatus = "paid"
	// SupplierJobStatusWithdrawn is set on an open offer when the job is cancelled.
	SupplierJobStatusWithdrawn SupplierJobStatus = "withdrawn"
)

// SupplierJobRecord is the offer/accept/decline/invoice workflow a supplier
// sees through their link. It is keyed by Ref and only weakly linked to the
// main job through BookingID.
//
// Storage model (KV hash):
//   - canonical key supplier-job:<ref>
//   - legacy key supplier-link:<ref>, merged at read time
type SupplierJobRecord struct {
	Ref            string            `json:"ref"`
	BookingID      string            `json:"bookingId,omitempty"`
	SupplierName   string            `json:"supplierName"`
	SupplierEmail  string            `json:"supplierEmail,omitempty"`
	SupplierMobile string            `json:"supplierMobile,omitempty"`
	SupplierPhone  string            `json:"supplierPhone,omitempty"`
	Rego           string            `json:"rego,omitempty"`
	Pickup         string            `json:"pickup,omitempty"`
	Dropoff        string            `json:"dropoff,omitempty"`
	Price          int64             `json:"price"`
	Notes          string            `json:"notes,omitempty"`
	Status         SupplierJobStatus `json:"status"`
	DeclineReason  string            `json:"declineReason,omitempty"`
	RespondedAt    *time.Time        `json:"respondedAt,omitempty"`
	Invoice        *SupplierInvoice  `json:"invoice,omitempty"`
	PaidAt         *time.Time        `json:"paidAt,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// SupplierInvoice is what a supplier submits once the tow is done.
type SupplierInvoice struct {
	Number      string    `json:"number"`
	Amount      int64     `json:"amount"`
	BankAccount string    `json:"bankAccount"`
	GSTNumber   string    `json:"gstNumber,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// refAlphabet skips characters that are easy to misread over the phone.
const refAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const SupplierRefLength = 6

func GenerateSupplierRef() string {
	out := make([]byte, SupplierRefLength)
	for i := range out {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(refAlphabet))))
		if err != nil {
			out[i] = refAlphabet[time.Now().UnixNano()%int64(len(refAlphabet))]
			continue
		}
		out[i] = refAlphabet[n.Int64()]
	}
	return string(out)
}
