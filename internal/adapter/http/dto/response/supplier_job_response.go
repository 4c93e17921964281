package response

import (
	"time"

	"towdispatch/internal/domain/entities"
)

// SupplierJobResponse is the supplier-link view. Bank details stay out.
type SupplierJobResponse struct {
	Success       bool       `json:"success"`
	Ref           string     `json:"ref"`
	BookingID     string     `json:"bookingId,omitempty"`
	SupplierName  string     `json:"supplierName"`
	Rego          string     `json:"rego,omitempty"`
	Pickup        string     `json:"pickup,omitempty"`
	Dropoff       string     `json:"dropoff,omitempty"`
	Price         int64      `json:"price"`
	Notes         string     `json:"notes,omitempty"`
	Status        string     `json:"status"`
	DeclineReason string     `json:"declineReason,omitempty"`
	InvoiceNumber string     `json:"invoiceNumber,omitempty"`
	InvoiceAmount int64      `json:"invoiceAmount,omitempty"`
	RespondedAt   *time.Time `json:"respondedAt,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
}

func FromSupplierJob(s entities.SupplierJobRecord) SupplierJobResponse {
	out := SupplierJobResponse{
		Success:       true,
		Ref:           s.Ref,
		BookingID:     s.BookingID,
		SupplierName:  s.SupplierName,
		Rego:          s.Rego,
		Pickup:        s.Pickup,
		Dropoff:       s.Dropoff,
		Price:         s.Price,
		Notes:         s.Notes,
		Status:        string(s.Status),
		DeclineReason: s.DeclineReason,
		RespondedAt:   s.RespondedAt,
		PaidAt:        s.PaidAt,
	}
	if s.Invoice != nil {
		out.InvoiceNumber = s.Invoice.Number
		out.InvoiceAmount = s.Invoice.Amount
	}
	return out
}
