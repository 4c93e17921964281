package response

import (
	"time"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase"
)

// JobResponse is the admin view: the full record plus derived totals.
type JobResponse struct {
	Success          bool               `json:"success"`
	Job              entities.JobRecord `json:"job"`
	PaidChargesTotal int64              `json:"paidChargesTotal"`
}

func FromJob(j entities.JobRecord) JobResponse {
	if j.AdditionalCharges == nil {
		j.AdditionalCharges = []entities.AdditionalCharge{}
	}
	if j.History == nil {
		j.History = []entities.HistoryEntry{}
	}
	return JobResponse{Success: true, Job: j, PaidChargesTotal: j.PaidChargesTotal()}
}

type JobListResponse struct {
	Success bool                 `json:"success"`
	Jobs    []entities.JobRecord `json:"jobs"`
	Count   int                  `json:"count"`
	Offset  int64                `json:"offset"`
	Limit   int64                `json:"limit"`
}

func FromJobs(jobs []entities.JobRecord, offset, limit int64) JobListResponse {
	if jobs == nil {
		jobs = []entities.JobRecord{}
	}
	return JobListResponse{Success: true, Jobs: jobs, Count: len(jobs), Offset: offset, Limit: limit}
}

// PublicJobResponse is what a customer sees when tracking a booking.
type PublicJobResponse struct {
	Success         bool                `json:"success"`
	BookingID       string              `json:"bookingId"`
	Rego            string              `json:"rego"`
	Status          string              `json:"status"`
	PickupLocation  string              `json:"pickupLocation,omitempty"`
	DropoffLocation string              `json:"dropoffLocation,omitempty"`
	Supplier        string              `json:"supplier,omitempty"`
	Price           int64               `json:"price"`
	PaymentStatus   string              `json:"paymentStatus,omitempty"`
	Charges         []PublicChargeEntry `json:"charges"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

type PublicChargeEntry struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
	Status string `json:"status"`
}

func FromJobPublic(j entities.JobRecord) PublicJobResponse {
	charges := make([]PublicChargeEntry, 0, len(j.AdditionalCharges))
	for _, c := range j.AdditionalCharges {
		if c.Status == entities.ChargeStatusCancelled {
			continue
		}
		charges = append(charges, PublicChargeEntry{ID: c.ID, Amount: c.Amount, Reason: c.Reason, Status: string(c.Status)})
	}
	return PublicJobResponse{
		Success:         true,
		BookingID:       j.BookingID,
		Rego:            j.Rego,
		Status:          string(j.Status),
		PickupLocation:  j.PickupLocation,
		DropoffLocation: j.DropoffLocation,
		Supplier:        j.SupplierName(),
		Price:           j.Price,
		PaymentStatus:   j.PaymentStatus,
		Charges:         charges,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
}

type CancelJobResponse struct {
	Success       bool                                   `json:"success"`
	Job           entities.JobRecord                     `json:"job"`
	Notifications map[string]usecase.NotificationOutcome `json:"notifications"`
}

func FromCancel(r usecase.CancelJobResult) CancelJobResponse {
	return CancelJobResponse{Success: true, Job: r.Job, Notifications: r.Notifications}
}

type ChargeResponse struct {
	Success bool                      `json:"success"`
	Charge  entities.AdditionalCharge `json:"charge"`
	Job     entities.JobRecord        `json:"job"`
}

func FromCharge(j entities.JobRecord, c entities.AdditionalCharge) ChargeResponse {
	return ChargeResponse{Success: true, Charge: c, Job: j}
}

type ChargeListResponse struct {
	Success      bool                        `json:"success"`
	Charges      []entities.AdditionalCharge `json:"charges"`
	PaidTotal    int64                       `json:"paidTotal"`
	PendingTotal int64                       `json:"pendingTotal"`
}

func FromCharges(charges []entities.AdditionalCharge) ChargeListResponse {
	if charges == nil {
		charges = []entities.AdditionalCharge{}
	}
	j := entities.JobRecord{AdditionalCharges: charges}
	return ChargeListResponse{Success: true, Charges: charges, PaidTotal: j.PaidChargesTotal(), PendingTotal: j.PendingChargesTotal()}
}

type InvoiceResponse struct {
	Success bool             `json:"success"`
	Invoice entities.Invoice `json:"invoice"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{Success: true, Invoice: inv}
}
