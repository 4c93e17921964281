package entities

import "time"

type ChargeStatus string

const (
	ChargeStatusPending   ChargeStatus = "pending"
	ChargeStatusPaid      ChargeStatus = "paid"
	ChargeStatusCancelled ChargeStatus = "cancelled"
)

// AdditionalCharge is one independently payable entry embedded in a job.
type AdditionalCharge struct {
	ID            string       `json:"id"`
	Amount        int64        `json:"amount"`
	Reason        string       `json:"reason"`
	AddedAt       time.Time    `json:"addedAt"`
	AddedBy       string       `json:"addedBy"`
	Status        ChargeStatus `json:"status"`
	TransactionID string       `json:"transactionId,omitempty"`
	PaidAt        *time.Time   `json:"paidAt,omitempty"`
}

// ChargeIndex returns the position of the charge or -1.
func (j JobRecord) ChargeIndex(chargeID string) int {
	for i, c := range j.AdditionalCharges {
		if c.ID == chargeID {
			return i
		}
	}
	return -1
}

// PaidChargesTotal is recomputed on every read; no running total is stored.
func (j JobRecord) PaidChargesTotal() int64 {
	var total int64
	for _, c := range j.AdditionalCharges {
		if c.Status == ChargeStatusPaid {
			total += c.Amount
		}
	}
	return total
}

func (j JobRecord) PendingChargesTotal() int64 {
	var total int64
	for _, c := range j.AdditionalCharges {
		if c.Status == ChargeStatusPending {
			total += c.Amount
		}
	}
	return total
}
