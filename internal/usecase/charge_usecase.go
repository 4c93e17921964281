package usecase

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

var (
	ErrChargeNotFound    = errors.New("charge not found")
	ErrInvalidCharge     = errors.New("invalid charge")
	ErrChargeAlreadyPaid = errors.New("charge already paid")
	ErrChargeCancelled   = errors.New("charge cancelled")
)

type AddChargeInput struct {
	Amount  int64
	Reason  string
	By      string
	Collect bool
}

// IChargeUseCase manages the additional-charge sub-ledger embedded in a job.
//
// No running total is stored; Invoice re-derives it from the charge statuses
// on every call.
type IChargeUseCase interface {
	AddCharge(ctx context.Context, id string, in AddChargeInput) (entities.JobRecord, entities.AdditionalCharge, error)
	ListCharges(ctx context.Context, id string) ([]entities.AdditionalCharge, error)
	MarkChargePaid(ctx context.Context, id, chargeID, transactionID, by string) (entities.JobRecord, error)
	CancelCharge(ctx context.Context, id, chargeID, by string) (entities.JobRecord, error)
	PayCharge(ctx context.Context, id, chargeID string) (entities.Payment, error)
	Invoice(ctx context.Context, id string) (entities.Invoice, error)
}

type ChargeUseCase struct {
	jobs      interfaces.IJobRepository
	resolver  *JobResolver
	collector paymentCollector
	currency  string
	now       func() time.Time
}

var _ IChargeUseCase = (*ChargeUseCase)(nil)

func NewChargeUseCase(jobs interfaces.IJobRepository, gateway interfaces.IPaymentGateway, payments interfaces.IPaymentRepository, settings PaymentSettings) *ChargeUseCase {
	return &ChargeUseCase{
		jobs:      jobs,
		resolver:  NewJobResolver(jobs, settings.ScanWindow),
		collector: paymentCollector{gateway: gateway, payments: payments, currency: settings.Currency, now: utcNow},
		currency:  settings.Currency,
		now:       utcNow,
	}
}

// AddCharge appends a pending charge. With Collect it first tries to create
// a payment object and embeds its id as the transactionId; a provider
// failure leaves the charge pending without one.
func (u *ChargeUseCase) AddCharge(ctx context.Context, id string, in AddChargeInput) (entities.JobRecord, entities.AdditionalCharge, error) {
	in.Reason = strings.TrimSpace(in.Reason)
	if in.Amount <= 0 || in.Reason == "" {
		return entities.JobRecord{}, entities.AdditionalCharge{}, ErrInvalidCharge
	}
	job, err := u.resolver.Resolve(ctx, id)
	if err != nil {
		return entities.JobRecord{}, entities.AdditionalCharge{}, err
	}

	now := u.now()
	charge := entities.AdditionalCharge{
		ID:      uuid.NewString(),
		Amount:  in.Amount,
		Reason:  in.Reason,
		AddedAt: now,
		AddedBy: in.By,
		Status:  entities.ChargeStatusPending,
	}
	if in.Collect {
		p, err := u.collector.collect(ctx, job, charge.ID, charge.Amount, fmt.Sprintf("%s: %s", job.BookingID, charge.Reason))
		if err != nil {
			log.Printf("[charge][usecase] collect failed booking_id=%s charge_id=%s err=%v", job.BookingID, charge.ID, err)
		} else {
			charge.TransactionID = p.ID
		}
	}

	job.AdditionalCharges = append(job.AdditionalCharges, charge)
	job.UpdatedAt = now
	job.AppendHistory(entities.ActionChargeAdded, in.By, now, map[string]string{
		"chargeId": charge.ID,
		"amount":   strconv.FormatInt(charge.Amount, 10),
		"reason":   charge.Reason,
	})
	saved, err := u.jobs.Save(ctx, job)
	if err != nil {
		log.Printf("[charge][usecase] add save failed booking_id=%s err=%v", job.BookingID, err)
		return entities.JobRecord{}, entities.AdditionalCharge{}, err
	}
	log.Printf("[charge][usecase] add success booking_id=%s charge_id=%s amount=%d transaction_id=%s", saved.BookingID, charge.ID, charge.Amount, charge.TransactionID)
	return saved, charge, nil
}

func (u *ChargeUseCase) ListCharges(ctx context.Context, id string) ([]entities.AdditionalCharge, error) {
	job, err := u.resolver.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.AdditionalCharges == nil {
		return []entities.AdditionalCharge{}, nil
	}
	return job.AdditionalCharges, nil
}

// MarkChargePaid is idempotent for charges that are already paid.
func (u *ChargeUseCase) MarkChargePaid(ctx context.Context, id, chargeID, transactionID, by string) (entities.JobRecord, error) {
	job, idx, err := u.loadCharge(ctx, id, chargeID)
	if err != nil {
		return entities.JobRecord{}, err
	}
	charge := &job.AdditionalCharges[idx]
	switch charge.Status {
	case entities.ChargeStatusPaid:
		return job, nil
	case entities.ChargeStatusCancelled:
		return entities.JobRecord{}, ErrChargeCancelled
	}

	now := u.now()
	charge.Status = entities.ChargeStatusPaid
	charge.PaidAt = &now
	if transactionID = strings.TrimSpace(transactionID); transactionID != "" {
		charge.TransactionID = transactionID
	}
	job.UpdatedAt = now
	job.AppendHistory(entities.ActionChargePaid, by, now, map[string]string{
		"chargeId":      charge.ID,
		"transactionId": charge.TransactionID,
	})
	saved, err := u.jobs.Save(ctx, job)
	if err != nil {
		return entities.JobRecord{}, err
	}
	log.Printf("[charge][usecase] paid booking_id=%s charge_id=%s transaction_id=%s", saved.BookingID, chargeID, charge.TransactionID)
	return saved, nil
}

func (u *ChargeUseCase) CancelCharge(ctx context.Context, id, chargeID, by string) (entities.JobRecord, error) {
	job, idx, err := u.loadCharge(ctx, id, chargeID)
	if err != nil {
		return entities.JobRecord{}, err
	}
	charge := &job.AdditionalCharges[idx]
	switch charge.Status {
	case entities.ChargeStatusCancelled:
		return job, nil
	case entities.ChargeStatusPaid:
		return entities.JobRecord{}, ErrChargeAlreadyPaid
	}

	now := u.now()
	charge.Status = entities.ChargeStatusCancelled
	job.UpdatedAt = now
	job.AppendHistory(entities.ActionChargeCancelled, by, now, map[string]string{"chargeId": charge.ID})
	saved, err := u.jobs.Save(ctx, job)
	if err != nil {
		return entities.JobRecord{}, err
	}
	log.Printf("[charge][usecase] cancelled booking_id=%s charge_id=%s", saved.BookingID, chargeID)
	return saved, nil
}

// PayCharge creates a payment object for a pending charge so the customer
// can settle it.
func (u *ChargeUseCase) PayCharge(ctx context.Context, id, chargeID string) (entities.Payment, error) {
	job, idx, err := u.loadCharge(ctx, id, chargeID)
	if err != nil {
		return entities.Payment{}, err
	}
	charge := job.AdditionalCharges[idx]
	switch charge.Status {
	case entities.ChargeStatusPaid:
		return entities.Payment{}, ErrChargeAlreadyPaid
	case entities.ChargeStatusCancelled:
		return entities.Payment{}, ErrChargeCancelled
	}

	p, err := u.collector.collect(ctx, job, charge.ID, charge.Amount, fmt.Sprintf("%s: %s", job.BookingID, charge.Reason))
	if err != nil {
		return entities.Payment{}, err
	}
	job.AdditionalCharges[idx].TransactionID = p.ID
	job.UpdatedAt = u.now()
	if _, err := u.jobs.Save(ctx, job); err != nil {
		log.Printf("[charge][usecase] pay save failed booking_id=%s charge_id=%s payment_id=%s err=%v", job.BookingID, chargeID, p.ID, err)
		return entities.Payment{}, err
	}
	return p, nil
}

func (u *ChargeUseCase) Invoice(ctx context.Context, id string) (entities.Invoice, error) {
	job, err := u.resolver.Resolve(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	return entities.BuildInvoice(job, u.currency), nil
}

func (u *ChargeUseCase) loadCharge(ctx context.Context, id, chargeID string) (entities.JobRecord, int, error) {
	chargeID = strings.TrimSpace(chargeID)
	if chargeID == "" {
		return entities.JobRecord{}, -1, ErrChargeNotFound
	}
	job, err := u.resolver.Resolve(ctx, id)
	if err != nil {
		return entities.JobRecord{}, -1, err
	}
	idx := job.ChargeIndex(chargeID)
	if idx < 0 {
		return entities.JobRecord{}, -1, ErrChargeNotFound
	}
	return job, idx, nil
}
