package usecase

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
)

var (
	ErrSupplierJobNotFound     = errors.New("supplier job not found")
	ErrInvalidSupplierJobState = errors.New("supplier job state does not allow this")
	ErrInvalidInvoice          = errors.New("invalid supplier invoice")
)

type SubmitInvoiceInput struct {
	Number      string
	Amount      int64
	BankAccount string
	GSTNumber   string
}

// ISupplierJobUseCase is the supplier side of a job, driven from the link
// sent with an offer.
//
// Each operation writes the supplier job first and the main job second.
// The two writes are independent: if the second fails the records disagree
// until someone fixes the main job by hand.
type ISupplierJobUseCase interface {
	Get(ctx context.Context, ref string) (entities.SupplierJobRecord, error)
	Accept(ctx context.Context, ref string) (entities.SupplierJobRecord, error)
	Decline(ctx context.Context, ref, reason string) (entities.SupplierJobRecord, error)
	SubmitInvoice(ctx context.Context, ref string, in SubmitInvoiceInput) (entities.SupplierJobRecord, error)
}

type SupplierJobUseCase struct {
	supplierJobs interfaces.ISupplierJobRepository
	jobs         interfaces.IJobRepository
	resolver     *JobResolver
	now          func() time.Time
}

var _ ISupplierJobUseCase = (*SupplierJobUseCase)(nil)

func NewSupplierJobUseCase(supplierJobs interfaces.ISupplierJobRepository, jobs interfaces.IJobRepository, scanWindow int64) *SupplierJobUseCase {
	return &SupplierJobUseCase{
		supplierJobs: supplierJobs,
		jobs:         jobs,
		resolver:     NewJobResolver(jobs, scanWindow),
		now:          utcNow,
	}
}

func (u *SupplierJobUseCase) Get(ctx context.Context, ref string) (entities.SupplierJobRecord, error) {
	ref = strings.ToUpper(strings.TrimSpace(ref))
	if ref == "" {
		return entities.SupplierJobRecord{}, ErrSupplierJobNotFound
	}
	rec, err := u.supplierJobs.Get(ctx, ref)
	if err != nil {
		return entities.SupplierJobRecord{}, err
	}
	if rec.Ref == "" {
		return entities.SupplierJobRecord{}, ErrSupplierJobNotFound
	}
	return rec, nil
}

func (u *SupplierJobUseCase) Accept(ctx context.Context, ref string) (entities.SupplierJobRecord, error) {
	rec, err := u.Get(ctx, ref)
	if err != nil {
		return entities.SupplierJobRecord{}, err
	}
	if rec.Status == entities.SupplierJobStatusAccepted {
		return rec, nil
	}
	if rec.Status != entities.SupplierJobStatusOffered {
		return entities.SupplierJobRecord{}, ErrInvalidSupplierJobState
	}
	closed, err := u.linkedJobClosed(ctx, rec)
	if err != nil {
		return entities.SupplierJobRecord{}, err
	}
	if closed {
		log.Printf("[supplier][usecase] accept refused ref=%s booking_id=%s reason=job-closed", rec.Ref, rec.BookingID)
		return entities.SupplierJobRecord{}, ErrInvalidSupplierJobState
	}

	now := u.now()
	rec.Status = entities.SupplierJobStatusAccepted
	rec.RespondedAt = &now
	rec.UpdatedAt = now
	saved, err := u.supplierJobs.Save(ctx, rec)
	if err != nil {
		return entities.SupplierJobRecord{}, err
	}
	log.Printf("[supplier][usecase] accepted ref=%s booking_id=%s", saved.Ref, saved.BookingID)

	err = u.patchMainJob(ctx, saved, func(job *entities.JobRecord) bool {
		if job.Status.Terminal() {
			return false
		}
		job.Status = entities.JobStatusAssigned
		job.AppendHistory(entities.ActionSupplierAccepted, saved.SupplierName, now, map[string]string{"ref": saved.Ref})
		return true
	})
	if err != nil {
		return entities.SupplierJobRecord{}, err
	}
	return saved, nil
}

// Decline marks the supplier job declined (first write), then puts the main
// job back to booked with the supplier cleared (second write).
func (u *SupplierJobUseCase) Decline(ctx context.Context, ref, reason string) (entities.SupplierJobRecord, error) {
	rec, err := u.Get(ctx, ref)
	if err != nil {
		return entities.SupplierJobRecord{}, err
	}
	if rec.Status != entities.SupplierJobStatusOffered && rec.Status != entities.SupplierJobStatusAccepted {
		return entities.SupplierJobRecord{}, ErrInvalidSupplierJobState
	}

	now := u.now()
	rec.Status = entities.SupplierJobStatusDeclined
	rec.DeclineReason = strings.TrimSpace(reason)
	rec.RespondedAt = &now
	rec.UpdatedAt = now
	saved, err := u.supplierJobs.Save(ctx, rec)
	if err != nil {
		return entities.SupplierJobRecord{}, err
	}
	log.Printf("[supplier][usecase] declined ref=%s booking_id=%s reason=%q", saved.Ref, saved.BookingID, saved.DeclineReason)

	err = u.patchMainJob(ctx, saved, func(job *entities.JobRecord) bool {
		if job.Status.Terminal() {
			return false
		}
		job.Status = entities.JobStatusBooked
		job.Supplier = nil
		job.SupplierRef = ""
		data := map[string]string{"ref": saved.Ref, "supplier": saved.SupplierName}
		if saved.DeclineReason != "" {
			data["reason"] = saved.DeclineReason
		}
		job.AppendHistory(entities.ActionSupplierDeclined, saved.SupplierName, now, data)
		return true
	})
	if err != nil {
		return entities.SupplierJobRecord{}, err
	}
	return saved, nil
}

func (u *SupplierJobUseCase) SubmitInvoice(ctx context.Context, ref string, in SubmitInvoiceInput) (entities.SupplierJobRecord, error) {
	in.Number = strings.TrimSpace(in.Number)
	if in.Number == "" || in.Amount <= 0 {
		return entities.SupplierJobRecord{}, ErrInvalidInvoice
	}
	account, err := entities.ParseBankAccount(in.BankAccount)
	if err != nil {
		return entities.SupplierJobRecord{}, errors.Wrap(ErrInvalidInvoice, err.Error())
	}

	rec, err := u.Get(ctx, ref)
	if err != nil {
		return entities.SupplierJobRecord{}, err
	}
	if rec.Status != entities.SupplierJobStatusAccepted {
		return entities.SupplierJobRecord{}, ErrInvalidSupplierJobState
	}

	now := u.now()
	rec.Status = entities.SupplierJobStatusInvoiced
	rec.Invoice = &entities.SupplierInvoice{
		Number:      in.Number,
		Amount:      in.Amount,
		BankAccount: account.String(),
		GSTNumber:   strings.TrimSpace(in.GSTNumber),
		SubmittedAt: now,
	}
	rec.UpdatedAt = now
	saved, err := u.supplierJobs.Save(ctx, rec)
	if err != nil {
		return entities.SupplierJobRecord{}, err
	}
	log.Printf("[supplier][usecase] invoiced ref=%s booking_id=%s number=%s amount=%d", saved.Ref, saved.BookingID, in.Number, in.Amount)

	err = u.patchMainJob(ctx, saved, func(job *entities.JobRecord) bool {
		job.SupplierInvoiceRef = in.Number
		job.AppendHistory(entities.ActionSupplierInvoiced, saved.SupplierName, now, map[string]string{
			"ref":    saved.Ref,
			"number": in.Number,
			"amount": strconv.FormatInt(in.Amount, 10),
		})
		return true
	})
	if err != nil {
		return entities.SupplierJobRecord{}, err
	}
	return saved, nil
}

// linkedJobClosed reports whether the job behind rec is completed or
// cancelled. A missing job counts as open.
func (u *SupplierJobUseCase) linkedJobClosed(ctx context.Context, rec entities.SupplierJobRecord) (bool, error) {
	if rec.BookingID == "" {
		return false, nil
	}
	job, err := u.resolver.Resolve(ctx, rec.BookingID)
	if errors.Is(err, ErrJobNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return job.Status.Terminal(), nil
}

// patchMainJob applies patch to the linked job unless another supplier has
// been offered the job since. patch returns false to leave the job as is.
func (u *SupplierJobUseCase) patchMainJob(ctx context.Context, rec entities.SupplierJobRecord, patch func(*entities.JobRecord) bool) error {
	if rec.BookingID == "" {
		log.Printf("[supplier][usecase] no linked job ref=%s", rec.Ref)
		return nil
	}
	job, err := u.resolver.Resolve(ctx, rec.BookingID)
	if errors.Is(err, ErrJobNotFound) {
		log.Printf("[supplier][usecase] linked job missing ref=%s booking_id=%s", rec.Ref, rec.BookingID)
		return nil
	}
	if err != nil {
		return err
	}
	if job.SupplierRef != "" && job.SupplierRef != rec.Ref {
		log.Printf("[supplier][usecase] linked job moved on ref=%s booking_id=%s current_ref=%s", rec.Ref, job.BookingID, job.SupplierRef)
		return nil
	}

	if !patch(&job) {
		log.Printf("[supplier][usecase] linked job left as is ref=%s booking_id=%s status=%s", rec.Ref, job.BookingID, job.Status)
		return nil
	}
	job.UpdatedAt = u.now()
	if _, err := u.jobs.Save(ctx, job); err != nil {
		log.Printf("[supplier][usecase] main job write failed ref=%s booking_id=%s err=%v", rec.Ref, job.BookingID, err)
		return errors.Wrapf(err, "update job %s after supplier job %s", job.BookingID, rec.Ref)
	}
	return nil
}
