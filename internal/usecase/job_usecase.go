package usecase

import (
	"context"
	"encoding/json"
	"log"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
)

var (
	ErrJobNotFound         = errors.New("job not found")
	ErrInvalidJobID        = errors.New("invalid job id")
	ErrInvalidJobInput     = errors.New("invalid job input")
	ErrInvalidJobStatus    = errors.New("invalid job status")
	ErrJobAlreadyCancelled = errors.New("job already cancelled")
	ErrInvalidSupplier     = errors.New("invalid supplier")
)

// protectedJobFields are never taken from an update payload.
var protectedJobFields = map[string]bool{
	"bookingId":         true,
	"history":           true,
	"createdAt":         true,
	"additionalCharges": true,
	"updatedAt":         true,
}

// jobFields is every JSON field name a JobRecord carries; other keys in an
// update payload are dropped.
var jobFields = jsonFieldNames(reflect.TypeOf(entities.JobRecord{}))

func jsonFieldNames(t reflect.Type) map[string]bool {
	out := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		out[name] = true
	}
	return out
}

// Page sizes for List. Limits above MaxJobPageSize are clamped.
const (
	DefaultJobPageSize = 50
	MaxJobPageSize     = 200
)

// Notification channel names reported by Cancel.
const (
	ChannelCustomerSMS   = "customerSms"
	ChannelCustomerEmail = "customerEmail"
	ChannelSupplierSMS   = "supplierSms"
	ChannelSupplierEmail = "supplierEmail"
)

type AssignSupplierInput struct {
	Supplier entities.SupplierAssignment
	Notify   bool
	By       string
}

type CancelJobInput struct {
	Reason         string
	By             string
	NotifyCustomer bool
	NotifySupplier bool
}

type CancelJobResult struct {
	Job           entities.JobRecord             `json:"job"`
	Notifications map[string]NotificationOutcome `json:"notifications"`
}

// IJobUseCase covers the job record lifecycle.
//
// Every mutation reads the whole record, patches it in memory and writes it
// back. Nothing is locked: concurrent writers to one job race and the last
// write wins for the whole record.
type IJobUseCase interface {
	Create(ctx context.Context, job entities.JobRecord, by string) (entities.JobRecord, error)
	Get(ctx context.Context, id string) (entities.JobRecord, error)
	List(ctx context.Context, offset, limit int64) ([]entities.JobRecord, error)
	Update(ctx context.Context, id string, fields map[string]json.RawMessage, by string) (entities.JobRecord, error)
	AssignSupplier(ctx context.Context, id string, in AssignSupplierInput) (entities.JobRecord, error)
	Cancel(ctx context.Context, id string, in CancelJobInput) (CancelJobResult, error)
	ListBySupplier(ctx context.Context, supplierName string) ([]entities.JobRecord, error)
}

type JobSettings struct {
	ScanWindow    int64
	PublicBaseURL string
}

type JobUseCase struct {
	jobs         interfaces.IJobRepository
	supplierJobs interfaces.ISupplierJobRepository
	outbox       interfaces.IOutboxRepository
	resolver     *JobResolver
	notify       notificationSender
	baseURL      string
	now          func() time.Time
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(
	jobs interfaces.IJobRepository,
	supplierJobs interfaces.ISupplierJobRepository,
	outbox interfaces.IOutboxRepository,
	notifier interfaces.INotifier,
	settings JobSettings,
) *JobUseCase {
	return &JobUseCase{
		jobs:         jobs,
		supplierJobs: supplierJobs,
		outbox:       outbox,
		resolver:     NewJobResolver(jobs, settings.ScanWindow),
		notify:       notificationSender{notifier: notifier, outbox: outbox, now: utcNow},
		baseURL:      settings.PublicBaseURL,
		now:          utcNow,
	}
}

// Create writes the record, then pushes it onto jobs:list and the rego index.
// It does not check for an existing record: creating the same bookingId
// twice overwrites the record and leaves two list entries.
func (u *JobUseCase) Create(ctx context.Context, job entities.JobRecord, by string) (entities.JobRecord, error) {
	now := u.now()
	job.BookingID = strings.TrimSpace(job.BookingID)
	if job.BookingID == "" {
		job.BookingID = entities.GenerateBookingID(now)
	}
	job.Rego = entities.NormalizeRego(job.Rego)
	if job.Rego == "" {
		log.Printf("[job][usecase] create invalid input booking_id=%s reason=missing-rego", job.BookingID)
		return entities.JobRecord{}, errors.Wrap(ErrInvalidJobInput, "rego is required")
	}
	if job.Price < 0 {
		return entities.JobRecord{}, errors.Wrap(ErrInvalidJobInput, "price must not be negative")
	}
	if job.Status == "" {
		job.Status = entities.JobStatusPending
	}
	if !job.Status.Valid() {
		return entities.JobRecord{}, ErrInvalidJobStatus
	}

	job.CreatedAt = now
	job.UpdatedAt = now
	job.ExpiresAt = now.Add(entities.JobTTL)
	job.AdditionalCharges = []entities.AdditionalCharge{}
	job.History = nil
	job.StorageKey = ""
	job.AppendHistory(entities.ActionCreated, by, now, nil)

	saved, err := u.jobs.Save(ctx, job)
	if err != nil {
		log.Printf("[job][usecase] create save failed booking_id=%s err=%v", job.BookingID, err)
		return entities.JobRecord{}, err
	}
	if err := u.jobs.PushRecent(ctx, saved.BookingID); err != nil {
		log.Printf("[job][usecase] create list push failed booking_id=%s err=%v", saved.BookingID, err)
		return entities.JobRecord{}, errors.Wrap(err, "push jobs:list")
	}
	if err := u.jobs.PushRego(ctx, saved.Rego, saved.BookingID); err != nil {
		log.Printf("[job][usecase] create rego push failed booking_id=%s rego=%s err=%v", saved.BookingID, saved.Rego, err)
		return entities.JobRecord{}, errors.Wrap(err, "push rego index")
	}
	log.Printf("[job][usecase] create success booking_id=%s rego=%s status=%s", saved.BookingID, saved.Rego, saved.Status)
	return saved, nil
}

func (u *JobUseCase) Get(ctx context.Context, id string) (entities.JobRecord, error) {
	return u.resolver.Resolve(ctx, id)
}

// List pages over jobs:list. Entries whose record is gone are skipped, so a
// page may be shorter than limit.
func (u *JobUseCase) List(ctx context.Context, offset, limit int64) ([]entities.JobRecord, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultJobPageSize
	}
	if limit > MaxJobPageSize {
		limit = MaxJobPageSize
	}

	ids, err := u.jobs.ListRecent(ctx, offset, offset+limit-1)
	if err != nil {
		return nil, err
	}
	out := make([]entities.JobRecord, 0, len(ids))
	for _, id := range ids {
		job, err := u.jobs.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if job.BookingID == "" {
			if job, err = u.jobs.GetLegacyBooking(ctx, id); err != nil {
				return nil, err
			}
		}
		if job.BookingID == "" {
			continue
		}
		out = append(out, job)
	}
	return out, nil
}

// Update shallow-merges top-level fields over the stored record and appends
// one history entry. The entry's action is the new status when the status
// changed and "updated" otherwise.
func (u *JobUseCase) Update(ctx context.Context, id string, fields map[string]json.RawMessage, by string) (entities.JobRecord, error) {
	if len(fields) == 0 {
		return entities.JobRecord{}, errors.Wrap(ErrInvalidJobInput, "no fields to update")
	}
	job, err := u.resolver.Resolve(ctx, id)
	if err != nil {
		return entities.JobRecord{}, err
	}
	prevStatus := job.Status

	merged, changed, err := mergeJobFields(job, fields)
	if err != nil {
		log.Printf("[job][usecase] update invalid fields booking_id=%s err=%v", job.BookingID, err)
		return entities.JobRecord{}, err
	}
	if !merged.Status.Valid() {
		return entities.JobRecord{}, ErrInvalidJobStatus
	}
	merged.Rego = entities.NormalizeRego(merged.Rego)

	now := u.now()
	action := entities.ActionUpdated
	if merged.Status != prevStatus {
		action = string(merged.Status)
	}
	merged.UpdatedAt = now
	merged.AppendHistory(action, by, now, map[string]string{"fields": strings.Join(changed, ",")})

	saved, err := u.jobs.Save(ctx, merged)
	if err != nil {
		log.Printf("[job][usecase] update save failed booking_id=%s err=%v", merged.BookingID, err)
		return entities.JobRecord{}, err
	}
	log.Printf("[job][usecase] update success booking_id=%s action=%s status=%s", saved.BookingID, action, saved.Status)

	if saved.Status == entities.JobStatusCompleted && prevStatus != entities.JobStatusCompleted && saved.SupplierInvoiceRef == "" {
		u.requestInvoice(ctx, saved)
	}
	return saved, nil
}

func mergeJobFields(job entities.JobRecord, fields map[string]json.RawMessage) (entities.JobRecord, []string, error) {
	b, err := json.Marshal(job)
	if err != nil {
		return entities.JobRecord{}, nil, err
	}
	base := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &base); err != nil {
		return entities.JobRecord{}, nil, err
	}

	changed := make([]string, 0, len(fields))
	for k, v := range fields {
		if protectedJobFields[k] || !jobFields[k] {
			continue
		}
		base[k] = v
		changed = append(changed, k)
	}
	if len(changed) == 0 {
		return entities.JobRecord{}, nil, errors.Wrap(ErrInvalidJobInput, "no updatable fields supplied")
	}
	sort.Strings(changed)

	b, err = json.Marshal(base)
	if err != nil {
		return entities.JobRecord{}, nil, err
	}
	var merged entities.JobRecord
	if err := json.Unmarshal(b, &merged); err != nil {
		return entities.JobRecord{}, nil, errors.Wrapf(ErrInvalidJobInput, "decode merged record: %v", err)
	}
	merged.StorageKey = job.StorageKey
	return merged, changed, nil
}

// requestInvoice records an invoice.request intent. It never fails the update.
func (u *JobUseCase) requestInvoice(ctx context.Context, job entities.JobRecord) {
	if u.outbox == nil {
		log.Printf("[job][usecase] invoice request skipped booking_id=%s reason=no-outbox", job.BookingID)
		return
	}
	intent := NewOutboxIntent(entities.OutboxKindInvoiceRequest, job.BookingID, "", "", "", u.now())
	if err := u.outbox.Enqueue(ctx, intent); err != nil {
		log.Printf("[job][usecase] invoice request enqueue failed booking_id=%s err=%v", job.BookingID, err)
		return
	}
	log.Printf("[job][usecase] invoice request queued booking_id=%s intent_id=%s", job.BookingID, intent.ID)
}

// AssignSupplier locates the job by a full scan of jobs:list, not through
// Resolve. With Notify the job waits for the supplier to accept an offer;
// without it the supplier is assigned directly.
func (u *JobUseCase) AssignSupplier(ctx context.Context, id string, in AssignSupplierInput) (entities.JobRecord, error) {
	in.Supplier.Name = strings.TrimSpace(in.Supplier.Name)
	if in.Supplier.Name == "" || in.Supplier.Price < 0 {
		return entities.JobRecord{}, ErrInvalidSupplier
	}

	job, err := u.resolver.ResolveByFullScan(ctx, id)
	if err != nil {
		return entities.JobRecord{}, err
	}
	if job.Status.Terminal() {
		log.Printf("[job][usecase] assign rejected booking_id=%s status=%s", job.BookingID, job.Status)
		return entities.JobRecord{}, ErrInvalidJobStatus
	}

	now := u.now()
	supplier := in.Supplier
	supplier.AssignedAt = now
	supplier.AssignedBy = in.By
	job.Supplier = &supplier
	job.SupplierRef = ""
	job.Status = entities.JobStatusAssigned
	if in.Notify {
		job.Status = entities.JobStatusAwaitingSupplier
		job.SupplierRef = entities.GenerateSupplierRef()
	}
	job.UpdatedAt = now
	job.AppendHistory(entities.ActionSupplierAssigned, in.By, now, map[string]string{
		"supplier": supplier.Name,
		"price":    strconv.FormatInt(supplier.Price, 10),
		"notify":   strconv.FormatBool(in.Notify),
	})

	saved, err := u.jobs.Save(ctx, job)
	if err != nil {
		log.Printf("[job][usecase] assign save failed booking_id=%s err=%v", job.BookingID, err)
		return entities.JobRecord{}, err
	}
	if err := u.jobs.PushSupplierJob(ctx, supplier.Name, saved.BookingID); err != nil {
		log.Printf("[job][usecase] assign supplier list push failed booking_id=%s supplier=%s err=%v", saved.BookingID, supplier.Name, err)
		return entities.JobRecord{}, errors.Wrap(err, "push supplier jobs")
	}
	log.Printf("[job][usecase] assign success booking_id=%s supplier=%q status=%s", saved.BookingID, supplier.Name, saved.Status)

	if in.Notify {
		u.offerToSupplier(ctx, saved)
	}
	return saved, nil
}

func (u *JobUseCase) offerToSupplier(ctx context.Context, job entities.JobRecord) {
	now := u.now()
	s := job.Supplier
	rec := entities.SupplierJobRecord{
		Ref:            job.SupplierRef,
		BookingID:      job.BookingID,
		SupplierName:   s.Name,
		SupplierEmail:  s.Email,
		SupplierMobile: s.Mobile,
		SupplierPhone:  s.Phone,
		Rego:           job.Rego,
		Pickup:         job.PickupLocation,
		Dropoff:        job.DropoffLocation,
		Price:          s.Price,
		Notes:          s.Notes,
		Status:         entities.SupplierJobStatusOffered,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if u.supplierJobs == nil {
		log.Printf("[job][usecase] offer skipped booking_id=%s reason=no-supplier-repository", job.BookingID)
		return
	}
	if _, err := u.supplierJobs.Create(ctx, rec); err != nil {
		log.Printf("[job][usecase] offer create failed booking_id=%s ref=%s err=%v", job.BookingID, rec.Ref, err)
		return
	}

	link := supplierJobLink(u.baseURL, rec.Ref)
	sms := u.notify.sms(ctx, job.BookingID, s.Mobile, supplierOfferSMS(job, link))
	subject, body := supplierOfferEmail(job, s.Price, link)
	email := u.notify.email(ctx, job.BookingID, s.Email, subject, body)
	log.Printf("[job][usecase] offer sent booking_id=%s ref=%s sms=%s email=%s", job.BookingID, rec.Ref, sms.Status, email.Status)
}

// Cancel patches the status fields directly and commits before any
// notification is attempted. Each of the four sends is independent.
func (u *JobUseCase) Cancel(ctx context.Context, id string, in CancelJobInput) (CancelJobResult, error) {
	job, err := u.resolver.ResolveForCancel(ctx, id)
	if err != nil {
		return CancelJobResult{}, err
	}
	if job.Status == entities.JobStatusCancelled {
		return CancelJobResult{}, ErrJobAlreadyCancelled
	}

	now := u.now()
	job.Status = entities.JobStatusCancelled
	job.CancelledAt = &now
	job.CancelReason = strings.TrimSpace(in.Reason)
	job.CancelledBy = in.By
	job.UpdatedAt = now
	var data map[string]string
	if job.CancelReason != "" {
		data = map[string]string{"reason": job.CancelReason}
	}
	job.AppendHistory(entities.ActionCancelled, in.By, now, data)

	saved, err := u.jobs.Save(ctx, job)
	if err != nil {
		log.Printf("[job][usecase] cancel save failed booking_id=%s err=%v", job.BookingID, err)
		return CancelJobResult{}, err
	}
	log.Printf("[job][usecase] cancel success booking_id=%s by=%s", saved.BookingID, in.By)
	u.withdrawOffer(ctx, saved, now)

	notRequested := NotificationOutcome{Status: NotificationSkipped, Error: "not requested"}
	out := map[string]NotificationOutcome{
		ChannelCustomerSMS:   notRequested,
		ChannelCustomerEmail: notRequested,
		ChannelSupplierSMS:   notRequested,
		ChannelSupplierEmail: notRequested,
	}
	subject, body := cancellationEmail(saved)
	if in.NotifyCustomer {
		out[ChannelCustomerSMS] = u.notify.sms(ctx, saved.BookingID, saved.CustomerPhone, cancellationSMS(saved))
		out[ChannelCustomerEmail] = u.notify.email(ctx, saved.BookingID, saved.CustomerEmail, subject, body)
	}
	if in.NotifySupplier {
		var mobile, email string
		if saved.Supplier != nil {
			mobile, email = saved.Supplier.Mobile, saved.Supplier.Email
		}
		out[ChannelSupplierSMS] = u.notify.sms(ctx, saved.BookingID, mobile, cancellationSMS(saved))
		out[ChannelSupplierEmail] = u.notify.email(ctx, saved.BookingID, email, subject, body)
	}
	return CancelJobResult{Job: saved, Notifications: out}, nil
}

// withdrawOffer closes an offer the supplier has not answered yet so the
// link can no longer accept the cancelled job. Accepted offers stay open for
// invoicing.
func (u *JobUseCase) withdrawOffer(ctx context.Context, job entities.JobRecord, now time.Time) {
	if job.SupplierRef == "" || u.supplierJobs == nil {
		return
	}
	rec, err := u.supplierJobs.Get(ctx, job.SupplierRef)
	if err != nil {
		log.Printf("[job][usecase] offer withdraw read failed booking_id=%s ref=%s err=%v", job.BookingID, job.SupplierRef, err)
		return
	}
	if rec.Ref == "" || rec.Status != entities.SupplierJobStatusOffered {
		return
	}
	rec.Status = entities.SupplierJobStatusWithdrawn
	rec.UpdatedAt = now
	if _, err := u.supplierJobs.Save(ctx, rec); err != nil {
		log.Printf("[job][usecase] offer withdraw failed booking_id=%s ref=%s err=%v", job.BookingID, rec.Ref, err)
		return
	}
	log.Printf("[job][usecase] offer withdrawn booking_id=%s ref=%s", job.BookingID, rec.Ref)
}

func (u *JobUseCase) ListBySupplier(ctx context.Context, supplierName string) ([]entities.JobRecord, error) {
	supplierName = strings.TrimSpace(supplierName)
	if supplierName == "" {
		return nil, ErrInvalidSupplier
	}
	ids, err := u.jobs.ListSupplierJobs(ctx, supplierName)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(ids))
	out := make([]entities.JobRecord, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		job, err := u.jobs.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if job.BookingID == "" {
			continue
		}
		out = append(out, job)
	}
	return out, nil
}
