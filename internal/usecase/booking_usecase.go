package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
)

var ErrInvalidBooking = errors.New("invalid booking")

type BookingInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	Rego            string
	PickupLocation  string
	DropoffLocation string
	PickupLat       *float64
	PickupLng       *float64
	DropoffLat      *float64
	DropoffLng      *float64
	Make            string
	Model           string
	Color           string
	Year            string
	Notes           string
	Price           int64
}

type BookingResult struct {
	Job     entities.JobRecord `json:"job"`
	Payment entities.Payment   `json:"payment"`
	Quote   *entities.Quote    `json:"quote,omitempty"`
}

type WebhookResult struct {
	PaymentID string `json:"paymentId"`
	BookingID string `json:"bookingId"`
	ChargeID  string `json:"chargeId,omitempty"`
	Status    string `json:"status"`
	Applied   bool   `json:"applied"`
}

// IBookingUseCase is the customer-facing flow: book, pay, track.
type IBookingUseCase interface {
	Book(ctx context.Context, in BookingInput) (BookingResult, error)
	Track(ctx context.Context, id string) (entities.JobRecord, error)
	Payments(ctx context.Context, id string) ([]entities.Payment, error)
	HandlePaymentWebhook(ctx context.Context, providerPaymentID string) (WebhookResult, error)
}

type BookingUseCase struct {
	jobs      interfaces.IJobRepository
	jobUC     IJobUseCase
	charges   IChargeUseCase
	lookups   ILookupUseCase
	gateway   interfaces.IPaymentGateway
	payments  interfaces.IPaymentRepository
	resolver  *JobResolver
	collector paymentCollector
	now       func() time.Time
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(
	jobs interfaces.IJobRepository,
	jobUC IJobUseCase,
	charges IChargeUseCase,
	lookups ILookupUseCase,
	gateway interfaces.IPaymentGateway,
	payments interfaces.IPaymentRepository,
	settings PaymentSettings,
) *BookingUseCase {
	return &BookingUseCase{
		jobs:      jobs,
		jobUC:     jobUC,
		charges:   charges,
		lookups:   lookups,
		gateway:   gateway,
		payments:  payments,
		resolver:  NewJobResolver(jobs, settings.ScanWindow),
		collector: paymentCollector{gateway: gateway, payments: payments, currency: settings.Currency, now: utcNow},
		now:       utcNow,
	}
}

// Book prices the tow when no price is given, creates a payment object for
// it and then creates the job carrying the payment id. A provider failure is
// logged and the booking still goes through without a payment.
func (u *BookingUseCase) Book(ctx context.Context, in BookingInput) (BookingResult, error) {
	if err := validateBooking(in); err != nil {
		log.Printf("[booking][usecase] invalid input err=%v", err)
		return BookingResult{}, err
	}

	job := entities.JobRecord{
		BookingID:       entities.GenerateBookingID(u.now()),
		Rego:            in.Rego,
		CustomerName:    strings.TrimSpace(in.CustomerName),
		CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
		CustomerEmail:   strings.TrimSpace(in.CustomerEmail),
		PickupLocation:  strings.TrimSpace(in.PickupLocation),
		DropoffLocation: strings.TrimSpace(in.DropoffLocation),
		PickupLat:       in.PickupLat,
		PickupLng:       in.PickupLng,
		DropoffLat:      in.DropoffLat,
		DropoffLng:      in.DropoffLng,
		Make:            in.Make,
		Model:           in.Model,
		Color:           in.Color,
		Year:            in.Year,
		Notes:           in.Notes,
		Price:           in.Price,
		Status:          entities.JobStatusPending,
	}

	var result BookingResult
	if job.Price <= 0 {
		q, err := u.lookups.Quote(ctx, job.PickupLocation, job.DropoffLocation)
		if err != nil {
			return BookingResult{}, err
		}
		job.Price = q.Price
		job.DistanceMeters = q.DistanceMeters
		result.Quote = &q
	}

	p, err := u.collector.collect(ctx, job, "", job.Price, fmt.Sprintf("Tow booking %s", job.BookingID))
	if err != nil {
		log.Printf("[booking][usecase] payment not created booking_id=%s err=%v", job.BookingID, err)
	} else {
		job.PaymentID = p.ID
		job.PaymentStatus = string(p.Status)
		result.Payment = p
	}

	created, err := u.jobUC.Create(ctx, job, "customer")
	if err != nil {
		return BookingResult{}, err
	}
	result.Job = created
	log.Printf("[booking][usecase] booked booking_id=%s price=%d payment_id=%s", created.BookingID, created.Price, created.PaymentID)
	return result, nil
}

func validateBooking(in BookingInput) error {
	var missing []string
	for name, v := range map[string]string{
		"customerName":    in.CustomerName,
		"customerPhone":   in.CustomerPhone,
		"rego":            entities.NormalizeRego(in.Rego),
		"pickupLocation":  in.PickupLocation,
		"dropoffLocation": in.DropoffLocation,
	} {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return errors.Wrapf(ErrInvalidBooking, "missing %s", strings.Join(missing, ","))
	}
	if in.Price < 0 {
		return errors.Wrap(ErrInvalidBooking, "price must not be negative")
	}
	return nil
}

func (u *BookingUseCase) Track(ctx context.Context, id string) (entities.JobRecord, error) {
	return u.resolver.Resolve(ctx, id)
}

func (u *BookingUseCase) Payments(ctx context.Context, id string) ([]entities.Payment, error) {
	job, err := u.resolver.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.payments == nil {
		return []entities.Payment{}, nil
	}
	return u.payments.ListByBookingID(ctx, job.BookingID)
}

// HandlePaymentWebhook fetches the payment from the provider rather than
// trusting the notification body. Approved payments mark the referenced
// charge paid, or the booking itself paid and booked.
func (u *BookingUseCase) HandlePaymentWebhook(ctx context.Context, providerPaymentID string) (WebhookResult, error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if providerPaymentID == "" {
		return WebhookResult{}, ErrInvalidPaymentRef
	}
	if u.gateway == nil {
		return WebhookResult{}, ErrGatewayNotConfigured
	}

	pp, err := u.gateway.GetPayment(ctx, providerPaymentID)
	if err != nil {
		log.Printf("[payment][webhook] fetch failed payment_id=%s err=%v", providerPaymentID, err)
		return WebhookResult{}, errors.Mark(errors.Wrap(err, "get payment"), ErrPaymentGatewayError)
	}
	bookingID, chargeID := SplitExternalReference(pp.ExternalReference)
	if bookingID == "" {
		log.Printf("[payment][webhook] missing external reference payment_id=%s", providerPaymentID)
		return WebhookResult{}, ErrInvalidPaymentRef
	}
	result := WebhookResult{PaymentID: pp.ID, BookingID: bookingID, ChargeID: chargeID, Status: pp.Status}

	local := entities.PaymentStatusPending
	if pp.Approved() {
		local = entities.PaymentStatusApproved
	} else if pp.Status == "rejected" || pp.Status == "cancelled" {
		local = entities.PaymentStatusRejected
	}
	if u.payments != nil {
		if err := u.payments.UpdateStatus(ctx, pp.ID, local); err != nil {
			log.Printf("[payment][webhook] local status update failed payment_id=%s err=%v", pp.ID, err)
		}
	}
	if !pp.Approved() {
		log.Printf("[payment][webhook] not approved payment_id=%s status=%s", pp.ID, pp.Status)
		return result, nil
	}

	if chargeID != "" {
		if _, err := u.charges.MarkChargePaid(ctx, bookingID, chargeID, pp.ID, "payment-webhook"); err != nil {
			return WebhookResult{}, err
		}
		result.Applied = true
		log.Printf("[payment][webhook] charge paid booking_id=%s charge_id=%s payment_id=%s", bookingID, chargeID, pp.ID)
		return result, nil
	}

	job, err := u.resolver.Resolve(ctx, bookingID)
	if err != nil {
		return WebhookResult{}, err
	}
	if job.PaymentStatus == string(entities.PaymentStatusApproved) && job.PaymentID == pp.ID {
		return result, nil
	}
	now := u.now()
	job.PaymentID = pp.ID
	job.PaymentStatus = string(entities.PaymentStatusApproved)
	if job.Status == entities.JobStatusPending {
		job.Status = entities.JobStatusBooked
	}
	job.UpdatedAt = now
	job.AppendHistory(entities.ActionPaymentReceived, "payment-webhook", now, map[string]string{"paymentId": pp.ID})
	if _, err := u.jobs.Save(ctx, job); err != nil {
		return WebhookResult{}, err
	}
	result.Applied = true
	log.Printf("[payment][webhook] booking paid booking_id=%s payment_id=%s status=%s", bookingID, pp.ID, job.Status)
	return result, nil
}
