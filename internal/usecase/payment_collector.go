package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
)

var (
	ErrPaymentGatewayError  = errors.New("payment gateway error")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrInvalidPaymentRef    = errors.New("invalid payment reference")
)

type PaymentSettings struct {
	Currency   string
	ScanWindow int64
}

// paymentCollector creates provider payment objects and keeps a local copy.
type paymentCollector struct {
	gateway  interfaces.IPaymentGateway
	payments interfaces.IPaymentRepository
	currency string
	now      func() time.Time
}

// ExternalReference links a provider payment back to a booking, or to one
// charge on it as <bookingId>:<chargeId>.
func ExternalReference(bookingID, chargeID string) string {
	if chargeID == "" {
		return bookingID
	}
	return bookingID + ":" + chargeID
}

func SplitExternalReference(ref string) (bookingID, chargeID string) {
	bookingID, chargeID, _ = strings.Cut(strings.TrimSpace(ref), ":")
	return bookingID, chargeID
}

func (c paymentCollector) collect(ctx context.Context, job entities.JobRecord, chargeID string, amount int64, description string) (entities.Payment, error) {
	if c.gateway == nil {
		return entities.Payment{}, ErrGatewayNotConfigured
	}
	ref := ExternalReference(job.BookingID, chargeID)
	metadata := map[string]string{"booking_id": job.BookingID, "rego": job.Rego}
	if chargeID != "" {
		metadata["charge_id"] = chargeID
	}

	pp, err := c.gateway.CreatePayment(ctx, entities.PaymentRequest{
		Amount:            amount,
		Currency:          c.currency,
		Description:       description,
		ReceiverEmail:     job.CustomerEmail,
		ExternalReference: ref,
		Metadata:          metadata,
	})
	if err != nil {
		log.Printf("[payment][usecase] create failed external_reference=%s err=%v", ref, err)
		return entities.Payment{}, errors.Mark(errors.Wrap(err, "create payment"), ErrPaymentGatewayError)
	}

	status := entities.PaymentStatusPending
	if pp.Approved() {
		status = entities.PaymentStatusApproved
	}
	p := entities.Payment{
		ID:                 pp.ID,
		BookingID:          job.BookingID,
		ChargeID:           chargeID,
		Amount:             amount,
		Currency:           c.currency,
		Status:             status,
		ClientSecret:       pp.ClientSecret,
		Date:               c.now(),
		ProviderPayloadRaw: pp.Raw,
	}
	if c.payments != nil {
		if _, err := c.payments.Create(ctx, p); err != nil {
			log.Printf("[payment][usecase] local copy failed payment_id=%s err=%v", p.ID, err)
		}
	}
	log.Printf("[payment][usecase] create success external_reference=%s payment_id=%s status=%s", ref, p.ID, p.Status)
	return p, nil
}
