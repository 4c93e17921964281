package repository

import (
	"context"
	"strconv"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/infrastructure/kvstore"
	"towdispatch/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
)

const (
	paymentKeyPrefix         = "payment:"
	bookingPaymentsKeyPrefix = "payments:"
)

// PaymentKVRepository persists provider payment objects.
//
// Key layout:
//   - payment:<id>          the payment hash
//   - payments:<bookingId>  payment ids for a booking, newest first
type PaymentKVRepository struct {
	store kvstore.Store
}

var _ interfaces.IPaymentRepository = (*PaymentKVRepository)(nil)

func NewPaymentKVRepository(store kvstore.Store) *PaymentKVRepository {
	return &PaymentKVRepository{store: store}
}

func (r *PaymentKVRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if p.ID == "" {
		return entities.Payment{}, errors.New("payment without id")
	}
	fields, err := encodeHash(p)
	if err != nil {
		return entities.Payment{}, err
	}
	if err := r.store.HSet(ctx, paymentKeyPrefix+p.ID, fields); err != nil {
		return entities.Payment{}, err
	}
	if p.BookingID != "" {
		if err := r.store.LPush(ctx, bookingPaymentsKeyPrefix+p.BookingID, p.ID); err != nil {
			return entities.Payment{}, err
		}
	}
	return p, nil
}

func (r *PaymentKVRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	fields, err := r.store.HGetAll(ctx, paymentKeyPrefix+id)
	if err != nil {
		return entities.Payment{}, err
	}
	if len(fields) == 0 {
		return entities.Payment{}, nil
	}
	var p entities.Payment
	if err := decodeHash(fields, &p); err != nil {
		return entities.Payment{}, errors.Wrapf(err, "payment %s", id)
	}
	return p, nil
}

// UpdateStatus touches only the status field of an existing payment.
func (r *PaymentKVRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) error {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return nil
	}
	return r.store.HSet(ctx, paymentKeyPrefix+id, map[string]string{"status": strconv.Quote(string(status))})
}

func (r *PaymentKVRepository) ListByBookingID(ctx context.Context, bookingID string) ([]entities.Payment, error) {
	ids, err := r.store.LRange(ctx, bookingPaymentsKeyPrefix+bookingID, 0, -1)
	if err != nil {
		return nil, err
	}
	items := make([]entities.Payment, 0, len(ids))
	for _, id := range ids {
		p, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if p.ID == "" {
			continue
		}
		items = append(items, p)
	}
	return items, nil
}
