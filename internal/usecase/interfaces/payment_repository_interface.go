package interfaces

import (
	"context"

	"towdispatch/internal/domain/entities"
)

// IPaymentRepository keeps a local copy of every payment-collection object
// created with the provider.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) error
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.Payment, error)
}
