package interfaces

import (
	"context"

	"towdispatch/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// CreatePayment returns the provider identifier that is later stored as a
// charge transactionId and used to reconcile webhook events.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.ProviderPayment, error)
	GetPayment(ctx context.Context, providerPaymentID string) (entities.ProviderPayment, error)
}
