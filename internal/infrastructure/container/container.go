package container

import (
	"context"
	"log"
	"strings"
	"time"

	"towdispatch/internal/adapter/persistence/repository"
	"towdispatch/internal/infrastructure/config"
	"towdispatch/internal/infrastructure/database"
	"towdispatch/internal/infrastructure/distance"
	"towdispatch/internal/infrastructure/kvstore"
	"towdispatch/internal/infrastructure/notifications"
	"towdispatch/internal/infrastructure/payments"
	"towdispatch/internal/infrastructure/vehicles"
	"towdispatch/internal/usecase"
	"towdispatch/internal/usecase/interfaces"
)

// Container holds the wired usecases shared by the API and towctl.
type Container struct {
	Config *config.Config
	Store  kvstore.Store

	Jobs         usecase.IJobUseCase
	Charges      usecase.IChargeUseCase
	Bookings     usecase.IBookingUseCase
	Lookups      usecase.ILookupUseCase
	SupplierJobs usecase.ISupplierJobUseCase
	Visitors     usecase.IVisitorUseCase
	Repair       usecase.IRepairUseCase
	Outbox       usecase.IOutboxUseCase
	Payouts      usecase.IPayoutUseCase
}

// Build opens the configured store and wires every usecase on top of it.
// The returned close func releases the store connection.
func Build(ctx context.Context, cfg *config.Config) (*Container, func(), error) {
	store, closeStore, err := database.OpenStore(ctx, cfg.KV)
	if err != nil {
		return nil, func() {}, err
	}
	return BuildWithStore(cfg, store), closeStore, nil
}

func BuildWithStore(cfg *config.Config, store kvstore.Store) *Container {
	jobRepo := repository.NewJobKVRepository(store, cfg.Jobs.ListCap)
	supplierJobRepo := repository.NewSupplierJobKVRepository(store)
	outboxRepo := repository.NewOutboxKVRepository(store)
	paymentRepo := repository.NewPaymentKVRepository(store)
	visitorRepo := repository.NewVisitorKVRepository(store)

	notifier := notifications.NewNotifier(cfg.Graph)
	vehicleLookup := vehicles.NewCarJamLookup(cfg.CarJam, nil)
	distanceLookup := distance.NewGoogleDistance(cfg.Google, nil)

	var gateway interfaces.IPaymentGateway
	webhookURL := strings.TrimRight(cfg.PublicBaseURL, "/") + "/v1/payments/webhook"
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments.AccessToken, webhookURL)
	if err != nil {
		log.Printf("[container] Mercado Pago gateway not configured: %v", err)
	} else {
		gateway = mpGateway
	}

	paymentSettings := usecase.PaymentSettings{Currency: cfg.Currency, ScanWindow: cfg.Jobs.ScanWindow}

	jobs := usecase.NewJobUseCase(jobRepo, supplierJobRepo, outboxRepo, notifier, usecase.JobSettings{
		ScanWindow:    cfg.Jobs.ScanWindow,
		PublicBaseURL: cfg.PublicBaseURL,
	})
	charges := usecase.NewChargeUseCase(jobRepo, gateway, paymentRepo, paymentSettings)
	lookups := usecase.NewLookupUseCase(vehicleLookup, distanceLookup, usecase.PricingSettings{
		BaseFeeCents: cfg.Pricing.BaseFeeCents,
		PerKmCents:   cfg.Pricing.PerKmCents,
		IncludedKm:   cfg.Pricing.IncludedKm,
		Currency:     cfg.Currency,
	})
	bookings := usecase.NewBookingUseCase(jobRepo, jobs, charges, lookups, gateway, paymentRepo, paymentSettings)

	return &Container{
		Config:       cfg,
		Store:        store,
		Jobs:         jobs,
		Charges:      charges,
		Bookings:     bookings,
		Lookups:      lookups,
		SupplierJobs: usecase.NewSupplierJobUseCase(supplierJobRepo, jobRepo, cfg.Jobs.ScanWindow),
		Visitors:     usecase.NewVisitorUseCase(visitorRepo, time.Duration(cfg.Visitor.TTLHours)*time.Hour),
		Repair:       usecase.NewRepairUseCase(jobRepo),
		Outbox: usecase.NewOutboxDispatcher(outboxRepo, jobRepo, notifier, usecase.OutboxSettings{
			MaxAttempts:   cfg.Outbox.MaxAttempts,
			RatePerSecond: cfg.Outbox.RatePerSecond,
			PublicBaseURL: cfg.PublicBaseURL,
			ScanWindow:    cfg.Jobs.ScanWindow,
			Retry:         usecase.DefaultRetryConfig(),
		}),
		Payouts: usecase.NewPayoutUseCase(supplierJobRepo, usecase.PayoutSettings{
			PayerAccount: cfg.Payout.PayerAccount,
			PayerName:    cfg.Payout.PayerName,
		}),
	}
}
