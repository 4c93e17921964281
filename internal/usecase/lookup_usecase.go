package usecase

import (
	"context"
	"log"
	"strings"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidLocation      = errors.New("invalid location")
	ErrInvalidPlate         = errors.New("invalid plate")
	ErrDistanceLookupFailed = errors.New("distance lookup failed")
)

// PricingSettings drive quotes: base + perKm * max(0, km - includedKm).
type PricingSettings struct {
	BaseFeeCents int64
	PerKmCents   int64
	IncludedKm   int64
	Currency     string
}

// ILookupUseCase wraps the vehicle and distance providers and prices tows.
type ILookupUseCase interface {
	Quote(ctx context.Context, pickup, dropoff string) (entities.Quote, error)
	Vehicle(ctx context.Context, plate string) (entities.Vehicle, error)
	Distance(ctx context.Context, locations []string) (entities.DistanceResult, error)
}

type LookupUseCase struct {
	vehicles  interfaces.IVehicleLookup
	distances interfaces.IDistanceLookup
	pricing   PricingSettings
}

var _ ILookupUseCase = (*LookupUseCase)(nil)

func NewLookupUseCase(vehicles interfaces.IVehicleLookup, distances interfaces.IDistanceLookup, pricing PricingSettings) *LookupUseCase {
	return &LookupUseCase{vehicles: vehicles, distances: distances, pricing: pricing}
}

func (u *LookupUseCase) Quote(ctx context.Context, pickup, dropoff string) (entities.Quote, error) {
	pickup, dropoff = strings.TrimSpace(pickup), strings.TrimSpace(dropoff)
	if pickup == "" || dropoff == "" {
		return entities.Quote{}, ErrInvalidLocation
	}
	d, err := u.Distance(ctx, []string{pickup, dropoff})
	if err != nil {
		return entities.Quote{}, err
	}
	q := entities.Quote{
		Pickup:         pickup,
		Dropoff:        dropoff,
		DistanceMeters: d.TotalMeters,
		Price:          QuotePrice(d.TotalMeters, u.pricing),
		Currency:       u.pricing.Currency,
		Demo:           d.Demo,
	}
	log.Printf("[lookup][usecase] quote distance_m=%d price=%d demo=%t", q.DistanceMeters, q.Price, q.Demo)
	return q, nil
}

// QuotePrice returns the tow price in cents, rounded to the nearest cent.
func QuotePrice(meters int64, p PricingSettings) int64 {
	km := decimal.New(meters, -3)
	billable := km.Sub(decimal.NewFromInt(p.IncludedKm))
	if billable.IsNegative() {
		billable = decimal.Zero
	}
	return decimal.NewFromInt(p.BaseFeeCents).
		Add(billable.Mul(decimal.NewFromInt(p.PerKmCents))).
		Round(0).
		IntPart()
}

func (u *LookupUseCase) Vehicle(ctx context.Context, plate string) (entities.Vehicle, error) {
	plate = entities.NormalizeRego(plate)
	if plate == "" {
		return entities.Vehicle{}, ErrInvalidPlate
	}
	return u.vehicles.Lookup(ctx, plate)
}

func (u *LookupUseCase) Distance(ctx context.Context, locations []string) (entities.DistanceResult, error) {
	clean := make([]string, 0, len(locations))
	for _, l := range locations {
		if l = strings.TrimSpace(l); l != "" {
			clean = append(clean, l)
		}
	}
	if len(clean) < 2 {
		return entities.DistanceResult{}, ErrInvalidLocation
	}
	d, err := u.distances.Distances(ctx, clean)
	if err != nil {
		log.Printf("[lookup][usecase] distance failed locations=%d err=%v", len(clean), err)
		return entities.DistanceResult{}, errors.Mark(err, ErrDistanceLookupFailed)
	}
	return d, nil
}
