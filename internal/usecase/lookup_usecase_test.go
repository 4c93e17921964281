package usecase

import (
	"context"
	"testing"

	"towdispatch/internal/domain/entities"
	mock_interfaces "towdispatch/internal/usecase/interfaces/mocks"

	"github.com/cockroachdb/errors"
	"go.uber.org/mock/gomock"
)

func TestQuotePrice(t *testing.T) {
	p := PricingSettings{BaseFeeCents: 9500, PerKmCents: 350, IncludedKm: 10}
	tests := []struct {
		meters int64
		want   int64
	}{
		{meters: 0, want: 9500},
		{meters: 10000, want: 9500},
		{meters: 12500, want: 9500 + 875},
		{meters: 10001, want: 9500},
		{meters: 40000, want: 9500 + 30*350},
	}
	for _, tt := range tests {
		if got := QuotePrice(tt.meters, p); got != tt.want {
			t.Fatalf("QuotePrice(%d) = %d, want %d", tt.meters, got, tt.want)
		}
	}
}

func TestLookupUseCase(t *testing.T) {
	t.Run("vehicle plate is normalised", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vehicles := mock_interfaces.NewMockIVehicleLookup(ctrl)
		uc := NewLookupUseCase(vehicles, nil, PricingSettings{})

		vehicles.EXPECT().Lookup(gomock.Any(), "ABC123").Return(entities.Vehicle{Plate: "ABC123", Make: "Toyota"}, nil)

		v, err := uc.Vehicle(context.Background(), " abc 123 ")
		if err != nil || v.Make != "Toyota" {
			t.Fatalf("unexpected result: %v %+v", err, v)
		}
	})

	t.Run("empty plate", func(t *testing.T) {
		_, err := NewLookupUseCase(nil, nil, PricingSettings{}).Vehicle(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPlate) {
			t.Fatalf("expected ErrInvalidPlate, got %v", err)
		}
	})

	t.Run("distance needs two locations", func(t *testing.T) {
		_, err := NewLookupUseCase(nil, nil, PricingSettings{}).Distance(context.Background(), []string{"A", " "})
		if !errors.Is(err, ErrInvalidLocation) {
			t.Fatalf("expected ErrInvalidLocation, got %v", err)
		}
	})

	t.Run("distance provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		distances := mock_interfaces.NewMockIDistanceLookup(ctrl)
		uc := NewLookupUseCase(nil, distances, PricingSettings{})

		distances.EXPECT().Distances(gomock.Any(), gomock.Any()).Return(entities.DistanceResult{}, errors.New("quota"))

		_, err := uc.Quote(context.Background(), "A", "B")
		if !errors.Is(err, ErrDistanceLookupFailed) {
			t.Fatalf("expected ErrDistanceLookupFailed, got %v", err)
		}
	})
}
