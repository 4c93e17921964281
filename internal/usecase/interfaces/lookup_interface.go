package interfaces

import (
	"context"

	"towdispatch/internal/domain/entities"
)

// IVehicleLookup resolves a plate to vehicle details. Implementations fall
// back to demo data instead of failing.
type IVehicleLookup interface {
	Lookup(ctx context.Context, plate string) (entities.Vehicle, error)
}

// IDistanceLookup returns road distances between consecutive locations.
type IDistanceLookup interface {
	Distances(ctx context.Context, locations []string) (entities.DistanceResult, error)
}
