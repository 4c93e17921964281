package interfaces

import (
	"context"

	"towdispatch/internal/domain/entities"
)

// IJobRepository abstracts KV persistence for job records and the lists that
// index them.
//
// Reads return a zero JobRecord (empty BookingID) and a nil error on a miss.
// Every method touches exactly one key; callers compose multi-key writes.
type IJobRepository interface {
	Get(ctx context.Context, key string) (entities.JobRecord, error)
	GetLegacyBooking(ctx context.Context, id string) (entities.JobRecord, error)
	Save(ctx context.Context, job entities.JobRecord) (entities.JobRecord, error)
	DeleteKey(ctx context.Context, storageKey string) error

	PushRecent(ctx context.Context, id string) error
	ListRecent(ctx context.Context, start, stop int64) ([]string, error)
	ReplaceRecent(ctx context.Context, ids []string) error

	PushRego(ctx context.Context, rego, bookingID string) error
	LatestForRego(ctx context.Context, rego string) (string, error)

	PushSupplierJob(ctx context.Context, supplierName, bookingID string) error
	ListSupplierJobs(ctx context.Context, supplierName string) ([]string, error)
}
