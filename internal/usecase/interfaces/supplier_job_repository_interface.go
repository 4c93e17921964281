package interfaces

import (
	"context"

	"towdispatch/internal/domain/entities"
)

// ISupplierJobRepository abstracts persistence for supplier-facing job
// records. Get merges the canonical and legacy key shapes.
type ISupplierJobRepository interface {
	Create(ctx context.Context, rec entities.SupplierJobRecord) (entities.SupplierJobRecord, error)
	Get(ctx context.Context, ref string) (entities.SupplierJobRecord, error)
	Save(ctx context.Context, rec entities.SupplierJobRecord) (entities.SupplierJobRecord, error)
	ListRefs(ctx context.Context, start, stop int64) ([]string, error)
}
