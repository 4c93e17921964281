package repository

import (
	"context"
	"reflect"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/infrastructure/kvstore"
	"towdispatch/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
)

const (
	supplierJobKeyPrefix  = "supplier-job:"
	supplierLinkKeyPrefix = "supplier-link:"
	supplierJobsListKey   = "supplier-jobs:list"
)

// SupplierJobKVRepository persists supplier job records.
//
// Two key shapes exist for the same concept. supplier-job:<ref> is written by
// this repository; supplier-link:<ref> was written by an older offer flow
// and is only read. Get overlays the canonical record on the legacy one.
type SupplierJobKVRepository struct {
	store kvstore.Store
}

var _ interfaces.ISupplierJobRepository = (*SupplierJobKVRepository)(nil)

func NewSupplierJobKVRepository(store kvstore.Store) *SupplierJobKVRepository {
	return &SupplierJobKVRepository{store: store}
}

func (r *SupplierJobKVRepository) Create(ctx context.Context, rec entities.SupplierJobRecord) (entities.SupplierJobRecord, error) {
	saved, err := r.Save(ctx, rec)
	if err != nil {
		return entities.SupplierJobRecord{}, err
	}
	if err := r.store.LPush(ctx, supplierJobsListKey, rec.Ref); err != nil {
		return entities.SupplierJobRecord{}, err
	}
	return saved, nil
}

func (r *SupplierJobKVRepository) Get(ctx context.Context, ref string) (entities.SupplierJobRecord, error) {
	canonical, err := r.load(ctx, supplierJobKeyPrefix, ref)
	if err != nil {
		return entities.SupplierJobRecord{}, err
	}
	legacy, err := r.load(ctx, supplierLinkKeyPrefix, ref)
	if err != nil {
		return entities.SupplierJobRecord{}, err
	}

	switch {
	case canonical.Ref == "" && legacy.Ref == "":
		return entities.SupplierJobRecord{}, nil
	case legacy.Ref == "":
		return canonical, nil
	case canonical.Ref == "":
		return legacy, nil
	}
	return mergeSupplierJob(legacy, canonical), nil
}

func (r *SupplierJobKVRepository) Save(ctx context.Context, rec entities.SupplierJobRecord) (entities.SupplierJobRecord, error) {
	if rec.Ref == "" {
		return entities.SupplierJobRecord{}, errors.New("supplier job without ref")
	}
	fields, err := encodeHash(rec)
	if err != nil {
		return entities.SupplierJobRecord{}, err
	}
	if err := r.store.HSet(ctx, supplierJobKeyPrefix+rec.Ref, fields); err != nil {
		return entities.SupplierJobRecord{}, err
	}
	return rec, nil
}

func (r *SupplierJobKVRepository) ListRefs(ctx context.Context, start, stop int64) ([]string, error) {
	return r.store.LRange(ctx, supplierJobsListKey, start, stop)
}

func (r *SupplierJobKVRepository) load(ctx context.Context, prefix, ref string) (entities.SupplierJobRecord, error) {
	key := prefix + ref
	fields, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return entities.SupplierJobRecord{}, err
	}
	if len(fields) == 0 {
		return entities.SupplierJobRecord{}, nil
	}
	var rec entities.SupplierJobRecord
	if err := decodeHash(fields, &rec); err != nil {
		return entities.SupplierJobRecord{}, errors.Wrapf(err, "supplier job %s", key)
	}
	if rec.Ref == "" {
		rec.Ref = ref
	}
	return rec, nil
}

// mergeSupplierJob copies every non-zero field of over onto base.
func mergeSupplierJob(base, over entities.SupplierJobRecord) entities.SupplierJobRecord {
	bv := reflect.ValueOf(&base).Elem()
	ov := reflect.ValueOf(over)
	for i := 0; i < ov.NumField(); i++ {
		if f := ov.Field(i); !f.IsZero() {
			bv.Field(i).Set(f)
		}
	}
	return base
}
