package repository

import (
	"context"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/infrastructure/kvstore"
	"towdispatch/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
)

const (
	jobKeyPrefix      = "job:"
	bookingKeyPrefix  = "booking:"
	regoKeyPrefix     = "rego:"
	jobsListKey       = "jobs:list"
	defaultJobListCap = 1000
)

func JobKey(id string) string { return jobKeyPrefix + id }

func BookingKey(id string) string { return bookingKeyPrefix + id }

func RegoKey(rego string) string { return regoKeyPrefix + entities.NormalizeRego(rego) }

func SupplierJobsKey(name string) string { return "supplier:" + name + ":jobs" }

// JobKVRepository persists job records as hashes.
//
// Key layout:
//   - job:<bookingId>        canonical record (legacy data may sit at job:<REGO>)
//   - booking:<bookingId>    legacy record shape, read only by fallbacks and repair
//   - rego:<REGO>            list of bookingIds, newest first
//   - jobs:list              recent identifiers, newest first, trimmed to listCap
//   - supplier:<name>:jobs   bookingIds assigned to a supplier
type JobKVRepository struct {
	store   kvstore.Store
	listCap int64
}

var _ interfaces.IJobRepository = (*JobKVRepository)(nil)

func NewJobKVRepository(store kvstore.Store, listCap int64) *JobKVRepository {
	if listCap <= 0 {
		listCap = defaultJobListCap
	}
	return &JobKVRepository{store: store, listCap: listCap}
}

// Get reads job:<key>. The key is whatever the caller holds: a bookingId, or
// a plate for records written by older code paths.
func (r *JobKVRepository) Get(ctx context.Context, key string) (entities.JobRecord, error) {
	return r.load(ctx, JobKey(key))
}

func (r *JobKVRepository) GetLegacyBooking(ctx context.Context, id string) (entities.JobRecord, error) {
	return r.load(ctx, BookingKey(id))
}

func (r *JobKVRepository) load(ctx context.Context, key string) (entities.JobRecord, error) {
	fields, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return entities.JobRecord{}, err
	}
	if len(fields) == 0 {
		return entities.JobRecord{}, nil
	}

	var job entities.JobRecord
	if err := decodeHash(fields, &job); err != nil {
		return entities.JobRecord{}, errors.Wrapf(err, "job record %s", key)
	}
	if job.BookingID == "" {
		// A hash without an identity is not a job we can address.
		return entities.JobRecord{}, nil
	}
	job.StorageKey = key
	return job, nil
}

// Save rewrites the whole record at the key it was loaded from, or at
// job:<bookingId> for new records. Last writer wins.
func (r *JobKVRepository) Save(ctx context.Context, job entities.JobRecord) (entities.JobRecord, error) {
	if job.BookingID == "" {
		return entities.JobRecord{}, errors.New("job record without bookingId")
	}
	if job.StorageKey == "" {
		job.StorageKey = JobKey(job.BookingID)
	}
	fields, err := encodeHash(job)
	if err != nil {
		return entities.JobRecord{}, err
	}
	if err := r.store.HSet(ctx, job.StorageKey, fields); err != nil {
		return entities.JobRecord{}, err
	}
	return job, nil
}

func (r *JobKVRepository) DeleteKey(ctx context.Context, storageKey string) error {
	return r.store.Del(ctx, storageKey)
}

func (r *JobKVRepository) PushRecent(ctx context.Context, id string) error {
	if err := r.store.LPush(ctx, jobsListKey, id); err != nil {
		return err
	}
	return r.store.LTrim(ctx, jobsListKey, 0, r.listCap-1)
}

func (r *JobKVRepository) ListRecent(ctx context.Context, start, stop int64) ([]string, error) {
	return r.store.LRange(ctx, jobsListKey, start, stop)
}

// ReplaceRecent rebuilds jobs:list in the given order (newest first).
func (r *JobKVRepository) ReplaceRecent(ctx context.Context, ids []string) error {
	if err := r.store.Del(ctx, jobsListKey); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	if int64(len(ids)) > r.listCap {
		ids = ids[:r.listCap]
	}
	return r.store.RPush(ctx, jobsListKey, ids...)
}

func (r *JobKVRepository) PushRego(ctx context.Context, rego, bookingID string) error {
	return r.store.LPush(ctx, RegoKey(rego), bookingID)
}

func (r *JobKVRepository) LatestForRego(ctx context.Context, rego string) (string, error) {
	ids, err := r.store.LRange(ctx, RegoKey(rego), 0, 0)
	if err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", nil
	}
	return ids[0], nil
}

func (r *JobKVRepository) PushSupplierJob(ctx context.Context, supplierName, bookingID string) error {
	return r.store.LPush(ctx, SupplierJobsKey(supplierName), bookingID)
}

func (r *JobKVRepository) ListSupplierJobs(ctx context.Context, supplierName string) ([]string, error) {
	return r.store.LRange(ctx, SupplierJobsKey(supplierName), 0, -1)
}
