package usecase

import (
	"context"
	"log"
	"strings"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase/interfaces"
)

// DefaultScanWindow is how many jobs:list entries the fallback scan reads.
const DefaultScanWindow = 500

// JobResolver locates job records by bookingId or plate.
//
// Lookup order for Resolve:
//  1. job:<id>
//  2. rego:<ID> newest entry (range 0..0), then job:<that>
//  3. when id looks like a bookingId, the first scanWindow entries of
//     jobs:list, comparing each record's bookingId
//
// A job outside the scan window whose direct key is missing is reported as
// not found, same as a job that never existed.
type JobResolver struct {
	jobs       interfaces.IJobRepository
	scanWindow int64
}

func NewJobResolver(jobs interfaces.IJobRepository, scanWindow int64) *JobResolver {
	if scanWindow <= 0 {
		scanWindow = DefaultScanWindow
	}
	return &JobResolver{jobs: jobs, scanWindow: scanWindow}
}

func (r *JobResolver) Resolve(ctx context.Context, id string) (entities.JobRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.JobRecord{}, ErrInvalidJobID
	}

	job, err := r.jobs.Get(ctx, id)
	if err != nil {
		return entities.JobRecord{}, err
	}
	if job.BookingID != "" {
		return job, nil
	}

	job, err = r.byRego(ctx, id)
	if err != nil {
		return entities.JobRecord{}, err
	}
	if job.BookingID != "" {
		return job, nil
	}

	if !entities.LooksLikeBookingID(id) {
		log.Printf("[job][resolver] not found id=%s", id)
		return entities.JobRecord{}, ErrJobNotFound
	}

	job, err = r.scan(ctx, r.scanWindow-1, func(j entities.JobRecord) bool {
		return strings.EqualFold(j.BookingID, id)
	})
	if err != nil {
		return entities.JobRecord{}, err
	}
	if job.BookingID == "" {
		log.Printf("[job][resolver] not found after scan id=%s window=%d", id, r.scanWindow)
		return entities.JobRecord{}, ErrJobNotFound
	}
	log.Printf("[job][resolver] found by scan id=%s key=%s", id, job.StorageKey)
	return job, nil
}

// ResolveByFullScan walks the whole of jobs:list comparing bookingId or
// plate. Supplier assignment locates jobs this way and never consults the
// direct key or the rego index.
func (r *JobResolver) ResolveByFullScan(ctx context.Context, id string) (entities.JobRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.JobRecord{}, ErrInvalidJobID
	}
	rego := entities.NormalizeRego(id)

	job, err := r.scan(ctx, -1, func(j entities.JobRecord) bool {
		return strings.EqualFold(j.BookingID, id) || entities.NormalizeRego(j.Rego) == rego
	})
	if err != nil {
		return entities.JobRecord{}, err
	}
	if job.BookingID == "" {
		log.Printf("[job][resolver] full scan miss id=%s", id)
		return entities.JobRecord{}, ErrJobNotFound
	}
	return job, nil
}

// ResolveForCancel tries job:<id>, then the rego index, then booking:<id>.
func (r *JobResolver) ResolveForCancel(ctx context.Context, id string) (entities.JobRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.JobRecord{}, ErrInvalidJobID
	}

	job, err := r.jobs.Get(ctx, id)
	if err != nil {
		return entities.JobRecord{}, err
	}
	if job.BookingID != "" {
		return job, nil
	}

	job, err = r.byRego(ctx, id)
	if err != nil {
		return entities.JobRecord{}, err
	}
	if job.BookingID != "" {
		return job, nil
	}

	job, err = r.jobs.GetLegacyBooking(ctx, id)
	if err != nil {
		return entities.JobRecord{}, err
	}
	if job.BookingID == "" {
		return entities.JobRecord{}, ErrJobNotFound
	}
	return job, nil
}

func (r *JobResolver) byRego(ctx context.Context, id string) (entities.JobRecord, error) {
	latest, err := r.jobs.LatestForRego(ctx, entities.NormalizeRego(id))
	if err != nil || latest == "" {
		return entities.JobRecord{}, err
	}
	return r.jobs.Get(ctx, latest)
}

func (r *JobResolver) scan(ctx context.Context, stop int64, match func(entities.JobRecord) bool) (entities.JobRecord, error) {
	entries, err := r.jobs.ListRecent(ctx, 0, stop)
	if err != nil {
		return entities.JobRecord{}, err
	}
	for _, entry := range entries {
		job, err := r.jobs.Get(ctx, entry)
		if err != nil {
			return entities.JobRecord{}, err
		}
		if job.BookingID != "" && match(job) {
			return job, nil
		}
	}
	return entities.JobRecord{}, nil
}
