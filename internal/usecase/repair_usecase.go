package usecase

import (
	"context"
	"log"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase/interfaces"
)

// IRepairUseCase fixes job records stored under keys other than their
// bookingId and rebuilds jobs:list.
type IRepairUseCase interface {
	RepairJobKeys(ctx context.Context, dryRun bool) (entities.RepairReport, error)
}

type RepairUseCase struct {
	jobs interfaces.IJobRepository
}

var _ IRepairUseCase = (*RepairUseCase)(nil)

func NewRepairUseCase(jobs interfaces.IJobRepository) *RepairUseCase {
	return &RepairUseCase{jobs: jobs}
}

// RepairJobKeys walks the whole of jobs:list:
//   - job:<entry> holding bookingId == entry is left alone
//   - job:<entry> holding another bookingId is copied to job:<bookingId>
//     and the old key deleted
//   - booking:<entry> alone is moved the same way
//   - entries with no record are dropped
//
// The list is rewritten with bookingIds in the original order, duplicates
// removed. A canonical record that already exists is never overwritten; the
// stray copy is left in place and only the list entry is rewritten.
// With dryRun nothing is written.
func (u *RepairUseCase) RepairJobKeys(ctx context.Context, dryRun bool) (entities.RepairReport, error) {
	entries, err := u.jobs.ListRecent(ctx, 0, -1)
	if err != nil {
		return entities.RepairReport{}, err
	}

	report := entities.RepairReport{DryRun: dryRun}
	seen := make(map[string]bool, len(entries))
	rebuilt := make([]string, 0, len(entries))
	keep := func(id string) {
		if seen[id] {
			report.Duplicates++
			return
		}
		seen[id] = true
		rebuilt = append(rebuilt, id)
	}

	for _, entry := range entries {
		report.Scanned++

		job, err := u.jobs.Get(ctx, entry)
		if err != nil {
			return entities.RepairReport{}, err
		}
		if job.BookingID == entry {
			report.Canonical++
			keep(entry)
			continue
		}
		if job.BookingID != "" {
			if err := u.move(ctx, job, dryRun, &report); err != nil {
				return entities.RepairReport{}, err
			}
			report.Moved++
			keep(job.BookingID)
			continue
		}

		legacy, err := u.jobs.GetLegacyBooking(ctx, entry)
		if err != nil {
			return entities.RepairReport{}, err
		}
		if legacy.BookingID != "" {
			if err := u.move(ctx, legacy, dryRun, &report); err != nil {
				return entities.RepairReport{}, err
			}
			report.MovedLegacy++
			keep(legacy.BookingID)
			continue
		}

		report.Dropped++
		log.Printf("[repair][usecase] dropping dangling entry=%s", entry)
	}

	report.ListSize = len(rebuilt)
	if !dryRun {
		if err := u.jobs.ReplaceRecent(ctx, rebuilt); err != nil {
			return entities.RepairReport{}, err
		}
	}
	log.Printf("[repair][usecase] done dry_run=%t scanned=%d canonical=%d moved=%d moved_legacy=%d dropped=%d duplicates=%d",
		dryRun, report.Scanned, report.Canonical, report.Moved, report.MovedLegacy, report.Dropped, report.Duplicates)
	return report, nil
}

func (u *RepairUseCase) move(ctx context.Context, job entities.JobRecord, dryRun bool, report *entities.RepairReport) error {
	from := job.StorageKey
	existing, err := u.jobs.Get(ctx, job.BookingID)
	if err != nil {
		return err
	}
	if existing.BookingID != "" {
		report.Moves = append(report.Moves, from+" (kept, canonical exists)")
		return nil
	}

	job.StorageKey = ""
	if dryRun {
		report.Moves = append(report.Moves, from+" -> job:"+job.BookingID)
		return nil
	}
	saved, err := u.jobs.Save(ctx, job)
	if err != nil {
		return err
	}
	if err := u.jobs.DeleteKey(ctx, from); err != nil {
		return err
	}
	report.Moves = append(report.Moves, from+" -> "+saved.StorageKey)
	log.Printf("[repair][usecase] moved from=%s to=%s", from, saved.StorageKey)
	return nil
}
