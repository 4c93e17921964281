package usecase

import (
	"context"
	"testing"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/infrastructure/kvstore"
	mock_interfaces "towdispatch/internal/usecase/interfaces/mocks"

	"github.com/cockroachdb/errors"
	"go.uber.org/mock/gomock"
)

// offeredJob creates a job and offers it to a supplier, returning the ref.
func offeredJob(t *testing.T, env *testEnv, bookingID string) string {
	t.Helper()
	env.mustCreate(t, entities.JobRecord{BookingID: bookingID, Rego: "SJ1", PickupLocation: "A", DropoffLocation: "B"})
	job, err := env.jobUseCase().AssignSupplier(context.Background(), bookingID, AssignSupplierInput{
		Supplier: entities.SupplierAssignment{Name: "Sam's Towing", Price: 8000, Email: "sam@tow.example"},
		Notify:   true,
		By:       "admin",
	})
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	return job.SupplierRef
}

func TestSupplierJobUseCase_Accept(t *testing.T) {
	env := newTestEnv(t)
	ref := offeredJob(t, env, "HT-ACC")
	uc := NewSupplierJobUseCase(env.supplierJobs, env.jobs, 10)

	rec, err := uc.Accept(context.Background(), ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Status != entities.SupplierJobStatusAccepted || rec.RespondedAt == nil {
		t.Fatalf("unexpected supplier job: %+v", rec)
	}
	job := env.mustGetJob(t, "HT-ACC")
	if job.Status != entities.JobStatusAssigned {
		t.Fatalf("expected assigned, got %s", job.Status)
	}
	if last := job.History[len(job.History)-1]; last.Action != entities.ActionSupplierAccepted {
		t.Fatalf("expected supplier_accepted, got %s", last.Action)
	}

	again, err := uc.Accept(context.Background(), ref)
	if err != nil || again.Status != entities.SupplierJobStatusAccepted {
		t.Fatalf("expected accept to be repeatable, got %v %+v", err, again)
	}
}

func TestSupplierJobUseCase_Decline(t *testing.T) {
	t.Run("reverts the main job", func(t *testing.T) {
		env := newTestEnv(t)
		ref := offeredJob(t, env, "HT-DEC")
		uc := NewSupplierJobUseCase(env.supplierJobs, env.jobs, 10)

		rec, err := uc.Decline(context.Background(), ref, "no trucks free")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Status != entities.SupplierJobStatusDeclined || rec.DeclineReason != "no trucks free" {
			t.Fatalf("unexpected supplier job: %+v", rec)
		}
		job := env.mustGetJob(t, "HT-DEC")
		if job.Status != entities.JobStatusBooked || job.SupplierName() != "" || job.SupplierRef != "" {
			t.Fatalf("unexpected job: status=%s supplier=%q ref=%q", job.Status, job.SupplierName(), job.SupplierRef)
		}
		last := job.History[len(job.History)-1]
		if last.Action != entities.ActionSupplierDeclined || last.Data["reason"] != "no trucks free" {
			t.Fatalf("unexpected history entry: %+v", last)
		}
	})

	// A crash between the two writes leaves the supplier job declined while
	// the main job still shows the supplier. Nothing reconciles the pair.
	t.Run("crash between the writes", func(t *testing.T) {
		store := &failingStore{Store: kvstore.NewMemoryStore()}
		env := newTestEnvWithStore(t, store)
		ref := offeredJob(t, env, "HT-CRASH")
		uc := NewSupplierJobUseCase(env.supplierJobs, env.jobs, 10)

		store.arm("job:")
		_, err := uc.Decline(context.Background(), ref, "broken winch")
		if err == nil {
			t.Fatalf("expected the main job write to fail")
		}
		store.disarm()

		rec, err := env.supplierJobs.Get(context.Background(), ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Status != entities.SupplierJobStatusDeclined {
			t.Fatalf("expected supplier job declined, got %s", rec.Status)
		}
		job := env.mustGetJob(t, "HT-CRASH")
		if job.Status != entities.JobStatusAwaitingSupplier || job.SupplierName() != "Sam's Towing" {
			t.Fatalf("expected main job untouched, got status=%s supplier=%q", job.Status, job.SupplierName())
		}

		_, err = uc.Decline(context.Background(), ref, "retry")
		if !errors.Is(err, ErrInvalidSupplierJobState) {
			t.Fatalf("expected retry to be refused, got %v", err)
		}
	})

	t.Run("main job reassigned since", func(t *testing.T) {
		env := newTestEnv(t)
		ref := offeredJob(t, env, "HT-RE")
		if _, err := env.jobUseCase().AssignSupplier(context.Background(), "HT-RE", AssignSupplierInput{
			Supplier: entities.SupplierAssignment{Name: "Other Tow"},
			Notify:   true,
		}); err != nil {
			t.Fatalf("reassign: %v", err)
		}
		uc := NewSupplierJobUseCase(env.supplierJobs, env.jobs, 10)

		if _, err := uc.Decline(context.Background(), ref, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		job := env.mustGetJob(t, "HT-RE")
		if job.SupplierName() != "Other Tow" || job.Status != entities.JobStatusAwaitingSupplier {
			t.Fatalf("expected the newer offer to stand, got %s %q", job.Status, job.SupplierName())
		}
	})

	t.Run("unknown ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplierJobRepository(ctrl)
		uc := NewSupplierJobUseCase(repo, nil, 10)

		repo.EXPECT().Get(gomock.Any(), "ZZZZZZ").Return(entities.SupplierJobRecord{}, nil)

		_, err := uc.Decline(context.Background(), "zzzzzz", "")
		if !errors.Is(err, ErrSupplierJobNotFound) {
			t.Fatalf("expected ErrSupplierJobNotFound, got %v", err)
		}
	})
}

func TestSupplierJobUseCase_SubmitInvoice(t *testing.T) {
	valid := SubmitInvoiceInput{Number: "INV-77", Amount: 8000, BankAccount: "12-3456-7890123-00"}

	t.Run("records the invoice on both records", func(t *testing.T) {
		env := newTestEnv(t)
		ref := offeredJob(t, env, "HT-INV")
		uc := NewSupplierJobUseCase(env.supplierJobs, env.jobs, 10)
		if _, err := uc.Accept(context.Background(), ref); err != nil {
			t.Fatalf("accept: %v", err)
		}

		rec, err := uc.SubmitInvoice(context.Background(), ref, valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Status != entities.SupplierJobStatusInvoiced || rec.Invoice == nil || rec.Invoice.BankAccount != "12-3456-7890123-00" {
			t.Fatalf("unexpected supplier job: %+v", rec)
		}
		job := env.mustGetJob(t, "HT-INV")
		if job.SupplierInvoiceRef != "INV-77" {
			t.Fatalf("expected supplierInvoiceRef INV-77, got %q", job.SupplierInvoiceRef)
		}
	})

	t.Run("not accepted yet", func(t *testing.T) {
		env := newTestEnv(t)
		ref := offeredJob(t, env, "HT-INV2")
		uc := NewSupplierJobUseCase(env.supplierJobs, env.jobs, 10)

		_, err := uc.SubmitInvoice(context.Background(), ref, valid)
		if !errors.Is(err, ErrInvalidSupplierJobState) {
			t.Fatalf("expected ErrInvalidSupplierJobState, got %v", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		uc := NewSupplierJobUseCase(nil, nil, 10)
		for name, in := range map[string]SubmitInvoiceInput{
			"missing number": {Amount: 100, BankAccount: valid.BankAccount},
			"zero amount":    {Number: "1", BankAccount: valid.BankAccount},
			"bad account":    {Number: "1", Amount: 100, BankAccount: "12-34"},
		} {
			t.Run(name, func(t *testing.T) {
				_, err := uc.SubmitInvoice(context.Background(), "ABCDEF", in)
				if !errors.Is(err, ErrInvalidInvoice) {
					t.Fatalf("expected ErrInvalidInvoice, got %v", err)
				}
			})
		}
	})
}

func TestSupplierJobUseCase_CancelledJob(t *testing.T) {
	// closeJob cancels the job without going through Cancel, leaving the
	// offer open the way records written before offers were withdrawn are.
	closeJob := func(t *testing.T, env *testEnv, id string) {
		t.Helper()
		job := env.mustGetJob(t, id)
		job.Status = entities.JobStatusCancelled
		if _, err := env.jobs.Save(context.Background(), job); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	t.Run("cancel withdraws the open offer", func(t *testing.T) {
		env := newTestEnv(t)
		ref := offeredJob(t, env, "HT-WD")
		if _, err := env.jobUseCase().Cancel(context.Background(), "HT-WD", CancelJobInput{By: "admin"}); err != nil {
			t.Fatalf("cancel: %v", err)
		}
		rec, err := env.supplierJobs.Get(context.Background(), ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Status != entities.SupplierJobStatusWithdrawn {
			t.Fatalf("expected withdrawn, got %s", rec.Status)
		}

		uc := NewSupplierJobUseCase(env.supplierJobs, env.jobs, 10)
		_, err = uc.Accept(context.Background(), ref)
		if !errors.Is(err, ErrInvalidSupplierJobState) {
			t.Fatalf("expected ErrInvalidSupplierJobState, got %v", err)
		}
		if job := env.mustGetJob(t, "HT-WD"); job.Status != entities.JobStatusCancelled {
			t.Fatalf("expected cancelled, got %s", job.Status)
		}
	})

	t.Run("accept refused behind an open offer", func(t *testing.T) {
		env := newTestEnv(t)
		ref := offeredJob(t, env, "HT-ACX")
		closeJob(t, env, "HT-ACX")
		uc := NewSupplierJobUseCase(env.supplierJobs, env.jobs, 10)

		_, err := uc.Accept(context.Background(), ref)
		if !errors.Is(err, ErrInvalidSupplierJobState) {
			t.Fatalf("expected ErrInvalidSupplierJobState, got %v", err)
		}
		rec, err := env.supplierJobs.Get(context.Background(), ref)
		if err != nil || rec.Status != entities.SupplierJobStatusOffered {
			t.Fatalf("expected offer untouched, got %s (%v)", rec.Status, err)
		}
		if job := env.mustGetJob(t, "HT-ACX"); job.Status != entities.JobStatusCancelled {
			t.Fatalf("expected cancelled, got %s", job.Status)
		}
	})

	t.Run("decline leaves the job cancelled", func(t *testing.T) {
		env := newTestEnv(t)
		ref := offeredJob(t, env, "HT-DCX")
		closeJob(t, env, "HT-DCX")
		uc := NewSupplierJobUseCase(env.supplierJobs, env.jobs, 10)

		rec, err := uc.Decline(context.Background(), ref, "too late")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Status != entities.SupplierJobStatusDeclined {
			t.Fatalf("expected declined, got %s", rec.Status)
		}
		job := env.mustGetJob(t, "HT-DCX")
		if job.Status != entities.JobStatusCancelled {
			t.Fatalf("expected cancelled, got %s", job.Status)
		}
		if last := job.History[len(job.History)-1]; last.Action == entities.ActionSupplierDeclined {
			t.Fatalf("expected no decline entry on a cancelled job")
		}
	})
}
