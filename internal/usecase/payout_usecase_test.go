package usecase

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"towdispatch/internal/domain/entities"

	"github.com/cockroachdb/errors"
)

func seedInvoiced(t *testing.T, env *testEnv, ref, name, account string, amount int64, status entities.SupplierJobStatus) {
	t.Helper()
	rec := entities.SupplierJobRecord{
		Ref:          ref,
		BookingID:    "HT-" + ref,
		SupplierName: name,
		Status:       status,
		Invoice:      &entities.SupplierInvoice{Number: "INV-" + ref, Amount: amount, BankAccount: account},
	}
	if _, err := env.supplierJobs.Create(context.Background(), rec); err != nil {
		t.Fatalf("seed %s: %v", ref, err)
	}
}

func TestPayoutUseCase_ExportDLO(t *testing.T) {
	settings := PayoutSettings{PayerAccount: "02-0100-0123456-00", PayerName: "Hook Towing Ltd"}
	date := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	t.Run("builds header details and trailer", func(t *testing.T) {
		env := newTestEnv(t)
		seedInvoiced(t, env, "AAA111", "Sam's Towing", "12-3456-7890123-00", 8000, entities.SupplierJobStatusInvoiced)
		seedInvoiced(t, env, "BBB222", "Kiwi, Tow", "01-0002-0000001-001", 4550, entities.SupplierJobStatusInvoiced)
		seedInvoiced(t, env, "CCC333", "Bad Bank", "12-34", 1000, entities.SupplierJobStatusInvoiced)
		seedInvoiced(t, env, "DDD444", "Not Yet", "12-3456-7890123-00", 1000, entities.SupplierJobStatusAccepted)

		batch, err := NewPayoutUseCase(env.supplierJobs, settings).ExportDLO(context.Background(), date, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if batch.Count != 2 || batch.TotalCents != 12550 || batch.HashTotal != "34587890124" {
			t.Fatalf("unexpected totals: %+v", batch)
		}
		if len(batch.Skipped) != 1 || batch.Skipped[0].Ref != "CCC333" {
			t.Fatalf("unexpected skipped: %+v", batch.Skipped)
		}
		if batch.FileName != "payout-20260630.dlo" {
			t.Fatalf("unexpected file name %s", batch.FileName)
		}

		lines := strings.Split(strings.TrimRight(batch.Content, "\r\n"), "\r\n")
		if len(lines) != 4 {
			t.Fatalf("expected 4 lines, got %d: %q", len(lines), batch.Content)
		}
		if lines[0] != "1,0201000123456000,260630,Hook Towing Ltd" {
			t.Fatalf("unexpected header %q", lines[0])
		}
		// supplier-jobs:list is newest first
		if lines[1] != "2,0100020000001001,50,4550,Kiwi  Tow,BBB222,HT-BBB222,INV-BBB222" {
			t.Fatalf("unexpected detail %q", lines[1])
		}
		if lines[3] != "3,12550,2,34587890124" {
			t.Fatalf("unexpected trailer %q", lines[3])
		}
	})

	t.Run("mark paid", func(t *testing.T) {
		env := newTestEnv(t)
		seedInvoiced(t, env, "AAA111", "Sam's Towing", "12-3456-7890123-00", 8000, entities.SupplierJobStatusInvoiced)
		uc := NewPayoutUseCase(env.supplierJobs, settings)

		batch, err := uc.ExportDLO(context.Background(), date, true)
		if err != nil || !batch.MarkedPaid {
			t.Fatalf("unexpected result: %v %+v", err, batch)
		}
		rec, _ := env.supplierJobs.Get(context.Background(), "AAA111")
		if rec.Status != entities.SupplierJobStatusPaid || rec.PaidAt == nil {
			t.Fatalf("expected paid, got %+v", rec)
		}

		again, err := uc.ExportDLO(context.Background(), date, false)
		if err != nil || again.Count != 0 {
			t.Fatalf("expected paid jobs to be left out, got %v %+v", err, again)
		}
	})

	t.Run("payer account required", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := NewPayoutUseCase(env.supplierJobs, PayoutSettings{}).ExportDLO(context.Background(), date, false)
		if !errors.Is(err, ErrPayerAccountNotConfigured) {
			t.Fatalf("expected ErrPayerAccountNotConfigured, got %v", err)
		}
	})
}

func TestDLOField(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"Sams Towing Whangaxā", 20, "Sams Towing Whangaxa"},
		{"Sams Towing Whangārei", 20, "Sams Towing Whangare"},
		{" Te Kūiti, Ltd ", 20, "Te Kuiti  Ltd"},
		{"Tōw 🚚", 20, "Tow"},
		{"line\r\nbreak", 20, "line  break"},
	}
	for _, tc := range cases {
		got := dloField(tc.in, tc.width)
		if got != tc.want {
			t.Fatalf("dloField(%q) = %q, want %q", tc.in, got, tc.want)
		}
		if !utf8.ValidString(got) || len(got) > tc.width {
			t.Fatalf("dloField(%q) produced %q", tc.in, got)
		}
	}
}
