package entities

import (
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestNormalizeRego(t *testing.T) {
	if got := NormalizeRego(" ab c123 "); got != "ABC123" {
		t.Fatalf("expected ABC123, got %q", got)
	}
	if got := NormalizeRego(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestLooksLikeBookingID(t *testing.T) {
	if !LooksLikeBookingID(" ht-lx3k-ab12") {
		t.Fatalf("expected lowercase prefix to match")
	}
	if LooksLikeBookingID("ABC123") {
		t.Fatalf("rego must not look like a booking id")
	}
}

func TestGenerateBookingID(t *testing.T) {
	now := time.UnixMilli(1735689600000)
	id := GenerateBookingID(now)

	parts := strings.Split(id, "-")
	if len(parts) != 3 || parts[0] != "HT" {
		t.Fatalf("unexpected shape %q", id)
	}
	if want := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)); parts[1] != want {
		t.Fatalf("expected timestamp %s, got %s", want, parts[1])
	}
	if len(parts[2]) != 4 {
		t.Fatalf("expected 4 char suffix, got %q", parts[2])
	}
	for _, r := range parts[2] {
		if !strings.ContainsRune(base36, r) {
			t.Fatalf("suffix char %q outside base36", r)
		}
	}
}

func TestAppendHistory_DefaultsActor(t *testing.T) {
	var j JobRecord
	at := time.Now()
	j.AppendHistory(ActionCreated, "", at, nil)
	j.AppendHistory(ActionUpdated, "ops", at, map[string]string{"fields": "notes"})

	if len(j.History) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(j.History))
	}
	if j.History[0].By != "system" {
		t.Fatalf("expected system actor, got %q", j.History[0].By)
	}
	if j.History[1].Data["fields"] != "notes" {
		t.Fatalf("expected data to be kept")
	}
}

func TestJobStatus(t *testing.T) {
	if !JobStatusInProgress.Valid() || JobStatus("towed").Valid() {
		t.Fatalf("unexpected Valid result")
	}
	if !JobStatusCancelled.Terminal() || JobStatusAssigned.Terminal() {
		t.Fatalf("unexpected Terminal result")
	}
}

func TestBuildInvoice_OnlyPaidChargesCount(t *testing.T) {
	job := JobRecord{
		BookingID: "HT-1-ABCD",
		Price:     10000,
		AdditionalCharges: []AdditionalCharge{
			{ID: "c1", Amount: 1500, Status: ChargeStatusPaid},
			{ID: "c2", Amount: 2000, Status: ChargeStatusPending},
			{ID: "c3", Amount: 500, Status: ChargeStatusCancelled},
		},
	}

	inv := BuildInvoice(job, "NZD")
	if inv.Total != 11500 {
		t.Fatalf("expected total 11500, got %d", inv.Total)
	}
	if inv.GST != 1500 {
		t.Fatalf("expected gst 1500, got %d", inv.GST)
	}
	if inv.PendingCharges != 2000 {
		t.Fatalf("expected pending 2000, got %d", inv.PendingCharges)
	}
	if len(inv.Lines) != 1 || inv.Lines[0].ID != "c1" {
		t.Fatalf("expected only the paid line, got %+v", inv.Lines)
	}
	if inv.TotalDisplay != "115.00" {
		t.Fatalf("expected 115.00, got %s", inv.TotalDisplay)
	}
	if job.ChargeIndex("c3") != 2 || job.ChargeIndex("missing") != -1 {
		t.Fatalf("unexpected ChargeIndex result")
	}
}

func TestMoneyHelpers(t *testing.T) {
	if got := GSTComponent(100); got != 13 {
		t.Fatalf("expected 13, got %d", got)
	}
	if got := FormatCents(5); got != "0.05" {
		t.Fatalf("expected 0.05, got %s", got)
	}
	if got := CentsToAmount(8550); got != 85.5 {
		t.Fatalf("expected 85.5, got %v", got)
	}
	cents, err := ParseAmount("85.50")
	if err != nil || cents != 8550 {
		t.Fatalf("expected 8550, got %d (%v)", cents, err)
	}
	if _, err := ParseAmount("abc"); err == nil {
		t.Fatalf("expected error for non-numeric amount")
	}
}

func TestParseBankAccount(t *testing.T) {
	acc, err := ParseBankAccount("12-3140-0123456-00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc.Digits() != "1231400123456000" {
		t.Fatalf("unexpected digits %s", acc.Digits())
	}
	if acc.String() != "12-3140-0123456-00" {
		t.Fatalf("unexpected string %s", acc.String())
	}
	if acc.HashComponent() != 31400123456 {
		t.Fatalf("unexpected hash component %d", acc.HashComponent())
	}

	acc3, err := ParseBankAccount("12 3140 0123456 001")
	if err != nil || acc3.Suffix != "001" {
		t.Fatalf("expected 3 digit suffix, got %+v (%v)", acc3, err)
	}

	for _, bad := range []string{"", "12-3140-0123456", "12-3140-0123456-0a"} {
		if _, err := ParseBankAccount(bad); !errors.Is(err, ErrInvalidBankAccount) {
			t.Fatalf("expected ErrInvalidBankAccount for %q, got %v", bad, err)
		}
	}
}

func TestGenerateSupplierRef(t *testing.T) {
	ref := GenerateSupplierRef()
	if len(ref) != SupplierRefLength {
		t.Fatalf("expected %d chars, got %q", SupplierRefLength, ref)
	}
	for _, r := range ref {
		if !strings.ContainsRune(refAlphabet, r) {
			t.Fatalf("ref char %q outside alphabet", r)
		}
	}
}

func TestProviderPayment_Approved(t *testing.T) {
	if !(ProviderPayment{Status: "approved"}).Approved() {
		t.Fatalf("approved must count as paid")
	}
	if (ProviderPayment{Status: "pending"}).Approved() {
		t.Fatalf("pending must not count as paid")
	}
}
