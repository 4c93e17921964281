package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TOWDISPATCH_CONFIG", "")
	t.Setenv("KV_BACKEND", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 || cfg.Currency != "NZD" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.KV.Backend != "memory" {
		t.Fatalf("expected memory backend, got %q", cfg.KV.Backend)
	}
	if cfg.Jobs.ScanWindow != 500 || cfg.Jobs.ListCap != 1000 {
		t.Fatalf("unexpected jobs config: %+v", cfg.Jobs)
	}
	if cfg.Visitor.TTLHours != 720 {
		t.Fatalf("expected 30 day visitor ttl, got %d", cfg.Visitor.TTLHours)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TOWDISPATCH_CONFIG", "")
	t.Setenv("KV_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis://kv:6379/1")
	t.Setenv("JOBS_SCAN_WINDOW", "200")
	t.Setenv("JOBS_LIST_CAP", "50")
	t.Setenv("PRICING_PER_KM_CENTS", "400")
	t.Setenv("GRAPH_SENDER", "dispatch@example.co.nz")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.KV.Backend != "redis" || cfg.KV.RedisURL != "redis://kv:6379/1" {
		t.Fatalf("unexpected kv config: %+v", cfg.KV)
	}
	if cfg.Jobs.ScanWindow != 200 {
		t.Fatalf("expected scan window 200, got %d", cfg.Jobs.ScanWindow)
	}
	if cfg.Jobs.ListCap != 200 {
		t.Fatalf("expected list cap raised to scan window, got %d", cfg.Jobs.ListCap)
	}
	if cfg.Pricing.PerKmCents != 400 {
		t.Fatalf("expected per km 400, got %d", cfg.Pricing.PerKmCents)
	}
	if cfg.Graph.Sender != "dispatch@example.co.nz" {
		t.Fatalf("unexpected sender %q", cfg.Graph.Sender)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "towdispatch.yaml")
	if err := os.WriteFile(path, []byte("currency: AUD\npayout:\n  payer_name: Dispatch Ltd\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TOWDISPATCH_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Currency != "AUD" || cfg.Payout.PayerName != "Dispatch Ltd" {
		t.Fatalf("file values not applied: %+v", cfg)
	}

	t.Setenv("TOWDISPATCH_CONFIG", filepath.Join(dir, "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
