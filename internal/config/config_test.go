package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.SeasonLabel != "2024-2025" {
		t.Fatalf("unexpected default season label: %s", cfg.SeasonLabel)
	}
	if cfg.CleanSheetThreshold != 0.7 {
		t.Fatalf("unexpected default threshold: %v", cfg.CleanSheetThreshold)
	}
	if cfg.ImportBatchSize != 100 {
		t.Fatalf("unexpected default batch size: %d", cfg.ImportBatchSize)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected default app env: %s", cfg.AppEnv)
	}
}

func TestLoadRejectsBadThreshold(t *testing.T) {
	t.Setenv("CLEAN_SHEET_THRESHOLD", "-1")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative threshold")
	}

	t.Setenv("CLEAN_SHEET_THRESHOLD", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric threshold")
	}
}

func TestLoadRejectsBadBatchSize(t *testing.T) {
	t.Setenv("IMPORT_BATCH_SIZE", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero batch size")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SEASON_LABEL", "2025-2026")
	t.Setenv("CLEAN_SHEET_THRESHOLD", "0.85")
	t.Setenv("IMPORT_BATCH_SIZE", "50")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SeasonLabel != "2025-2026" {
		t.Fatalf("unexpected season label: %s", cfg.SeasonLabel)
	}
	if cfg.CleanSheetThreshold != 0.85 {
		t.Fatalf("unexpected threshold: %v", cfg.CleanSheetThreshold)
	}
	if cfg.ImportBatchSize != 50 {
		t.Fatalf("unexpected batch size: %d", cfg.ImportBatchSize)
	}
}

func TestLoadRequiresUptraceDSNWhenEnabled(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when uptrace enabled without DSN")
	}
}
