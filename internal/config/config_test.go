package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dim != defaultDim || cfg.MaxSolutions != defaultMaxSolutions {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DIM", "4")
	t.Setenv("MAX_SOLUTIONS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dim != 4 || cfg.MaxSolutions != 5 {
		t.Fatalf("expected overrides to apply, got %+v", cfg)
	}
}

func TestLoadRejectsNonPositive(t *testing.T) {
	t.Setenv("DIM", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected an error for DIM=0")
	}
}

func TestLoadRejectsNonNumeric(t *testing.T) {
	t.Setenv("MAX_SOLUTIONS", "many")
	if _, err := Load(); err == nil {
		t.Fatalf("expected an error for a non-numeric MAX_SOLUTIONS")
	}
}
