package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/labrecon/labrecon/internal/config"
	"github.com/labrecon/labrecon/internal/domain/recon"
)

func TestLoadRegistry_BuiltinWhenPathEmpty(t *testing.T) {
	kb, err := loadRegistry("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kb.Len() == 0 {
		t.Fatal("expected built-in catalog to have entries")
	}
	if _, ok := kb.Resolve("hemoglobin"); !ok {
		t.Error("expected built-in catalog to resolve hemoglobin")
	}
}

func TestLoadRegistry_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.json")
	kbJSON := `[{
		"key": "GLUC",
		"display": "Glucose",
		"aliases": ["glucose"],
		"unit": "mg/dL",
		"low": 70,
		"high": 99
	}]`
	if err := os.WriteFile(path, []byte(kbJSON), 0o644); err != nil {
		t.Fatalf("write kb file: %v", err)
	}

	kb, err := loadRegistry(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kb.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", kb.Len())
	}
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	if _, err := loadRegistry(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing knowledge base file")
	}
}

func TestReconOptions_FromConfig(t *testing.T) {
	cfg := &config.Config{MergeTolerance: 0.05, PlausibilityFactor: 500}
	opts := reconOptions(cfg)
	if opts.Tolerance != 0.05 {
		t.Errorf("expected tolerance 0.05, got %g", opts.Tolerance)
	}
	if opts.PlausibilityFactor != 500 {
		t.Errorf("expected plausibility factor 500, got %g", opts.PlausibilityFactor)
	}
}

func TestReconOptions_Defaults(t *testing.T) {
	opts := reconOptions(&config.Config{})
	if opts.Tolerance != recon.DefaultTolerance {
		t.Errorf("expected default tolerance %g, got %g", recon.DefaultTolerance, opts.Tolerance)
	}
	if opts.PlausibilityFactor != recon.DefaultPlausibilityFactor {
		t.Errorf("expected default factor %g, got %g", float64(recon.DefaultPlausibilityFactor), opts.PlausibilityFactor)
	}
}
