package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hmf-lang/hmfc/internal/config"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Format != "text" {
		t.Fatalf("Load() on a missing file = %+v, want Default()", cfg)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hmfc.yaml")
	contents := "examples:\n  - identity\n  - let-polymorphism\nformat: json\ncolor: true\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Examples) != 2 || cfg.Examples[0] != "identity" {
		t.Fatalf("Load() Examples = %v", cfg.Examples)
	}
	if cfg.Format != "json" {
		t.Fatalf("Load() Format = %s, want json", cfg.Format)
	}
	if cfg.Color == nil || !*cfg.Color {
		t.Fatalf("Load() Color = %v, want true", cfg.Color)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hmfc.yaml")
	if err := os.WriteFile(path, []byte("examples: [unterminated"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatal("Load() on malformed YAML succeeded, want an error")
	}
}
