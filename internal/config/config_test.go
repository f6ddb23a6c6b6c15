package config

import (
	"os"
	"path/filepath"
	"testing"

	"slipbox/internal/format"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("SLIPBOX_CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Outline.Count != 100 || cfg.Outline.StepWeighting != "wide" {
		t.Fatalf("unexpected defaults: %+v", cfg.Outline)
	}
	if cfg.Display.Mode != format.DisplayPrefix || !cfg.Indent() {
		t.Fatalf("unexpected display defaults: %+v", cfg.Display)
	}
}

func TestSaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SLIPBOX_CONFIG_DIR", dir)

	cfg := Default()
	cfg.Outline.Count = 12
	cfg.Outline.StepWeighting = "deep"
	cfg.Outline.Seed = 99
	cfg.Display.Mode = format.DisplayHidden
	off := false
	cfg.Display.Indent = &off
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("expected config.yaml: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Outline.Count != 12 || got.Outline.StepWeighting != "deep" || got.Outline.Seed != 99 {
		t.Fatalf("outline round trip: %+v", got.Outline)
	}
	if got.Display.Mode != format.DisplayHidden || got.Indent() {
		t.Fatalf("display round trip: %+v", got.Display)
	}
}

func TestLoadFile_PartialOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "outline:\n  stepWeighting: balanced\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Outline.StepWeighting != "balanced" || cfg.Log.Level != "debug" {
		t.Fatalf("expected overrides, got %+v %+v", cfg.Outline, cfg.Log)
	}
	if cfg.Outline.Count != 100 || cfg.Log.Format != "text" {
		t.Fatalf("expected untouched defaults, got %+v %+v", cfg.Outline, cfg.Log)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":      "outline: [",
		"bad weighting": "outline:\n  stepWeighting: tall\n",
		"bad display":   "display:\n  mode: sideways\n",
		"bad count":     "outline:\n  count: -3\n",
		"bad log level": "log:\n  level: loud\n",
	}
	for name, body := range tests {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := LoadFile(path); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
