package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "audioprobe.yaml")
	content := []byte("jobs: 12\njson: true\nrecursive: true\ncolor: never\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := LoadFile(&cfg, path); err != nil {
		t.Fatal(err)
	}

	if cfg.Jobs != 12 {
		t.Errorf("Jobs = %d, want 12", cfg.Jobs)
	}
	if !cfg.JSON || !cfg.Recursive {
		t.Errorf("bool fields not loaded: %+v", cfg)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q, want never", cfg.ColorMode)
	}
}

func TestLoadFile_MissingIsNotAnError(t *testing.T) {
	cfg := DefaultConfig()
	if err := LoadFile(&cfg, filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Errorf("missing file: %v", err)
	}
	if cfg.Jobs != DefaultJobs {
		t.Errorf("defaults disturbed: %+v", cfg)
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("jobs: [not an int\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	if err := LoadFile(&cfg, path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/reports/out.json"); got != filepath.Join(home, "reports/out.json") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path changed: %q", got)
	}
}
