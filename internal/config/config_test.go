package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.ini"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("empty path should not error: %v", err)
	}
	if cfg.Method != "telex" || !cfg.EnglishGuard {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vikey.ini")
	body := `[input]
method = vni
modern_tone = false
w_shortcut = false

[english]
guard = false
suppress = 95
restore = 40

[output]
encoding = tcvn3
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Method != "vni" {
		t.Errorf("method: got %q", cfg.Method)
	}
	if cfg.ModernTone {
		t.Errorf("modern_tone should be off")
	}
	if cfg.WShortcut {
		t.Errorf("w_shortcut should be off")
	}
	if cfg.EnglishGuard {
		t.Errorf("guard should be off")
	}
	if cfg.EnglishSuppress != 95 || cfg.EnglishRestore != 40 {
		t.Errorf("thresholds: got %d/%d", cfg.EnglishSuppress, cfg.EnglishRestore)
	}
	if cfg.Encoding != "tcvn3" {
		t.Errorf("encoding: got %q", cfg.Encoding)
	}
	// Keys absent from the file keep their defaults.
	if !cfg.Shortcuts || !cfg.EscRestore {
		t.Errorf("absent sections should keep defaults: %+v", cfg)
	}
}

func TestLoadRejectsUnknownMethod(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vikey.ini")
	if err := os.WriteFile(path, []byte("[input]\nmethod = dvorak\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Method != "telex" {
		t.Fatalf("unknown method should fall back to default, got %q", cfg.Method)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "vikey.ini")
	want := Default()
	want.Method = "vni"
	want.Encoding = "cp1258"
	want.EnglishSuppress = 80

	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadDirectoryIsError(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatalf("directory path should error")
	}
}
