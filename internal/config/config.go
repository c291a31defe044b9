// Package config loads and saves engine options as an INI profile.
// A missing file yields the defaults; a malformed one is an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ini "gopkg.in/ini.v1"

	"vikey/internal/english"
)

// Config carries every user-tunable engine option.
type Config struct {
	// Method selects the typing convention: "telex" or "vni".
	Method string
	// ModernTone places open oa/oe/uy marks on the second vowel.
	ModernTone bool
	// FreeTone skips phonotactic validation when placing marks.
	FreeTone bool
	// WShortcut turns a standalone Telex w into ư.
	WShortcut bool

	// EnglishGuard enables suppression of transforms on English-looking
	// words; the thresholds set its hysteresis.
	EnglishGuard    bool
	EnglishSuppress int
	EnglishRestore  int

	// Shortcuts enables abbreviation expansion at commit.
	Shortcuts bool
	// EscRestore makes Esc restore the word's literal keystrokes.
	EscRestore bool
	// ShiftBackspace makes Shift+Backspace drop the whole word, leaving
	// the host's native word delete to clear the screen.
	ShiftBackspace bool

	// Encoding names the commit output encoding: "unicode", "tcvn3",
	// "vni" or "cp1258".
	Encoding string
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Method:          "telex",
		ModernTone:      true,
		FreeTone:        false,
		WShortcut:       true,
		EnglishGuard:    true,
		EnglishSuppress: english.DefaultSuppressAt,
		EnglishRestore:  english.DefaultRestoreAt,
		Shortcuts:       true,
		EscRestore:      true,
		ShiftBackspace:  true,
		Encoding:        "unicode",
	}
}

// Load reads a profile. An empty path or absent file returns Default.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config: %s is a directory", path)
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	input := file.Section("input")
	cfg.Method = input.Key("method").In(cfg.Method, []string{"telex", "vni"})
	cfg.ModernTone = input.Key("modern_tone").MustBool(cfg.ModernTone)
	cfg.FreeTone = input.Key("free_tone").MustBool(cfg.FreeTone)
	cfg.WShortcut = input.Key("w_shortcut").MustBool(cfg.WShortcut)

	guard := file.Section("english")
	cfg.EnglishGuard = guard.Key("guard").MustBool(cfg.EnglishGuard)
	cfg.EnglishSuppress = guard.Key("suppress").RangeInt(cfg.EnglishSuppress, 1, 100)
	cfg.EnglishRestore = guard.Key("restore").RangeInt(cfg.EnglishRestore, 0, 100)

	cfg.Shortcuts = file.Section("shortcut").Key("enabled").MustBool(cfg.Shortcuts)
	cfg.EscRestore = file.Section("restore").Key("esc").MustBool(cfg.EscRestore)
	cfg.ShiftBackspace = file.Section("restore").Key("shift_backspace").MustBool(cfg.ShiftBackspace)
	cfg.Encoding = file.Section("output").Key("encoding").
		In(cfg.Encoding, []string{"unicode", "tcvn3", "vni", "cp1258"})

	return cfg, nil
}

// Save writes the profile, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New("config: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	file := ini.Empty()

	input := file.Section("input")
	input.Key("method").SetValue(cfg.Method)
	input.Key("modern_tone").SetValue(boolString(cfg.ModernTone))
	input.Key("free_tone").SetValue(boolString(cfg.FreeTone))
	input.Key("w_shortcut").SetValue(boolString(cfg.WShortcut))

	guard := file.Section("english")
	guard.Key("guard").SetValue(boolString(cfg.EnglishGuard))
	guard.Key("suppress").SetValue(fmt.Sprintf("%d", cfg.EnglishSuppress))
	guard.Key("restore").SetValue(fmt.Sprintf("%d", cfg.EnglishRestore))

	file.Section("shortcut").Key("enabled").SetValue(boolString(cfg.Shortcuts))
	file.Section("restore").Key("esc").SetValue(boolString(cfg.EscRestore))
	file.Section("restore").Key("shift_backspace").SetValue(boolString(cfg.ShiftBackspace))
	file.Section("output").Key("encoding").SetValue(cfg.Encoding)

	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
