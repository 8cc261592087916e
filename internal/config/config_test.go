package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ToastDuration != defaultToastDuration {
		t.Fatalf("ToastDuration = %v, want %v", cfg.ToastDuration, defaultToastDuration)
	}
	if cfg.SearchDebounce != defaultSearchDebounce {
		t.Fatalf("SearchDebounce = %v, want %v", cfg.SearchDebounce, defaultSearchDebounce)
	}
	want := filepath.Join(home, ".local", "share", "shopfront")
	if cfg.DataDir != want {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, want)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	tmp := t.TempDir()
	cfgFile := filepath.Join(tmp, "config.toml")
	content := "data_dir = \"" + filepath.Join(tmp, "data") + "\"\ntoast_duration_ms = 5000\nsearch_debounce_ms = 150\n"
	if err := os.WriteFile(cfgFile, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DataDir != filepath.Join(tmp, "data") {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, filepath.Join(tmp, "data"))
	}
	if cfg.ToastDuration != 5*time.Second {
		t.Fatalf("ToastDuration = %v, want %v", cfg.ToastDuration, 5*time.Second)
	}
	if cfg.SearchDebounce != 150*time.Millisecond {
		t.Fatalf("SearchDebounce = %v, want %v", cfg.SearchDebounce, 150*time.Millisecond)
	}
}

func TestLoad_InvalidTOMLIsAnError(t *testing.T) {
	tmp := t.TempDir()
	cfgFile := filepath.Join(tmp, "config.toml")
	if err := os.WriteFile(cfgFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(cfgFile); err == nil {
		t.Fatal("Load accepted an unparseable config file")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	tmp := t.TempDir()
	cfgFile := filepath.Join(tmp, "config.toml")
	if err := os.WriteFile(cfgFile, []byte("toast_duration_ms = 5000\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	override := filepath.Join(tmp, "override")
	t.Setenv("SHOPFRONT_DATA_DIR", override)
	t.Setenv("SHOPFRONT_TOAST_DURATION_MS", "1000")
	t.Setenv("SHOPFRONT_SEARCH_DEBOUNCE_MS", "50")

	cfg, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DataDir != override {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, override)
	}
	if cfg.ToastDuration != time.Second {
		t.Fatalf("ToastDuration = %v, want %v", cfg.ToastDuration, time.Second)
	}
	if cfg.SearchDebounce != 50*time.Millisecond {
		t.Fatalf("SearchDebounce = %v, want %v", cfg.SearchDebounce, 50*time.Millisecond)
	}
}

func TestLogPath(t *testing.T) {
	cfg := Config{DataDir: "/tmp/shopfront-data"}
	want := filepath.Join("/tmp/shopfront-data", "shopfront.log")
	if got := cfg.LogPath(); got != want {
		t.Fatalf("LogPath = %q, want %q", got, want)
	}
}
