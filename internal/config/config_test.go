package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultPassesValidation(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Error("missing file reported as existing")
	}
	if resolved != path {
		t.Errorf("resolved = %q, want %q", resolved, path)
	}
	if !cfg.Scan.SearchSteam || cfg.Scan.SearchEpic {
		t.Errorf("scan defaults wrong: %+v", cfg.Scan)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Errorf("logging defaults wrong: %+v", cfg.Logging)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[paths]
backup_dir = "~/saves-backup"

[scan]
platform = " WINDOWS "
search_epic = true
progress_interval_ms = -5

[logging]
format = "JSON"
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("existing file reported as missing")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "saves-backup"); cfg.Paths.BackupDir != want {
		t.Errorf("backup_dir = %q, want expanded %q", cfg.Paths.BackupDir, want)
	}
	if cfg.Scan.Platform != "windows" {
		t.Errorf("platform = %q, want normalized windows", cfg.Scan.Platform)
	}
	if !cfg.Scan.SearchEpic {
		t.Error("search_epic not applied")
	}
	if cfg.Scan.ProgressIntervalMS != defaultProgressIntervalMS {
		t.Errorf("progress_interval_ms = %d, want default for invalid value", cfg.Scan.ProgressIntervalMS)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("logging = %+v, want lowercased", cfg.Logging)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "unsupported platform",
			mutate: func(c *Config) { c.Scan.Platform = "plan9" },
			want:   "scan.platform",
		},
		{
			name: "no sources",
			mutate: func(c *Config) {
				c.Scan = Scan{Platform: "windows", ProgressIntervalMS: 250}
			},
			want: "at least one search source",
		},
		{
			name:   "bad log level",
			mutate: func(c *Config) { c.Logging.Level = "loud" },
			want:   "logging.level",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error = %v, want mention of %q", err, tc.want)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatal(err)
	}

	got, err := expandPath("~/nested/dir")
	if err != nil {
		t.Fatalf("expandPath: %v", err)
	}
	if want := filepath.Join(home, "nested", "dir"); got != want {
		t.Errorf("expandPath = %q, want %q", got, want)
	}

	if got, _ := expandPath(""); got != "" {
		t.Errorf("empty path expanded to %q", got)
	}
}

func TestCreateSampleRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample not found after CreateSample")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config invalid: %v", err)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := Default()
	cfg.Paths.BackupDir = filepath.Join(base, "backups")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.CatalogCache = filepath.Join(base, "cache", "catalog.json")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.Paths.BackupDir, cfg.Paths.LogDir, filepath.Join(base, "cache")} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("directory %q not created", dir)
		}
	}
}
