package config

import (
	"fmt"
	"runtime"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeScan()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.BackupDir) == "" {
		c.Paths.BackupDir = defaultBackupDir
	}
	if c.Paths.BackupDir, err = expandPath(c.Paths.BackupDir); err != nil {
		return fmt.Errorf("paths.backup_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.CatalogStore) == "" {
		c.Paths.CatalogStore = defaultCatalogStore
	}
	if c.Paths.CatalogStore, err = expandPath(c.Paths.CatalogStore); err != nil {
		return fmt.Errorf("paths.catalog_store: %w", err)
	}
	if strings.TrimSpace(c.Paths.CatalogCache) == "" {
		c.Paths.CatalogCache = defaultCatalogCache
	}
	if c.Paths.CatalogCache, err = expandPath(c.Paths.CatalogCache); err != nil {
		return fmt.Errorf("paths.catalog_cache: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeScan() {
	c.Scan.Platform = strings.ToLower(strings.TrimSpace(c.Scan.Platform))
	if c.Scan.Platform == "" {
		c.Scan.Platform = runtime.GOOS
	}
	if c.Scan.ProgressIntervalMS <= 0 {
		c.Scan.ProgressIntervalMS = defaultProgressIntervalMS
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
