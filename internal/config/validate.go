package config

import (
	"errors"
	"fmt"
)

var supportedPlatforms = map[string]struct{}{
	"windows": {},
	"linux":   {},
	"darwin":  {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateScan() error {
	if _, ok := supportedPlatforms[c.Scan.Platform]; !ok {
		return fmt.Errorf("scan.platform %q is not supported (windows, linux, darwin)", c.Scan.Platform)
	}
	if !c.Scan.SearchSteam && !c.Scan.SearchEpic && !c.Scan.SearchOrigin &&
		!c.Scan.SearchRegistry && !c.Scan.SearchCommonDirs && !c.Scan.SearchProcesses {
		return errors.New("scan: at least one search source must be enabled")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("logging.level %q is invalid (debug, info, warn, error)", c.Logging.Level)
}
